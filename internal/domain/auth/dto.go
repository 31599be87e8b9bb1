package auth

import (
	"strings"

	"github.com/faena-labs/faena-backend-go/internal/domain/user"
	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Name     string    `json:"nombre" validate:"required"`
	Email    string    `json:"correo" validate:"required,email"`
	Password string    `json:"password" validate:"required,min=6"`
	Role     user.Role `json:"rol" validate:"required,oneof=admin supervisor"`
}

func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	return validator.Struct(r, map[string]string{
		"password": "password debe tener al menos 6 caracteres",
		"rol":      "rol debe ser 'admin' o 'supervisor'",
	})
}

type LoginRequest struct {
	Email    string `json:"correo" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	return validator.Struct(r, map[string]string{
		"correo":   "correo es obligatorio",
		"password": "password es obligatorio",
	})
}

type UserResponse struct {
	ID    int64     `json:"id"`
	Name  string    `json:"nombre"`
	Email string    `json:"correo"`
	Role  user.Role `json:"rol"`
}

type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expira_en"`
	User      UserResponse `json:"usuario"`
}
