package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Contraseña incorrecta")
	ErrInvalidToken       = errors.New("Token inválido o expirado")
	ErrTokenRequired      = errors.New("Token requerido")
)
