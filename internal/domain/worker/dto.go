package worker

import (
	"strings"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
)

type WorkerResponse struct {
	ID             int64           `json:"id"`
	Names          string          `json:"nombres"`
	Address        *string         `json:"direccion"`
	Contact        *string         `json:"contacto"`
	Role           string          `json:"rol"`
	Rut            *string         `json:"rut,omitempty"`
	BraceletID     *string         `json:"pulsera_uuid"`
	BraceletStatus *BraceletStatus `json:"estado_pulsera,omitempty"`
}

func NewWorkerResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:             w.ID,
		Names:          w.Names,
		Address:        w.Address,
		Contact:        w.Contact,
		Role:           w.Role,
		Rut:            w.Rut,
		BraceletID:     w.BraceletID,
		BraceletStatus: w.BraceletStatus,
	}
}

var workerMessages = map[string]string{
	"nombres": "nombres es obligatorio",
	"rol":     "rol es obligatorio",
}

type CreateWorkerRequest struct {
	Names      string  `json:"nombres" validate:"required"`
	Address    *string `json:"direccion"`
	Contact    *string `json:"contacto"`
	Role       string  `json:"rol" validate:"required"`
	Rut        *string `json:"rut"`
	BraceletID *string `json:"pulsera_uuid"`
}

func (r *CreateWorkerRequest) Validate() error {
	r.Names = strings.TrimSpace(r.Names)
	r.Role = strings.TrimSpace(r.Role)
	r.BraceletID = trimmedOrNil(r.BraceletID)
	return validator.Struct(r, workerMessages)
}

func (r CreateWorkerRequest) ToEntity() Worker {
	return Worker{
		Names:      r.Names,
		Address:    r.Address,
		Contact:    r.Contact,
		Role:       r.Role,
		Rut:        r.Rut,
		BraceletID: r.BraceletID,
	}
}

type UpdateWorkerRequest struct {
	ID int64 `json:"-"`
	CreateWorkerRequest
}

func (r *UpdateWorkerRequest) Validate() error {
	return r.CreateWorkerRequest.Validate()
}

type BraceletResponse struct {
	UUID       string         `json:"uuid"`
	Status     BraceletStatus `json:"estado"`
	CreatedAt  time.Time      `json:"creado_en"`
	WorkerID   *int64         `json:"trabajador_id,omitempty"`
	WorkerName *string        `json:"trabajador,omitempty"`
}

func NewBraceletResponse(b Bracelet) BraceletResponse {
	return BraceletResponse{
		UUID:       b.UUID,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
		WorkerID:   b.WorkerID,
		WorkerName: b.WorkerName,
	}
}

// RegisterBraceletRequest registers a wearable. UUID is generated when omitted.
type RegisterBraceletRequest struct {
	UUID   string         `json:"uuid" validate:"max=64"`
	Status BraceletStatus `json:"estado" validate:"omitempty,oneof=activa inactiva"`
}

func (r *RegisterBraceletRequest) Validate() error {
	r.UUID = strings.TrimSpace(r.UUID)
	if r.Status == "" {
		r.Status = BraceletActive
	}
	return validator.Struct(r, map[string]string{
		"estado": "estado debe ser 'activa' o 'inactiva'",
	})
}

type SetBraceletStatusRequest struct {
	UUID   string         `json:"-" validate:"required"`
	Status BraceletStatus `json:"estado" validate:"required,oneof=activa inactiva"`
}

func (r *SetBraceletStatusRequest) Validate() error {
	return validator.Struct(r, map[string]string{
		"estado": "estado debe ser 'activa' o 'inactiva'",
	})
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
