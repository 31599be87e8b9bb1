package assignment

import (
	"time"

	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
)

type AssignmentResponse struct {
	ID         int64   `json:"id"`
	ContractID int64   `json:"contrato_id"`
	WorkerID   int64   `json:"trabajador_id"`
	StartsOn   string  `json:"fecha_inicio"`
	EndsOn     *string `json:"fecha_termino"`
	Status     Status  `json:"estado"`
	WorkerName *string `json:"trabajador,omitempty"`
	Document   *string `json:"contrato,omitempty"`
}

func NewAssignmentResponse(a Assignment) AssignmentResponse {
	res := AssignmentResponse{
		ID:         a.ID,
		ContractID: a.ContractID,
		WorkerID:   a.WorkerID,
		StartsOn:   a.StartsOn.Format(time.DateOnly),
		Status:     a.Status,
		WorkerName: a.WorkerName,
		Document:   a.Document,
	}
	if a.EndsOn != nil {
		s := a.EndsOn.Format(time.DateOnly)
		res.EndsOn = &s
	}
	return res
}

type CreateAssignmentRequest struct {
	ContractID int64   `json:"contrato_id" validate:"required,gt=0"`
	WorkerID   int64   `json:"trabajador_id" validate:"required,gt=0"`
	StartsOn   string  `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	EndsOn     *string `json:"fecha_termino,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status     Status  `json:"estado,omitempty" validate:"omitempty,oneof=activo inactivo finalizado"`
}

func (r *CreateAssignmentRequest) Validate() error {
	if r.EndsOn != nil && validator.IsEmpty(*r.EndsOn) {
		r.EndsOn = nil
	}
	if r.Status == "" {
		r.Status = StatusActive
	}
	const msg = "contrato_id, trabajador_id y fecha_inicio son obligatorios"
	return validator.Struct(r, map[string]string{
		"contrato_id":   msg,
		"trabajador_id": msg,
	})
}

// ToEntity must be called after a successful Validate.
func (r CreateAssignmentRequest) ToEntity() Assignment {
	a := Assignment{
		ContractID: r.ContractID,
		WorkerID:   r.WorkerID,
		Status:     r.Status,
	}
	a.StartsOn, _ = validator.IsValidDate(r.StartsOn)
	if r.EndsOn != nil {
		ends, _ := validator.IsValidDate(*r.EndsOn)
		a.EndsOn = &ends
	}
	return a
}

type UpdateAssignmentRequest struct {
	ID int64 `json:"-"`
	CreateAssignmentRequest
}

type ExportAssignmentRequest struct {
	ContractID string
	WorkerID   string
}

func (r ExportAssignmentRequest) ToFilter() (Filter, error) {
	var (
		f    Filter
		errs validator.ValidationErrors
	)
	if r.ContractID != "" {
		id, ok := validator.ParseID(r.ContractID)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "contrato_id", Message: "contrato_id es inválido"})
		}
		f.ContractID = &id
	}
	if r.WorkerID != "" {
		id, ok := validator.ParseID(r.WorkerID)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "trabajador_id", Message: "trabajador_id es inválido"})
		}
		f.WorkerID = &id
	}
	if len(errs) > 0 {
		return Filter{}, errs
	}
	return f, nil
}

func (r ExportAssignmentRequest) Title() string {
	switch {
	case r.WorkerID != "":
		return "Contratos asignados al trabajador ID " + r.WorkerID
	case r.ContractID != "":
		return "Trabajadores asignados al contrato ID " + r.ContractID
	}
	return "Asignaciones de contratos"
}
