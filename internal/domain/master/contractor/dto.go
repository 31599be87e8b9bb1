package contractor

import (
	"strings"

	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
)

type ContractorResponse struct {
	ID          int64   `json:"id"`
	LegalName   string  `json:"razon_social"`
	CompanyID   int64   `json:"empresa_id"`
	UserID      int64   `json:"usuario_id"`
	CompanyName *string `json:"empresa_contrato,omitempty"`
	UserName    *string `json:"nombre_usuario,omitempty"`
}

func NewContractorResponse(c Contractor) ContractorResponse {
	return ContractorResponse{
		ID:          c.ID,
		LegalName:   c.LegalName,
		CompanyID:   c.CompanyID,
		UserID:      c.UserID,
		CompanyName: c.CompanyName,
		UserName:    c.UserName,
	}
}

var requiredMessages = map[string]string{
	"razon_social": "Todos los campos son obligatorios",
	"empresa_id":   "Todos los campos son obligatorios",
	"usuario_id":   "Todos los campos son obligatorios",
}

type CreateContractorRequest struct {
	LegalName string `json:"razon_social" validate:"required"`
	CompanyID int64  `json:"empresa_id" validate:"required,gt=0"`
	UserID    int64  `json:"usuario_id" validate:"required,gt=0"`
}

func (r *CreateContractorRequest) Validate() error {
	r.LegalName = strings.TrimSpace(r.LegalName)
	return validator.Struct(r, requiredMessages)
}

func (r CreateContractorRequest) ToEntity() Contractor {
	return Contractor{LegalName: r.LegalName, CompanyID: r.CompanyID, UserID: r.UserID}
}

type UpdateContractorRequest struct {
	ID int64 `json:"-"`
	CreateContractorRequest
}
