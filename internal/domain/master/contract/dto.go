package contract

import (
	"time"

	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
)

type ContractResponse struct {
	ID             int64   `json:"id"`
	ContractorID   int64   `json:"contratista_id"`
	Document       string  `json:"documento"`
	Date           string  `json:"fecha"`
	Documentation  *string `json:"documentacion"`
	ContractorName *string `json:"contratista,omitempty"`
}

func NewContractResponse(c Contract) ContractResponse {
	return ContractResponse{
		ID:             c.ID,
		ContractorID:   c.ContractorID,
		Document:       c.Document,
		Date:           c.Date.Format(time.DateOnly),
		Documentation:  c.Documentation,
		ContractorName: c.ContractorName,
	}
}

type CreateContractRequest struct {
	ContractorID  int64   `json:"contratista_id" validate:"required,gt=0"`
	Document      string  `json:"documento" validate:"required"`
	Date          string  `json:"fecha" validate:"required,datetime=2006-01-02"`
	Documentation *string `json:"documentacion,omitempty"`
}

func (r *CreateContractRequest) Validate() error {
	const msg = "contratista_id, documento y fecha son obligatorios"
	return validator.Struct(r, map[string]string{
		"contratista_id": msg,
		"documento":      msg,
	})
}

// ToEntity must be called after a successful Validate.
func (r CreateContractRequest) ToEntity() Contract {
	date, _ := validator.IsValidDate(r.Date)
	var docs *string
	if r.Documentation != nil && !validator.IsEmpty(*r.Documentation) {
		docs = r.Documentation
	}
	return Contract{
		ContractorID:  r.ContractorID,
		Document:      r.Document,
		Date:          date,
		Documentation: docs,
	}
}

type UpdateContractRequest struct {
	ID int64 `json:"-"`
	CreateContractRequest
}
