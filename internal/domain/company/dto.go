package company

import (
	"strings"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
)

type CompanyResponse struct {
	ID         int64   `json:"id"`
	Contract   string  `json:"contrato"`
	AwardedOn  string  `json:"fecha_adjudicacion"`
	WorkEndsOn *string `json:"fecha_termino_faena"`
	Documents  *string `json:"documentos"`
}

func NewCompanyResponse(c Company) CompanyResponse {
	res := CompanyResponse{
		ID:        c.ID,
		Contract:  c.Contract,
		AwardedOn: c.AwardedOn.Format(time.DateOnly),
		Documents: c.Documents,
	}
	if c.WorkEndsOn != nil {
		s := c.WorkEndsOn.Format(time.DateOnly)
		res.WorkEndsOn = &s
	}
	return res
}

type CreateCompanyRequest struct {
	Contract   string  `json:"contrato"`
	AwardedOn  string  `json:"fecha_adjudicacion"`
	WorkEndsOn *string `json:"fecha_termino_faena,omitempty"`
	Documents  *string `json:"documentos,omitempty"`

	awardedOn  time.Time
	workEndsOn *time.Time
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Contract) || validator.IsEmpty(r.AwardedOn) {
		errs = append(errs, validator.ValidationError{
			Field:   "contrato",
			Message: "Contrato y fecha de adjudicación son obligatorios",
		})
		return errs
	}

	awarded, ok := validator.IsValidDate(r.AwardedOn)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_adjudicacion",
			Message: "fecha_adjudicacion debe tener formato YYYY-MM-DD",
		})
	}
	r.awardedOn = awarded

	r.workEndsOn = nil
	if r.WorkEndsOn != nil && !validator.IsEmpty(*r.WorkEndsOn) {
		ends, ok := validator.IsValidDate(*r.WorkEndsOn)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "fecha_termino_faena",
				Message: "fecha_termino_faena debe tener formato YYYY-MM-DD",
			})
		}
		r.workEndsOn = &ends
	}

	if len(errs) > 0 {
		return errs
	}

	r.Contract = strings.TrimSpace(r.Contract)
	return nil
}

// ToEntity must be called after a successful Validate.
func (r CreateCompanyRequest) ToEntity() Company {
	var docs *string
	if r.Documents != nil && !validator.IsEmpty(*r.Documents) {
		docs = r.Documents
	}
	return Company{
		Contract:   r.Contract,
		AwardedOn:  r.awardedOn,
		WorkEndsOn: r.workEndsOn,
		Documents:  docs,
	}
}

type UpdateCompanyRequest struct {
	ID int64 `json:"-"`
	CreateCompanyRequest
}
