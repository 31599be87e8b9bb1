package quarter

import (
	"strings"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type QuarterResponse struct {
	ID          int64           `json:"id"`
	CompanyID   int64           `json:"empresa_id"`
	FruitType   string          `json:"tipo_fruta"`
	FruitAmount decimal.Decimal `json:"cantidad_fruta"`
	Date        string          `json:"fecha"`
	CompanyName *string         `json:"empresa_contrato,omitempty"`
}

func NewQuarterResponse(q Quarter) QuarterResponse {
	return QuarterResponse{
		ID:          q.ID,
		CompanyID:   q.CompanyID,
		FruitType:   q.FruitType,
		FruitAmount: q.FruitAmount,
		Date:        q.Date.Format(time.DateOnly),
		CompanyName: q.CompanyName,
	}
}

type CreateQuarterRequest struct {
	CompanyID   int64            `json:"empresa_id"`
	FruitType   string           `json:"tipo_fruta"`
	FruitAmount *decimal.Decimal `json:"cantidad_fruta,omitempty"`
	Date        string           `json:"fecha"`
}

func (r *CreateQuarterRequest) Validate() error {
	var errs validator.ValidationErrors

	r.FruitType = strings.TrimSpace(r.FruitType)
	if r.CompanyID <= 0 || r.FruitType == "" || validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "empresa_id",
			Message: "empresa_id, tipo_fruta y fecha son obligatorios",
		})
		return errs
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha",
			Message: "fecha debe tener formato YYYY-MM-DD",
		})
	}
	if r.FruitAmount != nil && r.FruitAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "cantidad_fruta",
			Message: ErrNegativeFruit.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity must be called after a successful Validate. A missing amount is zero.
func (r CreateQuarterRequest) ToEntity() Quarter {
	q := Quarter{
		CompanyID:   r.CompanyID,
		FruitType:   r.FruitType,
		FruitAmount: decimal.Zero,
	}
	if r.FruitAmount != nil {
		q.FruitAmount = *r.FruitAmount
	}
	q.Date, _ = validator.IsValidDate(r.Date)
	return q
}

type UpdateQuarterRequest struct {
	ID int64 `json:"-"`
	CreateQuarterRequest
}

// ExportQuarterRequest carries the optional query filters of the PDF export.
type ExportQuarterRequest struct {
	CompanyID string
	From      string
	To        string
}

func (r ExportQuarterRequest) ToFilter() (Filter, error) {
	var (
		f    Filter
		errs validator.ValidationErrors
	)
	if r.CompanyID != "" {
		id, ok := validator.ParseID(r.CompanyID)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "empresa_id", Message: "empresa_id es inválido"})
		}
		f.CompanyID = &id
	}
	if r.From != "" && r.To != "" {
		from, okFrom := validator.IsValidDate(r.From)
		to, okTo := validator.IsValidDate(r.To)
		if !okFrom || !okTo {
			errs = append(errs, validator.ValidationError{Field: "desde", Message: "desde y hasta deben tener formato YYYY-MM-DD"})
		}
		f.From, f.To = &from, &to
	}
	if len(errs) > 0 {
		return Filter{}, errs
	}
	return f, nil
}

// Title describes the filter on the exported document.
func (r ExportQuarterRequest) Title() string {
	if r.CompanyID != "" {
		return "Cuarteles de Empresa ID " + r.CompanyID
	}
	if r.From != "" && r.To != "" {
		return "Cuarteles entre " + r.From + " y " + r.To
	}
	return "Cuarteles"
}
