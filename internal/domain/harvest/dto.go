package harvest

import (
	"strings"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ProcessResponse struct {
	ID          int64           `json:"id"`
	BraceletID  string          `json:"id_pulsera"`
	FruitAmount decimal.Decimal `json:"cantidad_fruta"`
	At          time.Time       `json:"fecha"`
}

func NewProcessResponse(p Process) ProcessResponse {
	return ProcessResponse(p)
}

// CreateProcessRequest accepts fecha as a date or an RFC 3339 timestamp.
type CreateProcessRequest struct {
	BraceletID  string          `json:"id_pulsera"`
	FruitAmount decimal.Decimal `json:"cantidad_fruta"`
	Date        string          `json:"fecha"`

	at time.Time
}

func (r *CreateProcessRequest) Validate() error {
	var errs validator.ValidationErrors

	r.BraceletID = strings.TrimSpace(r.BraceletID)
	if r.BraceletID == "" {
		errs = append(errs, validator.ValidationError{Field: "id_pulsera", Message: "id_pulsera es obligatorio"})
	}
	if !r.FruitAmount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "cantidad_fruta", Message: "cantidad_fruta debe ser mayor que 0"})
	}

	if at, err := time.Parse(time.RFC3339, r.Date); err == nil {
		r.at = at
	} else if d, ok := validator.IsValidDate(r.Date); ok {
		r.at = d
	} else {
		errs = append(errs, validator.ValidationError{Field: "fecha", Message: "fecha debe tener formato YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r CreateProcessRequest) ToEntity() Process {
	return Process{BraceletID: r.BraceletID, FruitAmount: r.FruitAmount, At: r.at}
}

type UpdateProcessRequest struct {
	ID int64 `json:"-"`
	CreateProcessRequest
}

type RegisterFromBraceletRequest struct {
	BraceletID  string          `json:"pulsera_uuid"`
	FruitAmount decimal.Decimal `json:"cantidad_fruta"`
}

func (r *RegisterFromBraceletRequest) Validate() error {
	r.BraceletID = strings.TrimSpace(r.BraceletID)
	if r.BraceletID == "" || r.FruitAmount.IsZero() {
		return ErrMissingData
	}
	if r.FruitAmount.IsNegative() {
		return validator.ValidationErrors{{Field: "cantidad_fruta", Message: "cantidad_fruta debe ser mayor que 0"}}
	}
	return nil
}

type RegisterFromBraceletResponse struct {
	ProcessID  int64  `json:"id"`
	WorkerName string `json:"-"`
}

type DailySummaryRequest struct {
	BraceletID string
	Date       string
}

type SummaryWorker struct {
	Names      string `json:"nombres"`
	Role       string `json:"rol"`
	BraceletID string `json:"pulsera_uuid"`
}

type SummaryTotals struct {
	Count      int64           `json:"procesos_realizados"`
	TotalFruit decimal.Decimal `json:"total_fruta"`
}

type DailySummaryResponse struct {
	Date   string        `json:"fecha"`
	Worker SummaryWorker `json:"trabajador"`
	Totals SummaryTotals `json:"resumen"`
}
