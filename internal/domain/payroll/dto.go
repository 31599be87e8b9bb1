package payroll

import (
	"time"

	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SETTLEMENT DTOs ==========

type SettlementResponse struct {
	ID                    int64           `json:"id"`
	AssignmentID          int64           `json:"contrato_trabajador_id"`
	SettledOn             string          `json:"fecha_liquidacion"`
	DaysWorked            int             `json:"dias_trabajados"`
	BaseSalary            decimal.Decimal `json:"sueldo_base"`
	Bonus                 decimal.Decimal `json:"gratificacion"`
	MealAllowance         decimal.Decimal `json:"colacion"`
	ExpenseAllowance      decimal.Decimal `json:"asignacion_gastos"`
	PensionContribution   decimal.Decimal `json:"cotizacion_prevision"`
	HealthContribution    decimal.Decimal `json:"cotizacion_salud"`
	UnemploymentInsurance decimal.Decimal `json:"seguro_cesantia"`
	IncomeTax             decimal.Decimal `json:"impuesto_unico"`
	OtherDeductions       decimal.Decimal `json:"otros_descuentos"`
	PensionFund           *string         `json:"afp_nombre"`
	HealthProvider        *string         `json:"salud_nombre"`
	TotalEarnings         decimal.Decimal `json:"total_haberes"`
	TotalDeductions       decimal.Decimal `json:"total_descuentos"`
	NetPay                decimal.Decimal `json:"liquido_final"`
}

func NewSettlementResponse(s Settlement) SettlementResponse {
	return SettlementResponse{
		ID:                    s.ID,
		AssignmentID:          s.AssignmentID,
		SettledOn:             s.SettledOn.Format(time.DateOnly),
		DaysWorked:            s.DaysWorked,
		BaseSalary:            s.BaseSalary,
		Bonus:                 s.Bonus,
		MealAllowance:         s.MealAllowance,
		ExpenseAllowance:      s.ExpenseAllowance,
		PensionContribution:   s.PensionContribution,
		HealthContribution:    s.HealthContribution,
		UnemploymentInsurance: s.UnemploymentInsurance,
		IncomeTax:             s.IncomeTax,
		OtherDeductions:       s.OtherDeductions,
		PensionFund:           s.PensionFund,
		HealthProvider:        s.HealthProvider,
		TotalEarnings:         s.TotalEarnings,
		TotalDeductions:       s.TotalDeductions,
		NetPay:                s.NetPay,
	}
}

// CreateSettlementRequest leaves the totals optional. Missing totals are
// derived from the line items.
type CreateSettlementRequest struct {
	AssignmentID          int64            `json:"contrato_trabajador_id"`
	SettledOn             string           `json:"fecha_liquidacion"`
	DaysWorked            int              `json:"dias_trabajados"`
	BaseSalary            decimal.Decimal  `json:"sueldo_base"`
	Bonus                 decimal.Decimal  `json:"gratificacion"`
	MealAllowance         decimal.Decimal  `json:"colacion"`
	ExpenseAllowance      decimal.Decimal  `json:"asignacion_gastos"`
	PensionContribution   decimal.Decimal  `json:"cotizacion_prevision"`
	HealthContribution    decimal.Decimal  `json:"cotizacion_salud"`
	UnemploymentInsurance decimal.Decimal  `json:"seguro_cesantia"`
	IncomeTax             decimal.Decimal  `json:"impuesto_unico"`
	OtherDeductions       decimal.Decimal  `json:"otros_descuentos"`
	PensionFund           *string          `json:"afp_nombre,omitempty"`
	HealthProvider        *string          `json:"salud_nombre,omitempty"`
	TotalEarnings         *decimal.Decimal `json:"total_haberes,omitempty"`
	TotalDeductions       *decimal.Decimal `json:"total_descuentos,omitempty"`
	NetPay                *decimal.Decimal `json:"liquido_final,omitempty"`
}

func (r *CreateSettlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AssignmentID <= 0 || validator.IsEmpty(r.SettledOn) {
		errs = append(errs, validator.ValidationError{
			Field:   "contrato_trabajador_id",
			Message: "contrato_trabajador_id y fecha_liquidacion son obligatorios",
		})
		return errs
	}
	if _, ok := validator.IsValidDate(r.SettledOn); !ok {
		errs = append(errs, validator.ValidationError{Field: "fecha_liquidacion", Message: "fecha_liquidacion debe tener formato YYYY-MM-DD"})
	}
	if r.DaysWorked < 0 || r.DaysWorked > 31 {
		errs = append(errs, validator.ValidationError{Field: "dias_trabajados", Message: "dias_trabajados debe estar entre 0 y 31"})
	}
	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"sueldo_base", r.BaseSalary},
		{"gratificacion", r.Bonus},
		{"colacion", r.MealAllowance},
		{"asignacion_gastos", r.ExpenseAllowance},
		{"cotizacion_prevision", r.PensionContribution},
		{"cotizacion_salud", r.HealthContribution},
		{"seguro_cesantia", r.UnemploymentInsurance},
		{"impuesto_unico", r.IncomeTax},
		{"otros_descuentos", r.OtherDeductions},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: a.field, Message: a.field + " no puede ser negativo"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity must be called after a successful Validate.
func (r CreateSettlementRequest) ToEntity() Settlement {
	s := Settlement{
		AssignmentID:          r.AssignmentID,
		DaysWorked:            r.DaysWorked,
		BaseSalary:            r.BaseSalary,
		Bonus:                 r.Bonus,
		MealAllowance:         r.MealAllowance,
		ExpenseAllowance:      r.ExpenseAllowance,
		PensionContribution:   r.PensionContribution,
		HealthContribution:    r.HealthContribution,
		UnemploymentInsurance: r.UnemploymentInsurance,
		IncomeTax:             r.IncomeTax,
		OtherDeductions:       r.OtherDeductions,
		PensionFund:           r.PensionFund,
		HealthProvider:        r.HealthProvider,
	}
	s.SettledOn, _ = validator.IsValidDate(r.SettledOn)

	s.TotalEarnings = s.Earnings()
	if r.TotalEarnings != nil {
		s.TotalEarnings = *r.TotalEarnings
	}
	s.TotalDeductions = s.Deductions()
	if r.TotalDeductions != nil {
		s.TotalDeductions = *r.TotalDeductions
	}
	s.NetPay = s.TotalEarnings.Sub(s.TotalDeductions)
	if r.NetPay != nil {
		s.NetPay = *r.NetPay
	}
	return s
}

type UpdateSettlementRequest struct {
	ID int64 `json:"-"`
	CreateSettlementRequest
}

// ExportByWorkerRequest holds the raw query of the per worker export.
type ExportByWorkerRequest struct {
	WorkerID string
	From     string
	To       string
}

func (r ExportByWorkerRequest) ToFilter() (WorkerFilter, error) {
	if r.WorkerID == "" {
		return WorkerFilter{}, ErrWorkerIDRequired
	}
	id, ok := validator.ParseID(r.WorkerID)
	if !ok {
		return WorkerFilter{}, validator.ValidationErrors{{Field: "trabajador_id", Message: "trabajador_id es inválido"}}
	}

	f := WorkerFilter{WorkerID: id}
	if r.From != "" && r.To != "" {
		from, okFrom := validator.IsValidDate(r.From)
		to, okTo := validator.IsValidDate(r.To)
		if !okFrom || !okTo {
			return WorkerFilter{}, validator.ValidationErrors{{Field: "desde", Message: "desde y hasta deben tener formato YYYY-MM-DD"}}
		}
		f.From, f.To = &from, &to
	}
	return f, nil
}
