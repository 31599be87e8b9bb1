package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement is a monthly pay slip for a worker's contract assignment.
type Settlement struct {
	ID                    int64
	AssignmentID          int64
	SettledOn             time.Time
	DaysWorked            int
	BaseSalary            decimal.Decimal
	Bonus                 decimal.Decimal
	MealAllowance         decimal.Decimal
	ExpenseAllowance      decimal.Decimal
	PensionContribution   decimal.Decimal
	HealthContribution    decimal.Decimal
	UnemploymentInsurance decimal.Decimal
	IncomeTax             decimal.Decimal
	OtherDeductions       decimal.Decimal
	PensionFund           *string
	HealthProvider        *string
	TotalEarnings         decimal.Decimal
	TotalDeductions       decimal.Decimal
	NetPay                decimal.Decimal
}

// Earnings adds the taxable and non taxable items.
func (s Settlement) Earnings() decimal.Decimal {
	return decimal.Sum(s.BaseSalary, s.Bonus, s.MealAllowance, s.ExpenseAllowance)
}

// Deductions adds the legal and other deductions.
func (s Settlement) Deductions() decimal.Decimal {
	return decimal.Sum(s.PensionContribution, s.HealthContribution, s.UnemploymentInsurance, s.IncomeTax, s.OtherDeductions)
}

// Slip is a settlement joined with the worker, contract and company it belongs to.
type Slip struct {
	Settlement
	WorkerName     string
	WorkerRut      *string
	WorkerRole     string
	ContractStarts time.Time
	ContractEnds   *time.Time
	CompanyName    string
}

type WorkerFilter struct {
	WorkerID int64
	From     *time.Time
	To       *time.Time
}
