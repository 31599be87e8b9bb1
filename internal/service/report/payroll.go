package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/payroll"
	"github.com/faena-labs/faena-backend-go/internal/domain/report"
	"github.com/faena-labs/faena-backend-go/internal/pkg/pdf"
	"github.com/shopspring/decimal"
)

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// SettlementPDF implements report.ReportService.
func (s *ReportServiceImpl) SettlementPDF(ctx context.Context, id int64) (report.File, error) {
	slip, err := s.Settlements.GetSlip(ctx, id)
	if err != nil {
		return report.File{}, err
	}

	doc := pdf.New("Liquidación de Sueldo")
	writeSlip(doc, slip)

	return s.pdfFile(fmt.Sprintf("liquidacion_%d.pdf", id), doc)
}

// WorkerSettlementsPDF implements report.ReportService.
func (s *ReportServiceImpl) WorkerSettlementsPDF(ctx context.Context, req payroll.ExportByWorkerRequest) (report.File, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return report.File{}, err
	}

	slips, err := s.Settlements.ListSlipsByWorker(ctx, filter)
	if err != nil {
		return report.File{}, err
	}
	if len(slips) == 0 {
		noSettlements := &payroll.NoSettlementsError{WorkerID: filter.WorkerID}
		if filter.From != nil {
			noSettlements.From = filter.From.Format(time.DateOnly)
			noSettlements.To = filter.To.Format(time.DateOnly)
		}
		return report.File{}, noSettlements
	}

	doc := pdf.New("Liquidación de Sueldo")
	for i, slip := range slips {
		if i > 0 {
			doc.Page("Liquidación de Sueldo")
		}
		writeSlip(doc, slip)
	}

	return s.pdfFile(fmt.Sprintf("liquidaciones_trabajador_%d.pdf", filter.WorkerID), doc)
}

func writeSlip(doc *pdf.Document, slip payroll.Slip) {
	doc.Field("Empresa", slip.CompanyName)
	doc.Field("Trabajador", slip.WorkerName)
	doc.Field("RUT", deref(slip.WorkerRut))
	doc.Field("Cargo", slip.WorkerRole)
	doc.Field("Inicio contrato", slip.ContractStarts.Format(time.DateOnly))
	doc.Field("Término contrato", dateOrDash(slip.ContractEnds))
	doc.Field("Mes", periodName(slip.SettledOn))
	doc.Field("Días trabajados", fmt.Sprint(slip.DaysWorked))

	columns := []pdf.Column{{Header: "Concepto"}, {Header: "Monto", Width: 50, Align: "R"}}

	doc.Heading("Haberes")
	doc.Table(columns, [][]string{
		{"Sueldo base", formatCLP(slip.BaseSalary)},
		{"Gratificación", formatCLP(slip.Bonus)},
		{"Colación", formatCLP(slip.MealAllowance)},
		{"Asignación de gastos", formatCLP(slip.ExpenseAllowance)},
		{"Total haberes", formatCLP(slip.TotalEarnings)},
	})

	doc.Heading("Descuentos")
	doc.Table(columns, [][]string{
		{"Cotización previsional (" + deref(slip.PensionFund) + ")", formatCLP(slip.PensionContribution)},
		{"Cotización salud (" + deref(slip.HealthProvider) + ")", formatCLP(slip.HealthContribution)},
		{"Seguro de cesantía", formatCLP(slip.UnemploymentInsurance)},
		{"Impuesto único", formatCLP(slip.IncomeTax)},
		{"Otros descuentos", formatCLP(slip.OtherDeductions)},
		{"Total descuentos", formatCLP(slip.TotalDeductions)},
	})

	doc.Heading("Líquido a pagar: " + formatCLP(slip.NetPay))
	doc.Paragraph("Certifico que he recibido de mi empleador, a mi entera satisfacción, el saldo líquido " +
		"indicado en la presente liquidación, sin tener cargo ni cobro posterior que hacer.")
}

func periodName(t time.Time) string {
	return fmt.Sprintf("%s de %d", monthNames[t.Month()-1], t.Year())
}

// formatCLP renders whole pesos with dot thousand separators, e.g. $1.234.567.
func formatCLP(amount decimal.Decimal) string {
	digits := amount.Round(0).Abs().String()

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if amount.Round(0).IsNegative() {
		return "-$" + b.String()
	}
	return "$" + b.String()
}
