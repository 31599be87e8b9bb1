package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/attendance"
	"github.com/faena-labs/faena-backend-go/internal/domain/company"
	"github.com/faena-labs/faena-backend-go/internal/domain/crew"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/assignment"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/contract"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/contractor"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/quarter"
	"github.com/faena-labs/faena-backend-go/internal/domain/payroll"
	"github.com/faena-labs/faena-backend-go/internal/domain/report"
	"github.com/faena-labs/faena-backend-go/internal/pkg/pdf"
	"github.com/faena-labs/faena-backend-go/internal/pkg/spreadsheet"
	"github.com/shopspring/decimal"
)

// Sources groups what the report service reads from.
type Sources struct {
	Attendance  attendance.AttendanceService
	Crews       crew.CrewService
	Companies   company.CompanyRepository
	Contractors contractor.ContractorRepository
	Contracts   contract.ContractRepository
	Assignments assignment.AssignmentRepository
	Quarters    quarter.QuarterRepository
	Settlements payroll.SettlementRepository
}

type ReportServiceImpl struct {
	Sources
	location *time.Location
	now      func() time.Time
}

func NewReportService(sources Sources, location *time.Location) report.ReportService {
	return &ReportServiceImpl{Sources: sources, location: location, now: time.Now}
}

func (s *ReportServiceImpl) pdfFile(name string, doc *pdf.Document) (report.File, error) {
	doc.Footnote(s.now().In(s.location))
	content, err := doc.Bytes()
	if err != nil {
		return report.File{}, err
	}
	return report.File{Name: name, ContentType: pdf.ContentType, Content: content}, nil
}

// MonthlyAttendancePDF implements report.ReportService.
func (s *ReportServiceImpl) MonthlyAttendancePDF(ctx context.Context, req attendance.MonthlySummaryRequest) (report.File, error) {
	summary, err := s.Attendance.BuildMonthlySummary(ctx, req)
	if err != nil {
		return report.File{}, err
	}

	doc := pdf.New("Reporte Mensual de Asistencia")
	doc.Heading(fmt.Sprintf("%s (%s)", summary.Worker.Name, summary.Worker.Role))
	doc.Field("Mes", summary.Month)
	doc.Field("Días trabajados", fmt.Sprint(summary.Totals.DaysWorked))
	doc.Field("Horas trabajadas", summary.Totals.NetHours+" h")
	doc.Field("Horas colación", summary.Totals.BreakHours+" h")
	doc.Field("Horas brutas", summary.Totals.GrossHours+" h")
	doc.Heading("Detalle diario")

	rows := make([][]string, 0, len(summary.Days))
	for _, d := range summary.Days {
		rows = append(rows, []string{
			d.Date, clock(d.Entry), clock(d.BreakOut), clock(d.BreakIn), clock(d.Exit), d.NetHours,
		})
	}
	doc.Table([]pdf.Column{
		{Header: "Fecha", Width: 26},
		{Header: "Entrada", Align: "C"},
		{Header: "Salida Colación", Align: "C"},
		{Header: "Entrada Colación", Align: "C"},
		{Header: "Salida", Align: "C"},
		{Header: "Horas Trabajadas", Align: "R"},
	}, rows)

	return s.pdfFile(attendanceFileName(summary, "pdf"), doc)
}

// MonthlyAttendanceXLSX implements report.ReportService.
func (s *ReportServiceImpl) MonthlyAttendanceXLSX(ctx context.Context, req attendance.MonthlySummaryRequest) (report.File, error) {
	summary, err := s.Attendance.BuildMonthlySummary(ctx, req)
	if err != nil {
		return report.File{}, err
	}

	wb, err := spreadsheet.New("Asistencia")
	if err != nil {
		return report.File{}, err
	}

	steps := []func() error{
		func() error { return wb.Title("Reporte Mensual de Asistencia " + summary.Month) },
		func() error { return wb.Field("Trabajador", summary.Worker.Name) },
		func() error { return wb.Field("Rol", summary.Worker.Role) },
		func() error { return wb.Field("Pulsera", summary.Worker.BraceletID) },
		func() error { return wb.Field("Días trabajados", summary.Totals.DaysWorked) },
		func() error { return wb.Field("Horas brutas", hoursValue(summary.Totals.GrossMinutes)) },
		func() error { return wb.Field("Horas colación", hoursValue(summary.Totals.BreakMinutes)) },
		func() error { return wb.Field("Horas trabajadas", hoursValue(summary.Totals.NetMinutes)) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return report.File{}, err
		}
	}
	wb.Skip(1)

	rows := make([][]any, 0, len(summary.Days))
	for _, d := range summary.Days {
		rows = append(rows, []any{
			d.Date, clockValue(d.Entry), clockValue(d.BreakOut), clockValue(d.BreakIn), clockValue(d.Exit),
			hoursValue(d.GrossMinutes), hoursValue(d.BreakMinutes), hoursValue(d.NetMinutes),
		})
	}
	err = wb.Table([]spreadsheet.Column{
		{Header: "Fecha", Width: 14},
		{Header: "Entrada", Width: 10},
		{Header: "Salida Colación", Width: 16},
		{Header: "Entrada Colación", Width: 16},
		{Header: "Salida", Width: 10},
		{Header: "Horas Brutas", Width: 13},
		{Header: "Horas Colación", Width: 14},
		{Header: "Horas Trabajadas", Width: 16},
	}, rows)
	if err != nil {
		return report.File{}, err
	}

	content, err := wb.Bytes()
	if err != nil {
		return report.File{}, err
	}
	return report.File{
		Name:        attendanceFileName(summary, "xlsx"),
		ContentType: spreadsheet.ContentType,
		Content:     content,
	}, nil
}

// CrewSummaryPDF implements report.ReportService.
func (s *ReportServiceImpl) CrewSummaryPDF(ctx context.Context, req crew.SummaryRequest) (report.File, error) {
	summary, err := s.Crews.Summary(ctx, req)
	if err != nil {
		return report.File{}, err
	}
	res := crew.NewSummaryResponse(summary)

	doc := pdf.New(fmt.Sprintf("Resumen de Cuadrilla #%d", res.CrewID))
	doc.Field("Fecha", res.Date)
	doc.Field("Total trabajadores", fmt.Sprint(res.Totals.TotalWorkers))
	doc.Field("Total fruta", res.Totals.TotalFruit)

	doc.Heading("Trabajos asignados")
	works := make([][]string, 0, len(res.Works))
	for _, w := range res.Works {
		value := "-"
		if w.Value != nil {
			value = w.Value.String()
		}
		works = append(works, []string{fmt.Sprint(w.ID), w.Name, deref(w.Type), value})
	}
	doc.Table([]pdf.Column{
		{Header: "ID", Width: 15},
		{Header: "Nombre"},
		{Header: "Tipo"},
		{Header: "Valor", Align: "R"},
	}, works)

	doc.Heading("Trabajadores")
	workers := make([][]string, 0, len(res.Workers))
	for _, w := range res.Workers {
		workers = append(workers, []string{w.Names, w.Role, w.BraceletID, w.FruitAmount.StringFixed(2)})
	}
	doc.Table([]pdf.Column{
		{Header: "Nombre"},
		{Header: "Rol", Width: 30},
		{Header: "Pulsera", Width: 60},
		{Header: "Fruta", Width: 25, Align: "R"},
	}, workers)

	return s.pdfFile(fmt.Sprintf("resumen_cuadrilla_%d_%s.pdf", res.CrewID, res.Date), doc)
}

func attendanceFileName(summary attendance.MonthlySummary, ext string) string {
	name := strings.Join(strings.Fields(summary.Worker.Name), "_")
	return fmt.Sprintf("reporte_asistencia_%s_%s.%s", summary.Month, name, ext)
}

func clock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("15:04")
}

// clockValue leaves missing marks as empty cells.
func clockValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("15:04")
}

// hoursValue keeps hour columns numeric in the workbook.
func hoursValue(minutes int64) float64 {
	return decimal.NewFromInt(minutes).Div(decimal.NewFromInt(60)).Round(2).InexactFloat64()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func dateOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.DateOnly)
}
