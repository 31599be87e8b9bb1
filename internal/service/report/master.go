package report

import (
	"context"
	"fmt"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/master/assignment"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/quarter"
	"github.com/faena-labs/faena-backend-go/internal/domain/report"
	"github.com/faena-labs/faena-backend-go/internal/pkg/pdf"
)

// CompaniesPDF implements report.ReportService.
func (s *ReportServiceImpl) CompaniesPDF(ctx context.Context) (report.File, error) {
	companies, err := s.Companies.List(ctx)
	if err != nil {
		return report.File{}, err
	}
	if len(companies) == 0 {
		return report.File{}, report.ErrNoCompanies
	}

	rows := make([][]string, 0, len(companies))
	for _, c := range companies {
		rows = append(rows, []string{
			fmt.Sprint(c.ID), c.Contract, c.AwardedOn.Format(time.DateOnly), dateOrDash(c.WorkEndsOn), deref(c.Documents),
		})
	}

	doc := pdf.NewLandscape("Listado de Empresas")
	doc.Table([]pdf.Column{
		{Header: "ID", Width: 15},
		{Header: "Contrato"},
		{Header: "Adjudicación", Width: 30},
		{Header: "Término Faena", Width: 30},
		{Header: "Documentos"},
	}, rows)

	return s.pdfFile("empresas.pdf", doc)
}

// ContractorsPDF implements report.ReportService.
func (s *ReportServiceImpl) ContractorsPDF(ctx context.Context) (report.File, error) {
	contractors, err := s.Contractors.List(ctx)
	if err != nil {
		return report.File{}, err
	}
	if len(contractors) == 0 {
		return report.File{}, report.ErrNoContractors
	}

	rows := make([][]string, 0, len(contractors))
	for _, c := range contractors {
		rows = append(rows, []string{fmt.Sprint(c.ID), c.LegalName, deref(c.CompanyName), deref(c.UserName)})
	}

	doc := pdf.New("Listado de Contratistas")
	doc.Table([]pdf.Column{
		{Header: "ID", Width: 15},
		{Header: "Razón Social"},
		{Header: "Empresa"},
		{Header: "Usuario"},
	}, rows)

	return s.pdfFile("contratistas.pdf", doc)
}

// ContractsPDF implements report.ReportService.
func (s *ReportServiceImpl) ContractsPDF(ctx context.Context) (report.File, error) {
	contracts, err := s.Contracts.List(ctx)
	if err != nil {
		return report.File{}, err
	}
	if len(contracts) == 0 {
		return report.File{}, report.ErrNoContracts
	}

	rows := make([][]string, 0, len(contracts))
	for _, c := range contracts {
		rows = append(rows, []string{
			fmt.Sprint(c.ID), deref(c.ContractorName), c.Document, c.Date.Format(time.DateOnly), deref(c.Documentation),
		})
	}

	doc := pdf.NewLandscape("Listado de Contratos")
	doc.Table([]pdf.Column{
		{Header: "ID", Width: 15},
		{Header: "Contratista"},
		{Header: "Documento"},
		{Header: "Fecha", Width: 28},
		{Header: "Documentación"},
	}, rows)

	return s.pdfFile("contratos.pdf", doc)
}

// AssignmentsPDF implements report.ReportService.
func (s *ReportServiceImpl) AssignmentsPDF(ctx context.Context, req assignment.ExportAssignmentRequest) (report.File, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return report.File{}, err
	}

	assignments, err := s.Assignments.List(ctx, filter)
	if err != nil {
		return report.File{}, err
	}
	if len(assignments) == 0 {
		return report.File{}, assignment.ErrNoAssignments
	}

	rows := make([][]string, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, []string{
			fmt.Sprint(a.ID), deref(a.WorkerName), deref(a.Document),
			a.StartsOn.Format(time.DateOnly), dateOrDash(a.EndsOn), string(a.Status),
		})
	}

	doc := pdf.NewLandscape(req.Title())
	doc.Table([]pdf.Column{
		{Header: "ID", Width: 15},
		{Header: "Trabajador"},
		{Header: "Contrato"},
		{Header: "Inicio", Width: 28},
		{Header: "Término", Width: 28},
		{Header: "Estado", Width: 25},
	}, rows)

	return s.pdfFile("asignaciones_contrato_trabajador.pdf", doc)
}

// QuartersPDF implements report.ReportService.
func (s *ReportServiceImpl) QuartersPDF(ctx context.Context, req quarter.ExportQuarterRequest) (report.File, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return report.File{}, err
	}

	quarters, err := s.Quarters.List(ctx, filter)
	if err != nil {
		return report.File{}, err
	}
	if len(quarters) == 0 {
		return report.File{}, quarter.ErrNoQuarters
	}

	rows := make([][]string, 0, len(quarters))
	for _, q := range quarters {
		rows = append(rows, []string{
			fmt.Sprint(q.ID), deref(q.CompanyName), q.FruitType, q.FruitAmount.StringFixed(2), q.Date.Format(time.DateOnly),
		})
	}

	doc := pdf.New(req.Title())
	doc.Table([]pdf.Column{
		{Header: "ID", Width: 15},
		{Header: "Empresa"},
		{Header: "Tipo Fruta", Width: 35},
		{Header: "Cantidad", Width: 25, Align: "R"},
		{Header: "Fecha", Width: 28},
	}, rows)

	return s.pdfFile("reporte_cuarteles.pdf", doc)
}
