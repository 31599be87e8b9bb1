package http

import (
	"log/slog"
	"net/http"

	"github.com/faena-labs/faena-backend-go/internal/domain/crew"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/assignment"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/quarter"
	"github.com/faena-labs/faena-backend-go/internal/domain/payroll"
	"github.com/faena-labs/faena-backend-go/internal/domain/report"
	"github.com/faena-labs/faena-backend-go/internal/handler/http/response"
)

// ReportHandler serves every downloadable document.
type ReportHandler interface {
	MonthlyAttendancePDF(w http.ResponseWriter, r *http.Request)
	MonthlyAttendanceXLSX(w http.ResponseWriter, r *http.Request)

	CompaniesPDF(w http.ResponseWriter, r *http.Request)
	ContractorsPDF(w http.ResponseWriter, r *http.Request)
	ContractsPDF(w http.ResponseWriter, r *http.Request)
	AssignmentsPDF(w http.ResponseWriter, r *http.Request)
	QuartersPDF(w http.ResponseWriter, r *http.Request)
	CrewSummaryPDF(w http.ResponseWriter, r *http.Request)

	SettlementPDF(w http.ResponseWriter, r *http.Request)
	WorkerSettlementsPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func (h *reportHandlerImpl) send(w http.ResponseWriter, r *http.Request, file report.File, err error) {
	if err != nil {
		slog.Error("report generation failed", "path", r.URL.Path, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Attachment(w, file.Name, file.ContentType, file.Content)
}

func (h *reportHandlerImpl) MonthlyAttendancePDF(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.MonthlyAttendancePDF(r.Context(), monthlySummaryRequest(r))
	h.send(w, r, file, err)
}

func (h *reportHandlerImpl) MonthlyAttendanceXLSX(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.MonthlyAttendanceXLSX(r.Context(), monthlySummaryRequest(r))
	h.send(w, r, file, err)
}

func (h *reportHandlerImpl) CompaniesPDF(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.CompaniesPDF(r.Context())
	h.send(w, r, file, err)
}

func (h *reportHandlerImpl) ContractorsPDF(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.ContractorsPDF(r.Context())
	h.send(w, r, file, err)
}

func (h *reportHandlerImpl) ContractsPDF(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.ContractsPDF(r.Context())
	h.send(w, r, file, err)
}

func (h *reportHandlerImpl) AssignmentsPDF(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	file, err := h.reportService.AssignmentsPDF(r.Context(), assignment.ExportAssignmentRequest{
		ContractID: q.Get("contrato_id"),
		WorkerID:   q.Get("trabajador_id"),
	})
	h.send(w, r, file, err)
}

func (h *reportHandlerImpl) QuartersPDF(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	file, err := h.reportService.QuartersPDF(r.Context(), quarter.ExportQuarterRequest{
		CompanyID: q.Get("empresa_id"),
		From:      q.Get("desde"),
		To:        q.Get("hasta"),
	})
	h.send(w, r, file, err)
}

func (h *reportHandlerImpl) CrewSummaryPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	file, err := h.reportService.CrewSummaryPDF(r.Context(), crew.SummaryRequest{CrewID: id, Date: r.URL.Query().Get("fecha")})
	h.send(w, r, file, err)
}

func (h *reportHandlerImpl) SettlementPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	file, err := h.reportService.SettlementPDF(r.Context(), id)
	h.send(w, r, file, err)
}

func (h *reportHandlerImpl) WorkerSettlementsPDF(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	file, err := h.reportService.WorkerSettlementsPDF(r.Context(), payroll.ExportByWorkerRequest{
		WorkerID: q.Get("trabajador_id"),
		From:     q.Get("desde"),
		To:       q.Get("hasta"),
	})
	h.send(w, r, file, err)
}
