package http

import (
	"net/http"

	"github.com/faena-labs/faena-backend-go/internal/domain/attendance"
	"github.com/faena-labs/faena-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	RecordMark(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// RecordMark implements AttendanceHandler.
func (h *attendanceHandlerImpl) RecordMark(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordMarkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.attendanceService.RecordMark(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Status == attendance.MarkCreated {
		response.Created(w, result.Message(), result)
		return
	}
	response.SuccessWithMessage(w, result.Message(), result)
}

// MonthlySummary implements AttendanceHandler. The body is written without
// the response envelope.
func (h *attendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.BuildMonthlySummary(r.Context(), monthlySummaryRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

func monthlySummaryRequest(r *http.Request) attendance.MonthlySummaryRequest {
	return attendance.MonthlySummaryRequest{
		BraceletID: chi.URLParam(r, "pulsera_uuid"),
		Year:       r.URL.Query().Get("anio"),
		Month:      r.URL.Query().Get("mes"),
	}
}
