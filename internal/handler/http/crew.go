package http

import (
	"net/http"

	"github.com/faena-labs/faena-backend-go/internal/domain/crew"
	"github.com/faena-labs/faena-backend-go/internal/handler/http/response"
)

type CrewHandler interface {
	// Crew member handlers
	CreateMember(w http.ResponseWriter, r *http.Request)
	GetMember(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
	UpdateMember(w http.ResponseWriter, r *http.Request)
	DeleteMember(w http.ResponseWriter, r *http.Request)

	// Crew task handlers
	CreateTask(w http.ResponseWriter, r *http.Request)
	GetTask(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)

	Summary(w http.ResponseWriter, r *http.Request)
}

type crewHandlerImpl struct {
	crewService crew.CrewService
}

func NewCrewHandler(crewService crew.CrewService) CrewHandler {
	return &crewHandlerImpl{
		crewService: crewService,
	}
}

// ==================== MEMBER HANDLERS ====================

func (h *crewHandlerImpl) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req crew.CreateMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.crewService.CreateMember(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Trabajador asignado correctamente", result)
}

func (h *crewHandlerImpl) GetMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.crewService.GetMember(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *crewHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	results, err := h.crewService.ListMembers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *crewHandlerImpl) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req crew.UpdateMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	if err := h.crewService.UpdateMember(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asignación actualizada correctamente", nil)
}

func (h *crewHandlerImpl) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.crewService.DeleteMember(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asignación eliminada correctamente", nil)
}

// ==================== TASK HANDLERS ====================

func (h *crewHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req crew.CreateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.crewService.CreateTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Trabajo asignado a cuadrilla", result)
}

func (h *crewHandlerImpl) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.crewService.GetTask(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *crewHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	results, err := h.crewService.ListTasks(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *crewHandlerImpl) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req crew.UpdateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	if err := h.crewService.UpdateTask(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asignación actualizada correctamente", nil)
}

func (h *crewHandlerImpl) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.crewService.DeleteTask(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asignación eliminada correctamente", nil)
}

// Summary returns the crew's works and workers for ?fecha=.
func (h *crewHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	summary, err := h.crewService.Summary(r.Context(), crew.SummaryRequest{CrewID: id, Date: r.URL.Query().Get("fecha")})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, crew.NewSummaryResponse(summary))
}
