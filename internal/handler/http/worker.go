package http

import (
	"net/http"

	"github.com/faena-labs/faena-backend-go/internal/domain/worker"
	"github.com/faena-labs/faena-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkerHandler interface {
	CreateWorker(w http.ResponseWriter, r *http.Request)
	GetWorker(w http.ResponseWriter, r *http.Request)
	ListWorkers(w http.ResponseWriter, r *http.Request)
	UpdateWorker(w http.ResponseWriter, r *http.Request)
	DeleteWorker(w http.ResponseWriter, r *http.Request)
	GetWorkerByBracelet(w http.ResponseWriter, r *http.Request)

	RegisterBracelet(w http.ResponseWriter, r *http.Request)
	ListBracelets(w http.ResponseWriter, r *http.Request)
	SetBraceletStatus(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	workerService worker.WorkerService
}

func NewWorkerHandler(workerService worker.WorkerService) WorkerHandler {
	return &workerHandlerImpl{
		workerService: workerService,
	}
}

// ==================== WORKER HANDLERS ====================

func (h *workerHandlerImpl) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var req worker.CreateWorkerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.workerService.CreateWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Trabajador creado correctamente", result)
}

func (h *workerHandlerImpl) GetWorker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.workerService.GetWorker(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workerHandlerImpl) ListWorkers(w http.ResponseWriter, r *http.Request) {
	results, err := h.workerService.ListWorkers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *workerHandlerImpl) UpdateWorker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req worker.UpdateWorkerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	if err := h.workerService.UpdateWorker(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Trabajador actualizado correctamente", nil)
}

func (h *workerHandlerImpl) DeleteWorker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.workerService.DeleteWorker(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Trabajador eliminado correctamente", nil)
}

func (h *workerHandlerImpl) GetWorkerByBracelet(w http.ResponseWriter, r *http.Request) {
	result, err := h.workerService.GetWorkerByBracelet(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ==================== BRACELET HANDLERS ====================

func (h *workerHandlerImpl) RegisterBracelet(w http.ResponseWriter, r *http.Request) {
	var req worker.RegisterBraceletRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.workerService.RegisterBracelet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pulsera registrada correctamente", result)
}

func (h *workerHandlerImpl) ListBracelets(w http.ResponseWriter, r *http.Request) {
	results, err := h.workerService.ListBracelets(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *workerHandlerImpl) SetBraceletStatus(w http.ResponseWriter, r *http.Request) {
	var req worker.SetBraceletStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.UUID = chi.URLParam(r, "uuid")

	if err := h.workerService.SetBraceletStatus(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Estado de la pulsera actualizado correctamente", nil)
}
