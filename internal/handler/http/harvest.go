package http

import (
	"fmt"
	"net/http"

	"github.com/faena-labs/faena-backend-go/internal/domain/harvest"
	"github.com/faena-labs/faena-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HarvestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	RegisterFromBracelet(w http.ResponseWriter, r *http.Request)
	DailySummary(w http.ResponseWriter, r *http.Request)
}

type harvestHandlerImpl struct {
	harvestService harvest.HarvestService
}

func NewHarvestHandler(harvestService harvest.HarvestService) HarvestHandler {
	return &harvestHandlerImpl{
		harvestService: harvestService,
	}
}

func (h *harvestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req harvest.CreateProcessRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.harvestService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Proceso creado correctamente", result)
}

func (h *harvestHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.harvestService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *harvestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.harvestService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *harvestHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req harvest.UpdateProcessRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	if err := h.harvestService.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Proceso actualizado correctamente", nil)
}

func (h *harvestHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.harvestService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Proceso eliminado correctamente", nil)
}

func (h *harvestHandlerImpl) RegisterFromBracelet(w http.ResponseWriter, r *http.Request) {
	var req harvest.RegisterFromBraceletRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.harvestService.RegisterFromBracelet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("Proceso registrado para %s", result.WorkerName), result)
}

func (h *harvestHandlerImpl) DailySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.harvestService.DailySummary(r.Context(), harvest.DailySummaryRequest{
		BraceletID: chi.URLParam(r, "pulsera_uuid"),
		Date:       r.URL.Query().Get("fecha"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
