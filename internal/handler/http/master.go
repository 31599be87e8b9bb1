package http

import (
	"net/http"

	"github.com/faena-labs/faena-backend-go/internal/domain/master/assignment"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/contract"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/contractor"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/quarter"
	"github.com/faena-labs/faena-backend-go/internal/handler/http/response"
	"github.com/faena-labs/faena-backend-go/internal/service/master"
)

type MasterHandler interface {
	// Contractor handlers
	CreateContractor(w http.ResponseWriter, r *http.Request)
	GetContractor(w http.ResponseWriter, r *http.Request)
	ListContractors(w http.ResponseWriter, r *http.Request)
	UpdateContractor(w http.ResponseWriter, r *http.Request)
	DeleteContractor(w http.ResponseWriter, r *http.Request)

	// Contract handlers
	CreateContract(w http.ResponseWriter, r *http.Request)
	GetContract(w http.ResponseWriter, r *http.Request)
	ListContracts(w http.ResponseWriter, r *http.Request)
	UpdateContract(w http.ResponseWriter, r *http.Request)
	DeleteContract(w http.ResponseWriter, r *http.Request)

	// Contract assignment handlers
	CreateAssignment(w http.ResponseWriter, r *http.Request)
	GetAssignment(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	UpdateAssignment(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)

	// Quarter handlers
	CreateQuarter(w http.ResponseWriter, r *http.Request)
	GetQuarter(w http.ResponseWriter, r *http.Request)
	ListQuarters(w http.ResponseWriter, r *http.Request)
	UpdateQuarter(w http.ResponseWriter, r *http.Request)
	DeleteQuarter(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== CONTRACTOR HANDLERS ====================

func (h *masterHandlerImpl) CreateContractor(w http.ResponseWriter, r *http.Request) {
	var req contractor.CreateContractorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.masterService.CreateContractor(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contratista creado correctamente", result)
}

func (h *masterHandlerImpl) GetContractor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.masterService.GetContractor(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListContractors(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListContractors(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateContractor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req contractor.UpdateContractorRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	if err := h.masterService.UpdateContractor(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contratista actualizado correctamente", nil)
}

func (h *masterHandlerImpl) DeleteContractor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.masterService.DeleteContractor(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contratista eliminado correctamente", nil)
}

// ==================== CONTRACT HANDLERS ====================

func (h *masterHandlerImpl) CreateContract(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateContractRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.masterService.CreateContract(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contrato creado correctamente", result)
}

func (h *masterHandlerImpl) GetContract(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.masterService.GetContract(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListContracts(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListContracts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateContract(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req contract.UpdateContractRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	if err := h.masterService.UpdateContract(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contrato actualizado correctamente", nil)
}

func (h *masterHandlerImpl) DeleteContract(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.masterService.DeleteContract(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contrato eliminado correctamente", nil)
}

// ==================== CONTRACT ASSIGNMENT HANDLERS ====================

func (h *masterHandlerImpl) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignment.CreateAssignmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.masterService.CreateAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contrato asignado al trabajador correctamente", result)
}

func (h *masterHandlerImpl) GetAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.masterService.GetAssignment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListAssignments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req assignment.UpdateAssignmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	if err := h.masterService.UpdateAssignment(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asignación actualizada correctamente", nil)
}

func (h *masterHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.masterService.DeleteAssignment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asignación eliminada correctamente", nil)
}

// ==================== QUARTER HANDLERS ====================

func (h *masterHandlerImpl) CreateQuarter(w http.ResponseWriter, r *http.Request) {
	var req quarter.CreateQuarterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.masterService.CreateQuarter(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Cuartel creado exitosamente", result)
}

func (h *masterHandlerImpl) GetQuarter(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.masterService.GetQuarter(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListQuarters(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListQuarters(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateQuarter(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req quarter.UpdateQuarterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	if err := h.masterService.UpdateQuarter(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cuartel actualizado correctamente", nil)
}

func (h *masterHandlerImpl) DeleteQuarter(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.masterService.DeleteQuarter(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cuartel eliminado correctamente", nil)
}
