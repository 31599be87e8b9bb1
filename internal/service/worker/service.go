package worker

import (
	"context"

	"github.com/faena-labs/faena-backend-go/internal/domain/worker"
	"github.com/google/uuid"
)

type WorkerServiceImpl struct {
	worker.WorkerRepository
	worker.BraceletRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository, braceletRepo worker.BraceletRepository) worker.WorkerService {
	return &WorkerServiceImpl{
		WorkerRepository:   workerRepo,
		BraceletRepository: braceletRepo,
	}
}

// CreateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.WorkerRepository.Create(ctx, req.ToEntity())
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.NewWorkerResponse(created), nil
}

// GetWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id int64) (worker.WorkerResponse, error) {
	w, err := s.WorkerRepository.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(w), nil
}

// ListWorkers implements worker.WorkerService.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context) ([]worker.WorkerResponse, error) {
	workers, err := s.WorkerRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.NewWorkerResponse(w))
	}
	return responses, nil
}

// UpdateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity := req.ToEntity()
	entity.ID = req.ID
	return s.WorkerRepository.Update(ctx, entity)
}

// DeleteWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, id int64) error {
	return s.WorkerRepository.Delete(ctx, id)
}

// GetWorkerByBracelet implements worker.WorkerService.
func (s *WorkerServiceImpl) GetWorkerByBracelet(ctx context.Context, braceletID string) (worker.WorkerResponse, error) {
	w, err := s.WorkerRepository.GetByBracelet(ctx, braceletID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if w.BraceletStatus == nil || *w.BraceletStatus != worker.BraceletActive {
		return worker.WorkerResponse{}, worker.ErrBraceletInactive
	}

	return worker.NewWorkerResponse(w), nil
}

// RegisterBracelet implements worker.WorkerService.
func (s *WorkerServiceImpl) RegisterBracelet(ctx context.Context, req worker.RegisterBraceletRequest) (worker.BraceletResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.BraceletResponse{}, err
	}
	if req.UUID == "" {
		req.UUID = uuid.NewString()
	}

	created, err := s.BraceletRepository.Create(ctx, worker.Bracelet{UUID: req.UUID, Status: req.Status})
	if err != nil {
		return worker.BraceletResponse{}, err
	}

	return worker.NewBraceletResponse(created), nil
}

// ListBracelets implements worker.WorkerService.
func (s *WorkerServiceImpl) ListBracelets(ctx context.Context) ([]worker.BraceletResponse, error) {
	bracelets, err := s.BraceletRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.BraceletResponse, 0, len(bracelets))
	for _, b := range bracelets {
		responses = append(responses, worker.NewBraceletResponse(b))
	}
	return responses, nil
}

// SetBraceletStatus implements worker.WorkerService.
func (s *WorkerServiceImpl) SetBraceletStatus(ctx context.Context, req worker.SetBraceletStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.BraceletRepository.UpdateStatus(ctx, req.UUID, req.Status)
}
