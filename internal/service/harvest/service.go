package harvest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/harvest"
	"github.com/faena-labs/faena-backend-go/internal/domain/worker"
	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
)

type HarvestServiceImpl struct {
	harvest.ProcessRepository
	workers  worker.WorkerRepository
	location *time.Location
	now      func() time.Time
}

type Option func(*HarvestServiceImpl)

func WithClock(now func() time.Time) Option {
	return func(s *HarvestServiceImpl) { s.now = now }
}

func NewHarvestService(processes harvest.ProcessRepository, workers worker.WorkerRepository, location *time.Location, opts ...Option) harvest.HarvestService {
	s := &HarvestServiceImpl{
		ProcessRepository: processes,
		workers:           workers,
		location:          location,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create implements harvest.HarvestService.
func (s *HarvestServiceImpl) Create(ctx context.Context, req harvest.CreateProcessRequest) (harvest.ProcessResponse, error) {
	if err := req.Validate(); err != nil {
		return harvest.ProcessResponse{}, err
	}

	created, err := s.ProcessRepository.Create(ctx, req.ToEntity())
	if err != nil {
		return harvest.ProcessResponse{}, err
	}
	return harvest.NewProcessResponse(created), nil
}

// GetByID implements harvest.HarvestService.
func (s *HarvestServiceImpl) GetByID(ctx context.Context, id int64) (harvest.ProcessResponse, error) {
	p, err := s.ProcessRepository.GetByID(ctx, id)
	if err != nil {
		return harvest.ProcessResponse{}, err
	}
	return harvest.NewProcessResponse(p), nil
}

// List implements harvest.HarvestService.
func (s *HarvestServiceImpl) List(ctx context.Context) ([]harvest.ProcessResponse, error) {
	processes, err := s.ProcessRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]harvest.ProcessResponse, 0, len(processes))
	for _, p := range processes {
		responses = append(responses, harvest.NewProcessResponse(p))
	}
	return responses, nil
}

// Update implements harvest.HarvestService.
func (s *HarvestServiceImpl) Update(ctx context.Context, req harvest.UpdateProcessRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	p := req.ToEntity()
	p.ID = req.ID
	return s.ProcessRepository.Update(ctx, p)
}

// Delete implements harvest.HarvestService.
func (s *HarvestServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.ProcessRepository.Delete(ctx, id)
}

// RegisterFromBracelet credits fruit to the worker wearing the bracelet, stamped now.
func (s *HarvestServiceImpl) RegisterFromBracelet(ctx context.Context, req harvest.RegisterFromBraceletRequest) (harvest.RegisterFromBraceletResponse, error) {
	if err := req.Validate(); err != nil {
		return harvest.RegisterFromBraceletResponse{}, err
	}

	w, err := s.workers.GetByBracelet(ctx, req.BraceletID)
	if err != nil {
		if errors.Is(err, worker.ErrNoWorkerForBracelet) {
			return harvest.RegisterFromBraceletResponse{}, harvest.ErrBraceletUnassigned
		}
		return harvest.RegisterFromBraceletResponse{}, fmt.Errorf("failed to get worker by bracelet: %w", err)
	}
	if w.BraceletStatus == nil || *w.BraceletStatus != worker.BraceletActive {
		return harvest.RegisterFromBraceletResponse{}, harvest.ErrBraceletInactive
	}

	created, err := s.ProcessRepository.Create(ctx, harvest.Process{
		BraceletID:  req.BraceletID,
		FruitAmount: req.FruitAmount,
		At:          s.now(),
	})
	if err != nil {
		return harvest.RegisterFromBraceletResponse{}, err
	}

	slog.Info("process registered from bracelet", "bracelet", req.BraceletID, "worker_id", w.ID, "process_id", created.ID)
	return harvest.RegisterFromBraceletResponse{ProcessID: created.ID, WorkerName: w.Names}, nil
}

// DailySummary counts the processes of a bracelet on a calendar date in the
// configured time zone.
func (s *HarvestServiceImpl) DailySummary(ctx context.Context, req harvest.DailySummaryRequest) (harvest.DailySummaryResponse, error) {
	if validator.IsEmpty(req.Date) {
		return harvest.DailySummaryResponse{}, harvest.ErrDateRequired
	}
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return harvest.DailySummaryResponse{}, harvest.ErrDateRequired
	}

	w, err := s.workers.GetByBracelet(ctx, req.BraceletID)
	if err != nil {
		if errors.Is(err, worker.ErrNoWorkerForBracelet) {
			return harvest.DailySummaryResponse{}, harvest.ErrNoWorkerForBracelet
		}
		return harvest.DailySummaryResponse{}, fmt.Errorf("failed to get worker by bracelet: %w", err)
	}

	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.location)
	totals, err := s.ProcessRepository.TotalsBetween(ctx, req.BraceletID, from, from.AddDate(0, 0, 1))
	if err != nil {
		return harvest.DailySummaryResponse{}, err
	}

	return harvest.DailySummaryResponse{
		Date: req.Date,
		Worker: harvest.SummaryWorker{
			Names:      w.Names,
			Role:       w.Role,
			BraceletID: req.BraceletID,
		},
		Totals: harvest.SummaryTotals{
			Count:      totals.Count,
			TotalFruit: totals.TotalFruit,
		},
	}, nil
}
