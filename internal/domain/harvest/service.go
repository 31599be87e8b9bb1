package harvest

import "context"

type HarvestService interface {
	Create(ctx context.Context, req CreateProcessRequest) (ProcessResponse, error)
	GetByID(ctx context.Context, id int64) (ProcessResponse, error)
	List(ctx context.Context) ([]ProcessResponse, error)
	Update(ctx context.Context, req UpdateProcessRequest) error
	Delete(ctx context.Context, id int64) error

	RegisterFromBracelet(ctx context.Context, req RegisterFromBraceletRequest) (RegisterFromBraceletResponse, error)
	DailySummary(ctx context.Context, req DailySummaryRequest) (DailySummaryResponse, error)
}
