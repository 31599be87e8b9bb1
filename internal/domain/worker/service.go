package worker

import "context"

type WorkerService interface {
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	GetWorker(ctx context.Context, id int64) (WorkerResponse, error)
	ListWorkers(ctx context.Context) ([]WorkerResponse, error)
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) error
	DeleteWorker(ctx context.Context, id int64) error

	// GetWorkerByBracelet fails with ErrBraceletInactive when the bracelet is not active.
	GetWorkerByBracelet(ctx context.Context, braceletID string) (WorkerResponse, error)

	RegisterBracelet(ctx context.Context, req RegisterBraceletRequest) (BraceletResponse, error)
	ListBracelets(ctx context.Context) ([]BraceletResponse, error)
	SetBraceletStatus(ctx context.Context, req SetBraceletStatusRequest) error
}
