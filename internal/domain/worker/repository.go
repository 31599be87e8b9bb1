package worker

import "context"

type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id int64) (Worker, error)
	GetByBracelet(ctx context.Context, braceletID string) (Worker, error)
	List(ctx context.Context) ([]Worker, error)
	Update(ctx context.Context, w Worker) error
	Delete(ctx context.Context, id int64) error
}

type BraceletRepository interface {
	Create(ctx context.Context, b Bracelet) (Bracelet, error)
	GetByUUID(ctx context.Context, uuid string) (Bracelet, error)
	List(ctx context.Context) ([]Bracelet, error)
	UpdateStatus(ctx context.Context, uuid string, status BraceletStatus) error
}
