package quarter

import "context"

type QuarterRepository interface {
	Create(ctx context.Context, q Quarter) (Quarter, error)
	GetByID(ctx context.Context, id int64) (Quarter, error)
	List(ctx context.Context, filter Filter) ([]Quarter, error)
	Update(ctx context.Context, q Quarter) error
	Delete(ctx context.Context, id int64) error
}
