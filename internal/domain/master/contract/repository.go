package contract

import "context"

type ContractRepository interface {
	Create(ctx context.Context, c Contract) (Contract, error)
	GetByID(ctx context.Context, id int64) (Contract, error)
	List(ctx context.Context) ([]Contract, error)
	Update(ctx context.Context, c Contract) error
	Delete(ctx context.Context, id int64) error
}
