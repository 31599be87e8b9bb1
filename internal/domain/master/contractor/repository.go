package contractor

import "context"

type ContractorRepository interface {
	Create(ctx context.Context, c Contractor) (Contractor, error)
	GetByID(ctx context.Context, id int64) (Contractor, error)
	List(ctx context.Context) ([]Contractor, error)
	Update(ctx context.Context, c Contractor) error
	Delete(ctx context.Context, id int64) error
}
