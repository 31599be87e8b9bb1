package payroll

import "context"

type SettlementRepository interface {
	Create(ctx context.Context, s Settlement) (Settlement, error)
	GetByID(ctx context.Context, id int64) (Settlement, error)
	List(ctx context.Context) ([]Settlement, error)
	Update(ctx context.Context, s Settlement) error
	Delete(ctx context.Context, id int64) error

	// GetSlip returns ErrContractInfoMissing when the assignment chain is broken.
	GetSlip(ctx context.Context, id int64) (Slip, error)
	ListSlipsByWorker(ctx context.Context, filter WorkerFilter) ([]Slip, error)
}
