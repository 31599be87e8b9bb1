package payroll

import "context"

type PayrollService interface {
	Create(ctx context.Context, req CreateSettlementRequest) (SettlementResponse, error)
	GetByID(ctx context.Context, id int64) (SettlementResponse, error)
	List(ctx context.Context) ([]SettlementResponse, error)
	Update(ctx context.Context, req UpdateSettlementRequest) error
	Delete(ctx context.Context, id int64) error
}
