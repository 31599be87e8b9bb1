package harvest

import (
	"context"
	"time"
)

type ProcessRepository interface {
	Create(ctx context.Context, p Process) (Process, error)
	GetByID(ctx context.Context, id int64) (Process, error)
	List(ctx context.Context) ([]Process, error)
	Update(ctx context.Context, p Process) error
	Delete(ctx context.Context, id int64) error

	// TotalsBetween aggregates the processes of a bracelet with from <= fecha < to.
	TotalsBetween(ctx context.Context, braceletID string, from, to time.Time) (DailyTotals, error)
}
