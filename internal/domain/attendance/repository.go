package attendance

import (
	"context"
	"time"
)

// AttendanceRepository persists ledger rows. Implementations must enforce
// one row per (bracelet, work date) and never overwrite a filled mark.
type AttendanceRepository interface {
	// FindToday returns the record for braceletID on workDate, or nil when none exists.
	FindToday(ctx context.Context, braceletID string, workDate time.Time) (*Record, error)

	// InsertEntry creates the day's record with the entry mark set.
	// Returns ErrMarkAlreadySet if a concurrent request created it first.
	InsertEntry(ctx context.Context, braceletID string, workDate time.Time, at time.Time) (Record, error)

	// UpdateMark fills a still-empty mark on an existing record.
	// Returns ErrMarkAlreadySet when the slot was already filled.
	UpdateMark(ctx context.Context, recordID int64, mark MarkType, at time.Time) error

	// FindByMonth lists records whose entry falls in [from, to), ordered by work date.
	FindByMonth(ctx context.Context, braceletID string, from, to time.Time) ([]Record, error)
}

// BraceletDirectory resolves bracelets for the attendance flows.
type BraceletDirectory interface {
	// BraceletActive returns ErrBraceletNotRegistered for unknown bracelets.
	BraceletActive(ctx context.Context, braceletID string) (bool, error)

	// WorkerByBracelet returns ErrWorkerNotFound when no worker wears the bracelet.
	WorkerByBracelet(ctx context.Context, braceletID string) (WorkerProfile, error)
}
