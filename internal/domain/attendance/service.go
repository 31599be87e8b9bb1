package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// RecordMark applies one bracelet mark to today's ledger row.
	RecordMark(ctx context.Context, req RecordMarkRequest) (MarkResponse, error)

	// BuildMonthlySummary aggregates a bracelet's ledger rows for one month.
	BuildMonthlySummary(ctx context.Context, req MonthlySummaryRequest) (MonthlySummary, error)
}
