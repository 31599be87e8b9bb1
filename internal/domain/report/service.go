package report

import (
	"context"

	"github.com/faena-labs/faena-backend-go/internal/domain/attendance"
	"github.com/faena-labs/faena-backend-go/internal/domain/crew"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/assignment"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/quarter"
	"github.com/faena-labs/faena-backend-go/internal/domain/payroll"
)

// ReportService renders the downloadable documents.
type ReportService interface {
	// Attendance
	MonthlyAttendancePDF(ctx context.Context, req attendance.MonthlySummaryRequest) (File, error)
	MonthlyAttendanceXLSX(ctx context.Context, req attendance.MonthlySummaryRequest) (File, error)

	// Master data listings
	CompaniesPDF(ctx context.Context) (File, error)
	ContractorsPDF(ctx context.Context) (File, error)
	ContractsPDF(ctx context.Context) (File, error)
	AssignmentsPDF(ctx context.Context, req assignment.ExportAssignmentRequest) (File, error)
	QuartersPDF(ctx context.Context, req quarter.ExportQuarterRequest) (File, error)

	CrewSummaryPDF(ctx context.Context, req crew.SummaryRequest) (File, error)

	// Payroll
	SettlementPDF(ctx context.Context, id int64) (File, error)
	WorkerSettlementsPDF(ctx context.Context, req payroll.ExportByWorkerRequest) (File, error)
}
