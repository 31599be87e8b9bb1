package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/faena-labs/faena-backend-go/internal/domain/attendance"
	"github.com/faena-labs/faena-backend-go/internal/domain/auth"
	"github.com/faena-labs/faena-backend-go/internal/domain/company"
	"github.com/faena-labs/faena-backend-go/internal/domain/crew"
	"github.com/faena-labs/faena-backend-go/internal/domain/harvest"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/assignment"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/contract"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/contractor"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/quarter"
	"github.com/faena-labs/faena-backend-go/internal/domain/payroll"
	"github.com/faena-labs/faena-backend-go/internal/domain/report"
	"github.com/faena-labs/faena-backend-go/internal/domain/user"
	"github.com/faena-labs/faena-backend-go/internal/domain/worker"
	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.First(), validationErrs.ToMap())
		return
	}

	switch {
	// 400
	case errors.Is(err, attendance.ErrMarkRequired),
		errors.Is(err, attendance.ErrInvalidMarkType),
		errors.Is(err, attendance.ErrPeriodRequired),
		errors.Is(err, attendance.ErrInvalidPeriod),
		errors.Is(err, crew.ErrDateRequired),
		errors.Is(err, crew.ErrInvalidReference),
		errors.Is(err, harvest.ErrMissingData),
		errors.Is(err, harvest.ErrDateRequired),
		errors.Is(err, harvest.ErrBraceletNotRegistered),
		errors.Is(err, payroll.ErrWorkerIDRequired),
		errors.Is(err, payroll.ErrAssignmentNotFound),
		errors.Is(err, contractor.ErrInvalidReference),
		errors.Is(err, contract.ErrContractorNotFound),
		errors.Is(err, assignment.ErrInvalidReference),
		errors.Is(err, quarter.ErrCompanyNotFound),
		errors.Is(err, quarter.ErrNegativeFruit):
		BadRequest(w, err.Error(), nil)

	// 401
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenRequired):
		Unauthorized(w, err.Error())

	// 403
	case errors.Is(err, attendance.ErrBraceletInactive),
		errors.Is(err, harvest.ErrBraceletInactive),
		errors.Is(err, worker.ErrBraceletInactive),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// 404
	case errors.Is(err, attendance.ErrBraceletNotRegistered),
		errors.Is(err, attendance.ErrEntryRequired),
		errors.Is(err, attendance.ErrWorkerNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, worker.ErrWorkerNotFound),
		errors.Is(err, worker.ErrNoWorkerForBracelet),
		errors.Is(err, worker.ErrBraceletNotFound),
		errors.Is(err, company.ErrCompanyNotFound),
		errors.Is(err, company.ErrNoCompanies),
		errors.Is(err, contractor.ErrContractorNotFound),
		errors.Is(err, contractor.ErrNoContractors),
		errors.Is(err, contract.ErrContractNotFound),
		errors.Is(err, contract.ErrNoContracts),
		errors.Is(err, assignment.ErrAssignmentNotFound),
		errors.Is(err, assignment.ErrNoAssignments),
		errors.Is(err, quarter.ErrQuarterNotFound),
		errors.Is(err, quarter.ErrNoQuarters),
		errors.Is(err, crew.ErrMemberNotFound),
		errors.Is(err, crew.ErrTaskNotFound),
		errors.Is(err, harvest.ErrProcessNotFound),
		errors.Is(err, harvest.ErrBraceletUnassigned),
		errors.Is(err, harvest.ErrNoWorkerForBracelet),
		errors.Is(err, payroll.ErrSettlementNotFound),
		errors.Is(err, payroll.ErrContractInfoMissing),
		errors.Is(err, payroll.ErrNoSettlements),
		errors.Is(err, report.ErrNoCompanies),
		errors.Is(err, report.ErrNoContractors),
		errors.Is(err, report.ErrNoContracts):
		NotFound(w, err.Error())

	// 409
	case errors.Is(err, attendance.ErrMarkAlreadySet),
		errors.Is(err, user.ErrUserEmailExists),
		errors.Is(err, worker.ErrBraceletExists),
		errors.Is(err, worker.ErrBraceletInUse),
		errors.Is(err, company.ErrCompanyInUse):
		Conflict(w, err.Error())

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "Error interno del servidor")
	}
}
