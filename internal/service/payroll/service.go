package payroll

import (
	"context"
	"log/slog"

	"github.com/faena-labs/faena-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payroll.SettlementRepository
}

func NewPayrollService(settlementRepository payroll.SettlementRepository) payroll.PayrollService {
	return &PayrollServiceImpl{SettlementRepository: settlementRepository}
}

// Create implements payroll.PayrollService.
func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.CreateSettlementRequest) (payroll.SettlementResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SettlementResponse{}, err
	}

	created, err := s.SettlementRepository.Create(ctx, req.ToEntity())
	if err != nil {
		return payroll.SettlementResponse{}, err
	}

	slog.Info("settlement created", "settlement_id", created.ID, "assignment_id", created.AssignmentID)
	return payroll.NewSettlementResponse(created), nil
}

// GetByID implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetByID(ctx context.Context, id int64) (payroll.SettlementResponse, error) {
	settlement, err := s.SettlementRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.SettlementResponse{}, err
	}
	return payroll.NewSettlementResponse(settlement), nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context) ([]payroll.SettlementResponse, error) {
	settlements, err := s.SettlementRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapToSettlementResponses(settlements), nil
}

// Update implements payroll.PayrollService.
func (s *PayrollServiceImpl) Update(ctx context.Context, req payroll.UpdateSettlementRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	settlement := req.ToEntity()
	settlement.ID = req.ID
	return s.SettlementRepository.Update(ctx, settlement)
}

// Delete implements payroll.PayrollService.
func (s *PayrollServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.SettlementRepository.Delete(ctx, id)
}

func mapToSettlementResponses(settlements []payroll.Settlement) []payroll.SettlementResponse {
	responses := make([]payroll.SettlementResponse, 0, len(settlements))
	for _, settlement := range settlements {
		responses = append(responses, payroll.NewSettlementResponse(settlement))
	}
	return responses
}
