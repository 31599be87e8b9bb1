package master

import (
	"context"

	"github.com/faena-labs/faena-backend-go/internal/domain/master/assignment"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/contract"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/contractor"
	"github.com/faena-labs/faena-backend-go/internal/domain/master/quarter"
)

type MasterService interface {
	// Contractor operations
	CreateContractor(ctx context.Context, req contractor.CreateContractorRequest) (contractor.ContractorResponse, error)
	GetContractor(ctx context.Context, id int64) (contractor.ContractorResponse, error)
	ListContractors(ctx context.Context) ([]contractor.ContractorResponse, error)
	UpdateContractor(ctx context.Context, req contractor.UpdateContractorRequest) error
	DeleteContractor(ctx context.Context, id int64) error

	// Contract operations
	CreateContract(ctx context.Context, req contract.CreateContractRequest) (contract.ContractResponse, error)
	GetContract(ctx context.Context, id int64) (contract.ContractResponse, error)
	ListContracts(ctx context.Context) ([]contract.ContractResponse, error)
	UpdateContract(ctx context.Context, req contract.UpdateContractRequest) error
	DeleteContract(ctx context.Context, id int64) error

	// Contract assignment operations
	CreateAssignment(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error)
	GetAssignment(ctx context.Context, id int64) (assignment.AssignmentResponse, error)
	ListAssignments(ctx context.Context) ([]assignment.AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, req assignment.UpdateAssignmentRequest) error
	DeleteAssignment(ctx context.Context, id int64) error

	// Quarter operations
	CreateQuarter(ctx context.Context, req quarter.CreateQuarterRequest) (quarter.QuarterResponse, error)
	GetQuarter(ctx context.Context, id int64) (quarter.QuarterResponse, error)
	ListQuarters(ctx context.Context) ([]quarter.QuarterResponse, error)
	UpdateQuarter(ctx context.Context, req quarter.UpdateQuarterRequest) error
	DeleteQuarter(ctx context.Context, id int64) error
}

type masterServiceImpl struct {
	contractorRepo contractor.ContractorRepository
	contractRepo   contract.ContractRepository
	assignmentRepo assignment.AssignmentRepository
	quarterRepo    quarter.QuarterRepository
}

func NewMasterService(
	contractorRepo contractor.ContractorRepository,
	contractRepo contract.ContractRepository,
	assignmentRepo assignment.AssignmentRepository,
	quarterRepo quarter.QuarterRepository,
) MasterService {
	return &masterServiceImpl{
		contractorRepo: contractorRepo,
		contractRepo:   contractRepo,
		assignmentRepo: assignmentRepo,
		quarterRepo:    quarterRepo,
	}
}

// ==================== CONTRACTOR OPERATIONS ====================

func (s *masterServiceImpl) CreateContractor(ctx context.Context, req contractor.CreateContractorRequest) (contractor.ContractorResponse, error) {
	if err := req.Validate(); err != nil {
		return contractor.ContractorResponse{}, err
	}

	created, err := s.contractorRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return contractor.ContractorResponse{}, err
	}

	return contractor.NewContractorResponse(created), nil
}

func (s *masterServiceImpl) GetContractor(ctx context.Context, id int64) (contractor.ContractorResponse, error) {
	entity, err := s.contractorRepo.GetByID(ctx, id)
	if err != nil {
		return contractor.ContractorResponse{}, err
	}
	return contractor.NewContractorResponse(entity), nil
}

func (s *masterServiceImpl) ListContractors(ctx context.Context) ([]contractor.ContractorResponse, error) {
	contractors, err := s.contractorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]contractor.ContractorResponse, 0, len(contractors))
	for _, c := range contractors {
		responses = append(responses, contractor.NewContractorResponse(c))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateContractor(ctx context.Context, req contractor.UpdateContractorRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity := req.ToEntity()
	entity.ID = req.ID
	return s.contractorRepo.Update(ctx, entity)
}

func (s *masterServiceImpl) DeleteContractor(ctx context.Context, id int64) error {
	return s.contractorRepo.Delete(ctx, id)
}

// ==================== CONTRACT OPERATIONS ====================

func (s *masterServiceImpl) CreateContract(ctx context.Context, req contract.CreateContractRequest) (contract.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}

	created, err := s.contractRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return contract.ContractResponse{}, err
	}

	return contract.NewContractResponse(created), nil
}

func (s *masterServiceImpl) GetContract(ctx context.Context, id int64) (contract.ContractResponse, error) {
	entity, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	return contract.NewContractResponse(entity), nil
}

func (s *masterServiceImpl) ListContracts(ctx context.Context) ([]contract.ContractResponse, error) {
	contracts, err := s.contractRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]contract.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		responses = append(responses, contract.NewContractResponse(c))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateContract(ctx context.Context, req contract.UpdateContractRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity := req.ToEntity()
	entity.ID = req.ID
	return s.contractRepo.Update(ctx, entity)
}

func (s *masterServiceImpl) DeleteContract(ctx context.Context, id int64) error {
	return s.contractRepo.Delete(ctx, id)
}

// ==================== CONTRACT ASSIGNMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateAssignment(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	created, err := s.assignmentRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	return assignment.NewAssignmentResponse(created), nil
}

func (s *masterServiceImpl) GetAssignment(ctx context.Context, id int64) (assignment.AssignmentResponse, error) {
	entity, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	return assignment.NewAssignmentResponse(entity), nil
}

func (s *masterServiceImpl) ListAssignments(ctx context.Context) ([]assignment.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.List(ctx, assignment.Filter{})
	if err != nil {
		return nil, err
	}

	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, assignment.NewAssignmentResponse(a))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateAssignment(ctx context.Context, req assignment.UpdateAssignmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity := req.ToEntity()
	entity.ID = req.ID
	return s.assignmentRepo.Update(ctx, entity)
}

func (s *masterServiceImpl) DeleteAssignment(ctx context.Context, id int64) error {
	return s.assignmentRepo.Delete(ctx, id)
}

// ==================== QUARTER OPERATIONS ====================

func (s *masterServiceImpl) CreateQuarter(ctx context.Context, req quarter.CreateQuarterRequest) (quarter.QuarterResponse, error) {
	if err := req.Validate(); err != nil {
		return quarter.QuarterResponse{}, err
	}

	created, err := s.quarterRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return quarter.QuarterResponse{}, err
	}

	return quarter.NewQuarterResponse(created), nil
}

func (s *masterServiceImpl) GetQuarter(ctx context.Context, id int64) (quarter.QuarterResponse, error) {
	entity, err := s.quarterRepo.GetByID(ctx, id)
	if err != nil {
		return quarter.QuarterResponse{}, err
	}
	return quarter.NewQuarterResponse(entity), nil
}

func (s *masterServiceImpl) ListQuarters(ctx context.Context) ([]quarter.QuarterResponse, error) {
	quarters, err := s.quarterRepo.List(ctx, quarter.Filter{})
	if err != nil {
		return nil, err
	}

	responses := make([]quarter.QuarterResponse, 0, len(quarters))
	for _, q := range quarters {
		responses = append(responses, quarter.NewQuarterResponse(q))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateQuarter(ctx context.Context, req quarter.UpdateQuarterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity := req.ToEntity()
	entity.ID = req.ID
	return s.quarterRepo.Update(ctx, entity)
}

func (s *masterServiceImpl) DeleteQuarter(ctx context.Context, id int64) error {
	return s.quarterRepo.Delete(ctx, id)
}
