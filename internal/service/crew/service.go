package crew

import (
	"context"
	"fmt"

	"github.com/faena-labs/faena-backend-go/internal/domain/crew"
)

type CrewServiceImpl struct {
	members crew.MemberRepository
	tasks   crew.TaskRepository
	crew.SummaryReader
}

func NewCrewService(members crew.MemberRepository, tasks crew.TaskRepository, reader crew.SummaryReader) crew.CrewService {
	return &CrewServiceImpl{members: members, tasks: tasks, SummaryReader: reader}
}

// ==================== MEMBER OPERATIONS ====================

func (s *CrewServiceImpl) CreateMember(ctx context.Context, req crew.CreateMemberRequest) (crew.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return crew.MemberResponse{}, err
	}

	created, err := s.members.Create(ctx, req.ToEntity())
	if err != nil {
		return crew.MemberResponse{}, err
	}
	return crew.NewMemberResponse(created), nil
}

func (s *CrewServiceImpl) GetMember(ctx context.Context, id int64) (crew.MemberResponse, error) {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return crew.MemberResponse{}, err
	}
	return crew.NewMemberResponse(m), nil
}

func (s *CrewServiceImpl) ListMembers(ctx context.Context) ([]crew.MemberResponse, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]crew.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, crew.NewMemberResponse(m))
	}
	return responses, nil
}

func (s *CrewServiceImpl) UpdateMember(ctx context.Context, req crew.UpdateMemberRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	m := req.ToEntity()
	m.ID = req.ID
	return s.members.Update(ctx, m)
}

func (s *CrewServiceImpl) DeleteMember(ctx context.Context, id int64) error {
	return s.members.Delete(ctx, id)
}

// ==================== TASK OPERATIONS ====================

func (s *CrewServiceImpl) CreateTask(ctx context.Context, req crew.CreateTaskRequest) (crew.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return crew.TaskResponse{}, err
	}

	created, err := s.tasks.Create(ctx, req.ToEntity())
	if err != nil {
		return crew.TaskResponse{}, err
	}
	return crew.NewTaskResponse(created), nil
}

func (s *CrewServiceImpl) GetTask(ctx context.Context, id int64) (crew.TaskResponse, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return crew.TaskResponse{}, err
	}
	return crew.NewTaskResponse(t), nil
}

func (s *CrewServiceImpl) ListTasks(ctx context.Context) ([]crew.TaskResponse, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]crew.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, crew.NewTaskResponse(t))
	}
	return responses, nil
}

func (s *CrewServiceImpl) UpdateTask(ctx context.Context, req crew.UpdateTaskRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	t := req.ToEntity()
	t.ID = req.ID
	return s.tasks.Update(ctx, t)
}

func (s *CrewServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	return s.tasks.Delete(ctx, id)
}

// ==================== SUMMARY ====================

// Summary lists the works scheduled for the crew on the date and every
// worker currently assigned to it.
func (s *CrewServiceImpl) Summary(ctx context.Context, req crew.SummaryRequest) (crew.Summary, error) {
	date, err := req.Validate()
	if err != nil {
		return crew.Summary{}, err
	}

	works, err := s.SummaryReader.WorksOn(ctx, req.CrewID, date)
	if err != nil {
		return crew.Summary{}, fmt.Errorf("failed to get crew works: %w", err)
	}

	workers, err := s.SummaryReader.Workers(ctx, req.CrewID)
	if err != nil {
		return crew.Summary{}, fmt.Errorf("failed to get crew workers: %w", err)
	}

	return crew.Summary{CrewID: req.CrewID, Date: date, Works: works, Workers: workers}, nil
}
