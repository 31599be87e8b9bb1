package crew

import "context"

type CrewService interface {
	CreateMember(ctx context.Context, req CreateMemberRequest) (MemberResponse, error)
	GetMember(ctx context.Context, id int64) (MemberResponse, error)
	ListMembers(ctx context.Context) ([]MemberResponse, error)
	UpdateMember(ctx context.Context, req UpdateMemberRequest) error
	DeleteMember(ctx context.Context, id int64) error

	CreateTask(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	GetTask(ctx context.Context, id int64) (TaskResponse, error)
	ListTasks(ctx context.Context) ([]TaskResponse, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) error
	DeleteTask(ctx context.Context, id int64) error

	Summary(ctx context.Context, req SummaryRequest) (Summary, error)
}
