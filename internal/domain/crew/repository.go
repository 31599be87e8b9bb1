package crew

import (
	"context"
	"time"
)

type MemberRepository interface {
	Create(ctx context.Context, m Member) (Member, error)
	GetByID(ctx context.Context, id int64) (Member, error)
	List(ctx context.Context) ([]Member, error)
	Update(ctx context.Context, m Member) error
	Delete(ctx context.Context, id int64) error
}

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id int64) (Task, error)
	List(ctx context.Context) ([]Task, error)
	Update(ctx context.Context, t Task) error
	Delete(ctx context.Context, id int64) error
}

// SummaryReader loads what a crew did on a date.
type SummaryReader interface {
	WorksOn(ctx context.Context, crewID int64, date time.Time) ([]Work, error)
	Workers(ctx context.Context, crewID int64) ([]Worker, error)
}
