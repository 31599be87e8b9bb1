package assignment

import "context"

type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByID(ctx context.Context, id int64) (Assignment, error)
	List(ctx context.Context, filter Filter) ([]Assignment, error)
	Update(ctx context.Context, a Assignment) error
	Delete(ctx context.Context, id int64) error
}
