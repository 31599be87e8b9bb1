package user

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, newUser User) (User, error)

	// SaveSession records the last issued token and its expiry on the user row.
	SaveSession(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	// ClearExpiredSessions drops tokens that expired before now and reports how many.
	ClearExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
