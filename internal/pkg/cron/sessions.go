package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// SessionStore clears the session token of users whose token has expired.
type SessionStore interface {
	ClearExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type SessionJobs struct {
	store SessionStore
	now   func() time.Time
}

func NewSessionJobs(store SessionStore) *SessionJobs {
	return &SessionJobs{store: store, now: time.Now}
}

func (j *SessionJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("clear_expired_sessions", interval, j.ClearExpiredSessions)
}

func (j *SessionJobs) ClearExpiredSessions(ctx context.Context) error {
	cleared, err := j.store.ClearExpiredSessions(ctx, j.now())
	if err != nil {
		return fmt.Errorf("failed to clear expired sessions: %w", err)
	}
	if cleared > 0 {
		slog.Info("expired sessions cleared", "count", cleared)
	}
	return nil
}
