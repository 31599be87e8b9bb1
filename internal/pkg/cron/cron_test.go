package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) ClearExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func TestClearExpiredSessions(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	store := new(mockSessionStore)
	store.On("ClearExpiredSessions", mock.Anything, now).Return(int64(3), nil).Once()
	store.On("ClearExpiredSessions", mock.Anything, now).Return(int64(0), errors.New("down")).Once()

	jobs := NewSessionJobs(store)
	jobs.now = func() time.Time { return now }

	assert.NoError(t, jobs.ClearExpiredSessions(context.Background()))
	assert.ErrorContains(t, jobs.ClearExpiredSessions(context.Background()), "failed to clear expired sessions")
	store.AssertExpectations(t)
}

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler()
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond)
	s.Stop()

	s.RunOnce(context.Background())
	assert.Equal(t, int32(2), runs.Load())
}
