package worker

import (
	"context"
	"testing"

	"github.com/faena-labs/faena-backend-go/internal/domain/worker"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWorkerRepo struct {
	mock.Mock
}

func (m *mockWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	args := m.Called(ctx, w)
	return args.Get(0).(worker.Worker), args.Error(1)
}

func (m *mockWorkerRepo) GetByID(ctx context.Context, id int64) (worker.Worker, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(worker.Worker), args.Error(1)
}

func (m *mockWorkerRepo) GetByBracelet(ctx context.Context, braceletID string) (worker.Worker, error) {
	args := m.Called(ctx, braceletID)
	return args.Get(0).(worker.Worker), args.Error(1)
}

func (m *mockWorkerRepo) List(ctx context.Context) ([]worker.Worker, error) {
	args := m.Called(ctx)
	return args.Get(0).([]worker.Worker), args.Error(1)
}

func (m *mockWorkerRepo) Update(ctx context.Context, w worker.Worker) error {
	return m.Called(ctx, w).Error(0)
}

func (m *mockWorkerRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockBraceletRepo struct {
	mock.Mock
}

func (m *mockBraceletRepo) Create(ctx context.Context, b worker.Bracelet) (worker.Bracelet, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(worker.Bracelet), args.Error(1)
}

func (m *mockBraceletRepo) GetByUUID(ctx context.Context, id string) (worker.Bracelet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(worker.Bracelet), args.Error(1)
}

func (m *mockBraceletRepo) List(ctx context.Context) ([]worker.Bracelet, error) {
	args := m.Called(ctx)
	return args.Get(0).([]worker.Bracelet), args.Error(1)
}

func (m *mockBraceletRepo) UpdateStatus(ctx context.Context, id string, status worker.BraceletStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func status(s worker.BraceletStatus) *worker.BraceletStatus { return &s }

func TestCreateWorker_TrimsAndDropsBlankBracelet(t *testing.T) {
	ctx := context.Background()
	workers := new(mockWorkerRepo)
	blank := "   "
	workers.On("Create", ctx, worker.Worker{Names: "Rosa Díaz", Role: "cosechera"}).
		Return(worker.Worker{ID: 9, Names: "Rosa Díaz", Role: "cosechera"}, nil)

	res, err := NewWorkerService(workers, new(mockBraceletRepo)).CreateWorker(ctx, worker.CreateWorkerRequest{
		Names: " Rosa Díaz ", Role: "cosechera", BraceletID: &blank,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), res.ID)
	assert.Nil(t, res.BraceletID)
}

func TestCreateWorker_MissingFields(t *testing.T) {
	workers := new(mockWorkerRepo)
	_, err := NewWorkerService(workers, new(mockBraceletRepo)).CreateWorker(context.Background(), worker.CreateWorkerRequest{})

	assert.Error(t, err)
	workers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetWorkerByBracelet(t *testing.T) {
	tests := []struct {
		name    string
		found   worker.Worker
		lookup  error
		wantErr error
	}{
		{"active", worker.Worker{ID: 1, BraceletStatus: status(worker.BraceletActive)}, nil, nil},
		{"inactive", worker.Worker{ID: 1, BraceletStatus: status(worker.BraceletInactive)}, nil, worker.ErrBraceletInactive},
		{"unregistered bracelet row", worker.Worker{ID: 1}, nil, worker.ErrBraceletInactive},
		{"no worker", worker.Worker{}, worker.ErrNoWorkerForBracelet, worker.ErrNoWorkerForBracelet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workers := new(mockWorkerRepo)
			workers.On("GetByBracelet", mock.Anything, "pul-1").Return(tt.found, tt.lookup)

			res, err := NewWorkerService(workers, new(mockBraceletRepo)).GetWorkerByBracelet(context.Background(), "pul-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), res.ID)
		})
	}
}

func TestRegisterBracelet_GeneratesUUIDAndDefaultsActive(t *testing.T) {
	bracelets := new(mockBraceletRepo)
	bracelets.On("Create", mock.Anything, mock.MatchedBy(func(b worker.Bracelet) bool {
		_, err := uuid.Parse(b.UUID)
		return err == nil && b.Status == worker.BraceletActive
	})).Return(worker.Bracelet{UUID: "generated", Status: worker.BraceletActive}, nil)

	res, err := NewWorkerService(new(mockWorkerRepo), bracelets).RegisterBracelet(context.Background(), worker.RegisterBraceletRequest{})

	require.NoError(t, err)
	assert.Equal(t, worker.BraceletActive, res.Status)
	bracelets.AssertExpectations(t)
}

func TestSetBraceletStatus(t *testing.T) {
	bracelets := new(mockBraceletRepo)
	bracelets.On("UpdateStatus", mock.Anything, "pul-1", worker.BraceletInactive).Return(nil)
	svc := NewWorkerService(new(mockWorkerRepo), bracelets)

	require.NoError(t, svc.SetBraceletStatus(context.Background(), worker.SetBraceletStatusRequest{UUID: "pul-1", Status: worker.BraceletInactive}))

	err := svc.SetBraceletStatus(context.Background(), worker.SetBraceletStatusRequest{UUID: "pul-1", Status: "rota"})
	assert.Error(t, err)
	bracelets.AssertNumberOfCalls(t, "UpdateStatus", 1)
}
