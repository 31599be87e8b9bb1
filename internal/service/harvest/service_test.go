package harvest

import (
	"context"
	"testing"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/harvest"
	"github.com/faena-labs/faena-backend-go/internal/domain/worker"
	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProcessRepo struct {
	mock.Mock
}

func (m *mockProcessRepo) Create(ctx context.Context, p harvest.Process) (harvest.Process, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(harvest.Process), args.Error(1)
}

func (m *mockProcessRepo) GetByID(ctx context.Context, id int64) (harvest.Process, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(harvest.Process), args.Error(1)
}

func (m *mockProcessRepo) List(ctx context.Context) ([]harvest.Process, error) {
	args := m.Called(ctx)
	return args.Get(0).([]harvest.Process), args.Error(1)
}

func (m *mockProcessRepo) Update(ctx context.Context, p harvest.Process) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProcessRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProcessRepo) TotalsBetween(ctx context.Context, braceletID string, from, to time.Time) (harvest.DailyTotals, error) {
	args := m.Called(ctx, braceletID, from, to)
	return args.Get(0).(harvest.DailyTotals), args.Error(1)
}

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

var santiago = time.FixedZone("CLT", -4*60*60)

func status(s worker.BraceletStatus) *worker.BraceletStatus { return &s }

func newTestService(processes *mockProcessRepo, workers *mockWorkerRepo, now time.Time) harvest.HarvestService {
	return NewHarvestService(processes, workers, santiago, WithClock(func() time.Time { return now }))
}

func TestRegisterFromBracelet_Success(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 11, 30, 0, 0, santiago)
	processes, workers := new(mockProcessRepo), new(mockWorkerRepo)

	workers.On("GetByBracelet", ctx, "pul-1").Return(worker.Worker{ID: 4, Names: "Rosa Díaz", BraceletStatus: status(worker.BraceletActive)}, nil)
	processes.On("Create", ctx, harvest.Process{BraceletID: "pul-1", FruitAmount: decimal.NewFromInt(12), At: now}).
		Return(harvest.Process{ID: 31}, nil)

	res, err := newTestService(processes, workers, now).RegisterFromBracelet(ctx, harvest.RegisterFromBraceletRequest{
		BraceletID: " pul-1 ", FruitAmount: decimal.NewFromInt(12),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(31), res.ProcessID)
	assert.Equal(t, "Rosa Díaz", res.WorkerName)
	processes.AssertExpectations(t)
}

func TestRegisterFromBracelet_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     harvest.RegisterFromBraceletRequest
		worker  worker.Worker
		lookup  error
		wantErr error
	}{
		{
			name:    "missing amount",
			req:     harvest.RegisterFromBraceletRequest{BraceletID: "pul-1"},
			wantErr: harvest.ErrMissingData,
		},
		{
			name:    "bracelet without worker",
			req:     harvest.RegisterFromBraceletRequest{BraceletID: "pul-1", FruitAmount: decimal.NewFromInt(3)},
			lookup:  worker.ErrNoWorkerForBracelet,
			wantErr: harvest.ErrBraceletUnassigned,
		},
		{
			name:    "inactive bracelet",
			req:     harvest.RegisterFromBraceletRequest{BraceletID: "pul-1", FruitAmount: decimal.NewFromInt(3)},
			worker:  worker.Worker{ID: 4, BraceletStatus: status(worker.BraceletInactive)},
			wantErr: harvest.ErrBraceletInactive,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processes, workers := new(mockProcessRepo), new(mockWorkerRepo)
			workers.On("GetByBracelet", mock.Anything, "pul-1").Return(tt.worker, tt.lookup)

			_, err := newTestService(processes, workers, time.Now()).RegisterFromBracelet(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			processes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestDailySummary_UsesLocalDayBounds(t *testing.T) {
	ctx := context.Background()
	processes, workers := new(mockProcessRepo), new(mockWorkerRepo)
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, santiago)

	workers.On("GetByBracelet", ctx, "pul-1").Return(worker.Worker{Names: "Rosa Díaz", Role: "cosechera"}, nil)
	processes.On("TotalsBetween", ctx, "pul-1", from, from.AddDate(0, 0, 1)).
		Return(harvest.DailyTotals{Count: 3, TotalFruit: decimal.RequireFromString("41.5")}, nil)

	res, err := newTestService(processes, workers, time.Now()).DailySummary(ctx, harvest.DailySummaryRequest{BraceletID: "pul-1", Date: "2025-03-10"})

	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", res.Date)
	assert.Equal(t, "cosechera", res.Worker.Role)
	assert.Equal(t, int64(3), res.Totals.Count)
	assert.True(t, decimal.RequireFromString("41.5").Equal(res.Totals.TotalFruit))
}

func TestDailySummary_RequiresDate(t *testing.T) {
	svc := newTestService(new(mockProcessRepo), new(mockWorkerRepo), time.Now())

	_, err := svc.DailySummary(context.Background(), harvest.DailySummaryRequest{BraceletID: "pul-1"})
	assert.ErrorIs(t, err, harvest.ErrDateRequired)

	_, err = svc.DailySummary(context.Background(), harvest.DailySummaryRequest{BraceletID: "pul-1", Date: "10/03/2025"})
	assert.ErrorIs(t, err, harvest.ErrDateRequired)
}

func TestDailySummary_UnknownBracelet(t *testing.T) {
	workers := new(mockWorkerRepo)
	workers.On("GetByBracelet", mock.Anything, "nope").Return(worker.Worker{}, worker.ErrNoWorkerForBracelet)

	_, err := newTestService(new(mockProcessRepo), workers, time.Now()).
		DailySummary(context.Background(), harvest.DailySummaryRequest{BraceletID: "nope", Date: "2025-03-10"})

	assert.ErrorIs(t, err, harvest.ErrNoWorkerForBracelet)
}

func TestCreate_Validation(t *testing.T) {
	processes := new(mockProcessRepo)
	_, err := newTestService(processes, new(mockWorkerRepo), time.Now()).
		Create(context.Background(), harvest.CreateProcessRequest{FruitAmount: decimal.NewFromInt(-1), Date: "ayer"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
	processes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_AcceptsTimestamp(t *testing.T) {
	ctx := context.Background()
	processes := new(mockProcessRepo)
	at := time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)
	processes.On("Create", ctx, harvest.Process{BraceletID: "pul-1", FruitAmount: decimal.NewFromInt(5), At: at}).
		Return(harvest.Process{ID: 2, BraceletID: "pul-1", FruitAmount: decimal.NewFromInt(5), At: at}, nil)

	res, err := newTestService(processes, new(mockWorkerRepo), time.Now()).
		Create(ctx, harvest.CreateProcessRequest{BraceletID: "pul-1", FruitAmount: decimal.NewFromInt(5), Date: "2025-03-10T09:15:00Z"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), res.ID)
}
