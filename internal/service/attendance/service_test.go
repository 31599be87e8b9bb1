package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAttendanceRepo struct {
	mock.Mock
}

func (m *mockAttendanceRepo) FindToday(ctx context.Context, braceletID string, workDate time.Time) (*attendance.Record, error) {
	args := m.Called(ctx, braceletID, workDate)
	rec, _ := args.Get(0).(*attendance.Record)
	return rec, args.Error(1)
}

func (m *mockAttendanceRepo) InsertEntry(ctx context.Context, braceletID string, workDate time.Time, at time.Time) (attendance.Record, error) {
	args := m.Called(ctx, braceletID, workDate, at)
	return args.Get(0).(attendance.Record), args.Error(1)
}

func (m *mockAttendanceRepo) UpdateMark(ctx context.Context, recordID int64, mark attendance.MarkType, at time.Time) error {
	args := m.Called(ctx, recordID, mark, at)
	return args.Error(0)
}

func (m *mockAttendanceRepo) FindByMonth(ctx context.Context, braceletID string, from, to time.Time) ([]attendance.Record, error) {
	args := m.Called(ctx, braceletID, from, to)
	recs, _ := args.Get(0).([]attendance.Record)
	return recs, args.Error(1)
}

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) BraceletActive(ctx context.Context, braceletID string) (bool, error) {
	args := m.Called(ctx, braceletID)
	return args.Bool(0), args.Error(1)
}

func (m *mockDirectory) WorkerByBracelet(ctx context.Context, braceletID string) (attendance.WorkerProfile, error) {
	args := m.Called(ctx, braceletID)
	return args.Get(0).(attendance.WorkerProfile), args.Error(1)
}

const bracelet = "PUL-001"

var (
	santiago, _ = time.LoadLocation("America/Santiago")
	// 09:15 in Santiago on 2025-05-05
	fixedNow = time.Date(2025, time.May, 5, 13, 15, 0, 0, time.UTC)
	today    = time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)
)

func newTestService(repo *mockAttendanceRepo, dir *mockDirectory, now time.Time) attendance.AttendanceService {
	return NewAttendanceService(repo, dir, santiago, WithClock(func() time.Time { return now }))
}

func TestRecordMark_EntryCreatesRecord(t *testing.T) {
	ctx := context.Background()
	repo, dir := new(mockAttendanceRepo), new(mockDirectory)
	dir.On("BraceletActive", ctx, bracelet).Return(true, nil)
	repo.On("FindToday", ctx, bracelet, today).Return(nil, nil)
	repo.On("InsertEntry", ctx, bracelet, today, fixedNow).Return(attendance.Record{ID: 11}, nil)

	res, err := newTestService(repo, dir, fixedNow).RecordMark(ctx, attendance.RecordMarkRequest{BraceletID: bracelet, Mark: attendance.MarkEntry})

	require.NoError(t, err)
	assert.Equal(t, attendance.MarkCreated, res.Status)
	assert.Equal(t, int64(11), res.RecordID)
	assert.Equal(t, "2025-05-05", res.WorkDate)
	assert.Equal(t, "Entrada registrada correctamente", res.Message())
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "UpdateMark", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordMark_UpdatesEmptySlot(t *testing.T) {
	ctx := context.Background()
	entry := fixedNow.Add(-time.Hour)
	repo, dir := new(mockAttendanceRepo), new(mockDirectory)
	dir.On("BraceletActive", ctx, bracelet).Return(true, nil)
	repo.On("FindToday", ctx, bracelet, today).Return(&attendance.Record{ID: 11, EntryTime: &entry}, nil)
	repo.On("UpdateMark", ctx, int64(11), attendance.MarkBreakOut, fixedNow).Return(nil)

	res, err := newTestService(repo, dir, fixedNow).RecordMark(ctx, attendance.RecordMarkRequest{BraceletID: bracelet, Mark: attendance.MarkBreakOut})

	require.NoError(t, err)
	assert.Equal(t, attendance.MarkUpdated, res.Status)
	assert.Equal(t, "Marca de 'salida_colacion' registrada correctamente", res.Message())
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "InsertEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordMark_StoresMicrosecondPrecision(t *testing.T) {
	ctx := context.Background()
	precise := time.Date(2025, time.May, 5, 13, 15, 0, 123456789, time.UTC)
	stored := time.Date(2025, time.May, 5, 13, 15, 0, 123456000, time.UTC)
	repo, dir := new(mockAttendanceRepo), new(mockDirectory)
	dir.On("BraceletActive", ctx, bracelet).Return(true, nil)
	repo.On("FindToday", ctx, bracelet, today).Return(nil, nil)
	repo.On("InsertEntry", ctx, bracelet, today, mock.AnythingOfType("time.Time")).Return(attendance.Record{ID: 12}, nil)

	res, err := newTestService(repo, dir, precise).RecordMark(ctx, attendance.RecordMarkRequest{BraceletID: bracelet, Mark: attendance.MarkEntry})
	require.NoError(t, err)

	at := repo.Calls[1].Arguments.Get(3).(time.Time)
	assert.Zero(t, at.Nanosecond()%1000)
	assert.True(t, at.Equal(stored))
	assert.True(t, res.MarkedAt.Equal(at))
}

func TestRecordMark_ExitDirectlyAfterEntry(t *testing.T) {
	ctx := context.Background()
	entry := fixedNow.Add(-8 * time.Hour)
	repo, dir := new(mockAttendanceRepo), new(mockDirectory)
	dir.On("BraceletActive", ctx, bracelet).Return(true, nil)
	repo.On("FindToday", ctx, bracelet, today).Return(&attendance.Record{ID: 3, EntryTime: &entry}, nil)
	repo.On("UpdateMark", ctx, int64(3), attendance.MarkExit, fixedNow).Return(nil)

	res, err := newTestService(repo, dir, fixedNow).RecordMark(ctx, attendance.RecordMarkRequest{BraceletID: bracelet, Mark: attendance.MarkExit})

	require.NoError(t, err)
	assert.Equal(t, attendance.MarkUpdated, res.Status)
}

func TestRecordMark_FilledSlotConflicts(t *testing.T) {
	ctx := context.Background()
	entry := fixedNow.Add(-time.Hour)
	for _, mark := range []attendance.MarkType{attendance.MarkEntry, attendance.MarkExit} {
		t.Run(string(mark), func(t *testing.T) {
			repo, dir := new(mockAttendanceRepo), new(mockDirectory)
			dir.On("BraceletActive", ctx, bracelet).Return(true, nil)
			repo.On("FindToday", ctx, bracelet, today).Return(&attendance.Record{ID: 5, EntryTime: &entry, ExitTime: &entry}, nil)

			_, err := newTestService(repo, dir, fixedNow).RecordMark(ctx, attendance.RecordMarkRequest{BraceletID: bracelet, Mark: mark})

			assert.ErrorIs(t, err, attendance.ErrMarkAlreadySet)
			var conflict *attendance.MarkConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, mark, conflict.Mark)
			repo.AssertNotCalled(t, "UpdateMark", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "InsertEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRecordMark_NonEntryWithoutRecord(t *testing.T) {
	ctx := context.Background()
	for _, mark := range []attendance.MarkType{attendance.MarkBreakOut, attendance.MarkBreakIn, attendance.MarkExit} {
		t.Run(string(mark), func(t *testing.T) {
			repo, dir := new(mockAttendanceRepo), new(mockDirectory)
			dir.On("BraceletActive", ctx, bracelet).Return(true, nil)
			repo.On("FindToday", ctx, bracelet, today).Return(nil, nil)

			_, err := newTestService(repo, dir, fixedNow).RecordMark(ctx, attendance.RecordMarkRequest{BraceletID: bracelet, Mark: mark})

			assert.ErrorIs(t, err, attendance.ErrEntryRequired)
			repo.AssertNotCalled(t, "InsertEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRecordMark_InactiveBraceletIsForbidden(t *testing.T) {
	ctx := context.Background()
	for _, mark := range []attendance.MarkType{attendance.MarkEntry, attendance.MarkBreakOut, attendance.MarkBreakIn, attendance.MarkExit} {
		repo, dir := new(mockAttendanceRepo), new(mockDirectory)
		dir.On("BraceletActive", ctx, bracelet).Return(false, nil)

		_, err := newTestService(repo, dir, fixedNow).RecordMark(ctx, attendance.RecordMarkRequest{BraceletID: bracelet, Mark: mark})

		assert.ErrorIs(t, err, attendance.ErrBraceletInactive, mark)
		repo.AssertNotCalled(t, "FindToday", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestRecordMark_UnknownBracelet(t *testing.T) {
	ctx := context.Background()
	repo, dir := new(mockAttendanceRepo), new(mockDirectory)
	dir.On("BraceletActive", ctx, "PUL-404").Return(false, attendance.ErrBraceletNotRegistered)

	_, err := newTestService(repo, dir, fixedNow).RecordMark(ctx, attendance.RecordMarkRequest{BraceletID: "PUL-404", Mark: attendance.MarkEntry})

	assert.ErrorIs(t, err, attendance.ErrBraceletNotRegistered)
}

func TestRecordMark_InvalidInput(t *testing.T) {
	repo, dir := new(mockAttendanceRepo), new(mockDirectory)
	svc := newTestService(repo, dir, fixedNow)

	_, err := svc.RecordMark(context.Background(), attendance.RecordMarkRequest{Mark: attendance.MarkEntry})
	assert.ErrorIs(t, err, attendance.ErrMarkRequired)

	_, err = svc.RecordMark(context.Background(), attendance.RecordMarkRequest{BraceletID: bracelet, Mark: "colacion"})
	assert.ErrorIs(t, err, attendance.ErrInvalidMarkType)

	dir.AssertNotCalled(t, "BraceletActive", mock.Anything, mock.Anything)
}

func TestRecordMark_ConcurrentEntryLosesRace(t *testing.T) {
	ctx := context.Background()
	repo, dir := new(mockAttendanceRepo), new(mockDirectory)
	dir.On("BraceletActive", ctx, bracelet).Return(true, nil)
	repo.On("FindToday", ctx, bracelet, today).Return(nil, nil)
	repo.On("InsertEntry", ctx, bracelet, today, fixedNow).Return(attendance.Record{}, attendance.ErrMarkAlreadySet)

	_, err := newTestService(repo, dir, fixedNow).RecordMark(ctx, attendance.RecordMarkRequest{BraceletID: bracelet, Mark: attendance.MarkEntry})

	assert.ErrorIs(t, err, attendance.ErrMarkAlreadySet)
	assert.Equal(t, "Ya existe una marca de tipo 'entrada' para hoy", err.Error())
}

func TestRecordMark_ConcurrentUpdateLosesRace(t *testing.T) {
	ctx := context.Background()
	entry := fixedNow.Add(-time.Hour)
	repo, dir := new(mockAttendanceRepo), new(mockDirectory)
	dir.On("BraceletActive", ctx, bracelet).Return(true, nil)
	repo.On("FindToday", ctx, bracelet, today).Return(&attendance.Record{ID: 9, EntryTime: &entry}, nil)
	repo.On("UpdateMark", ctx, int64(9), attendance.MarkBreakIn, fixedNow).Return(attendance.ErrMarkAlreadySet)

	_, err := newTestService(repo, dir, fixedNow).RecordMark(ctx, attendance.RecordMarkRequest{BraceletID: bracelet, Mark: attendance.MarkBreakIn})

	assert.ErrorIs(t, err, attendance.ErrMarkAlreadySet)
}

func TestRecordMark_NewDayStartsOver(t *testing.T) {
	ctx := context.Background()
	// 00:30 in Santiago on 2025-05-06
	nextDay := time.Date(2025, time.May, 6, 4, 30, 0, 0, time.UTC)
	tomorrow := time.Date(2025, time.May, 6, 0, 0, 0, 0, time.UTC)

	repo, dir := new(mockAttendanceRepo), new(mockDirectory)
	dir.On("BraceletActive", ctx, bracelet).Return(true, nil)
	repo.On("FindToday", ctx, bracelet, tomorrow).Return(nil, nil)
	repo.On("InsertEntry", ctx, bracelet, tomorrow, nextDay).Return(attendance.Record{ID: 12}, nil)

	res, err := newTestService(repo, dir, nextDay).RecordMark(ctx, attendance.RecordMarkRequest{BraceletID: bracelet, Mark: attendance.MarkEntry})

	require.NoError(t, err)
	assert.Equal(t, "2025-05-06", res.WorkDate)
}

func TestRecordMark_WorkDateUsesConfiguredTimezone(t *testing.T) {
	ctx := context.Background()
	// 01:00 UTC on the 6th is still the 5th in Santiago.
	lateShift := time.Date(2025, time.May, 6, 1, 0, 0, 0, time.UTC)

	repo, dir := new(mockAttendanceRepo), new(mockDirectory)
	dir.On("BraceletActive", ctx, bracelet).Return(true, nil)
	repo.On("FindToday", ctx, bracelet, today).Return(nil, nil)
	repo.On("InsertEntry", ctx, bracelet, today, lateShift).Return(attendance.Record{ID: 1}, nil)

	res, err := newTestService(repo, dir, lateShift).RecordMark(ctx, attendance.RecordMarkRequest{BraceletID: bracelet, Mark: attendance.MarkEntry})

	require.NoError(t, err)
	assert.Equal(t, "2025-05-05", res.WorkDate)
	repo.AssertExpectations(t)
}

func TestRecordMark_StorageFailure(t *testing.T) {
	ctx := context.Background()
	repo, dir := new(mockAttendanceRepo), new(mockDirectory)
	dir.On("BraceletActive", ctx, bracelet).Return(true, nil)
	repo.On("FindToday", ctx, bracelet, today).Return(nil, errors.New("connection reset"))

	_, err := newTestService(repo, dir, fixedNow).RecordMark(ctx, attendance.RecordMarkRequest{BraceletID: bracelet, Mark: attendance.MarkEntry})

	require.Error(t, err)
	assert.NotErrorIs(t, err, attendance.ErrMarkAlreadySet)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestBuildMonthlySummary(t *testing.T) {
	ctx := context.Background()
	worker := attendance.WorkerProfile{WorkerID: 4, BraceletID: bracelet, Active: true, Name: "María Soto", Role: "cosechera"}
	from := time.Date(2025, time.May, 1, 0, 0, 0, 0, santiago)
	to := time.Date(2025, time.June, 1, 0, 0, 0, 0, santiago)

	entry := time.Date(2025, time.May, 5, 8, 0, 0, 0, santiago)
	breakOut := time.Date(2025, time.May, 5, 12, 0, 0, 0, santiago)
	breakIn := time.Date(2025, time.May, 5, 12, 30, 0, 0, santiago)
	exit := time.Date(2025, time.May, 5, 17, 0, 0, 0, santiago)

	repo, dir := new(mockAttendanceRepo), new(mockDirectory)
	dir.On("WorkerByBracelet", ctx, bracelet).Return(worker, nil)
	repo.On("FindByMonth", ctx, bracelet, from, to).Return([]attendance.Record{{
		ID: 1, BraceletID: bracelet, WorkDate: today,
		EntryTime: &entry, BreakOutTime: &breakOut, BreakInTime: &breakIn, ExitTime: &exit,
	}}, nil)

	summary, err := newTestService(repo, dir, fixedNow).BuildMonthlySummary(ctx, attendance.MonthlySummaryRequest{
		BraceletID: bracelet, Year: "2025", Month: "5",
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-05", summary.Month)
	assert.Equal(t, "María Soto", summary.Worker.Name)
	assert.Equal(t, 1, summary.Totals.DaysWorked)
	assert.Equal(t, "9.00", summary.Totals.GrossHours)
	assert.Equal(t, "0.50", summary.Totals.BreakHours)
	assert.Equal(t, "8.50", summary.Totals.NetHours)
	repo.AssertExpectations(t)
}

func TestBuildMonthlySummary_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	worker := attendance.WorkerProfile{BraceletID: bracelet, Name: "María Soto"}
	repo, dir := new(mockAttendanceRepo), new(mockDirectory)
	dir.On("WorkerByBracelet", ctx, bracelet).Return(worker, nil)
	repo.On("FindByMonth", ctx, bracelet, mock.Anything, mock.Anything).Return([]attendance.Record{}, nil)

	svc := newTestService(repo, dir, fixedNow)
	req := attendance.MonthlySummaryRequest{BraceletID: bracelet, Year: "2025", Month: "02"}
	first, err := svc.BuildMonthlySummary(ctx, req)
	require.NoError(t, err)
	second, err := svc.BuildMonthlySummary(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 0, first.Totals.DaysWorked)
	assert.Equal(t, "0.00", first.Totals.NetHours)
	repo.AssertNumberOfCalls(t, "FindByMonth", 2)
}

func TestBuildMonthlySummary_UnknownWorker(t *testing.T) {
	ctx := context.Background()
	repo, dir := new(mockAttendanceRepo), new(mockDirectory)
	dir.On("WorkerByBracelet", ctx, "PUL-404").Return(attendance.WorkerProfile{}, attendance.ErrWorkerNotFound)

	_, err := newTestService(repo, dir, fixedNow).BuildMonthlySummary(ctx, attendance.MonthlySummaryRequest{
		BraceletID: "PUL-404", Year: "2025", Month: "05",
	})

	assert.ErrorIs(t, err, attendance.ErrWorkerNotFound)
	repo.AssertNotCalled(t, "FindByMonth", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBuildMonthlySummary_MissingPeriod(t *testing.T) {
	repo, dir := new(mockAttendanceRepo), new(mockDirectory)

	_, err := newTestService(repo, dir, fixedNow).BuildMonthlySummary(context.Background(), attendance.MonthlySummaryRequest{
		BraceletID: bracelet, Year: "2025",
	})

	assert.ErrorIs(t, err, attendance.ErrPeriodRequired)
	dir.AssertNotCalled(t, "WorkerByBracelet", mock.Anything, mock.Anything)
}
