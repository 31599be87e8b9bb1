package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	attendance.BraceletDirectory
	clock    attendance.Clock
	location *time.Location
}

type Option func(*AttendanceServiceImpl)

// WithClock overrides time.Now, mainly for tests.
func WithClock(clock attendance.Clock) Option {
	return func(s *AttendanceServiceImpl) {
		s.clock = clock
	}
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	directory attendance.BraceletDirectory,
	location *time.Location,
	opts ...Option,
) attendance.AttendanceService {
	if location == nil {
		location = time.UTC
	}
	s := &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		BraceletDirectory:    directory,
		clock:                time.Now,
		location:             location,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordMark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordMark(ctx context.Context, req attendance.RecordMarkRequest) (attendance.MarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkResponse{}, err
	}

	active, err := s.BraceletDirectory.BraceletActive(ctx, req.BraceletID)
	if err != nil {
		if errors.Is(err, attendance.ErrBraceletNotRegistered) {
			return attendance.MarkResponse{}, err
		}
		return attendance.MarkResponse{}, fmt.Errorf("failed to resolve bracelet: %w", err)
	}
	if !active {
		return attendance.MarkResponse{}, attendance.ErrBraceletInactive
	}

	// Work date is derived once so every step of this mark agrees on "today".
	// TIMESTAMPTZ keeps microseconds, so the mark is truncated to what reads back.
	now := s.clock().Truncate(time.Microsecond)
	workDate := attendance.WorkDate(now, s.location)

	record, err := s.AttendanceRepository.FindToday(ctx, req.BraceletID, workDate)
	if err != nil {
		return attendance.MarkResponse{}, fmt.Errorf("failed to find today's attendance: %w", err)
	}

	result := attendance.MarkResponse{
		BraceletID: req.BraceletID,
		Mark:       req.Mark,
		WorkDate:   workDate.Format("2006-01-02"),
		MarkedAt:   now.In(s.location),
	}

	if record == nil {
		if req.Mark != attendance.MarkEntry {
			return attendance.MarkResponse{}, attendance.ErrEntryRequired
		}

		created, err := s.AttendanceRepository.InsertEntry(ctx, req.BraceletID, workDate, now)
		if err != nil {
			if errors.Is(err, attendance.ErrMarkAlreadySet) {
				return attendance.MarkResponse{}, &attendance.MarkConflictError{Mark: req.Mark}
			}
			return attendance.MarkResponse{}, fmt.Errorf("failed to insert entry mark: %w", err)
		}

		slog.Info("attendance entry recorded", "bracelet", req.BraceletID, "work_date", result.WorkDate)
		result.RecordID = created.ID
		result.Status = attendance.MarkCreated
		return result, nil
	}

	if record.Slot(req.Mark) != nil {
		return attendance.MarkResponse{}, &attendance.MarkConflictError{Mark: req.Mark}
	}

	if err := s.AttendanceRepository.UpdateMark(ctx, record.ID, req.Mark, now); err != nil {
		if errors.Is(err, attendance.ErrMarkAlreadySet) {
			return attendance.MarkResponse{}, &attendance.MarkConflictError{Mark: req.Mark}
		}
		return attendance.MarkResponse{}, fmt.Errorf("failed to update %s mark: %w", req.Mark, err)
	}

	result.RecordID = record.ID
	result.Status = attendance.MarkUpdated
	return result, nil
}

// BuildMonthlySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) BuildMonthlySummary(ctx context.Context, req attendance.MonthlySummaryRequest) (attendance.MonthlySummary, error) {
	year, month, err := req.Period()
	if err != nil {
		return attendance.MonthlySummary{}, err
	}

	worker, err := s.BraceletDirectory.WorkerByBracelet(ctx, req.BraceletID)
	if err != nil {
		if errors.Is(err, attendance.ErrWorkerNotFound) {
			return attendance.MonthlySummary{}, err
		}
		return attendance.MonthlySummary{}, fmt.Errorf("failed to resolve worker: %w", err)
	}

	from, to := attendance.MonthBounds(year, month, s.location)
	records, err := s.AttendanceRepository.FindByMonth(ctx, req.BraceletID, from, to)
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to list monthly attendance: %w", err)
	}

	return attendance.Summarize(worker, year, month, records, s.location), nil
}
