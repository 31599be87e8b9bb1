package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/attendance"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, pulsera_uuid, fecha, horario_entrada, horario_salida_colacion,
		horario_entrada_colacion, horario_salida`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.BraceletID, &rec.WorkDate,
		&rec.EntryTime, &rec.BreakOutTime, &rec.BreakInTime, &rec.ExitTime,
	)
	return rec, err
}

// FindToday implements attendance.AttendanceRepository.
func (r *attendanceRepository) FindToday(ctx context.Context, braceletID string, workDate time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM asistencias
		WHERE pulsera_uuid = $1
		  AND fecha = $2
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, braceletID, workDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by bracelet and date: %w", err)
	}

	return &rec, nil
}

// InsertEntry implements attendance.AttendanceRepository.
func (r *attendanceRepository) InsertEntry(ctx context.Context, braceletID string, workDate time.Time, at time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO asistencias (pulsera_uuid, fecha, horario_entrada)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	rec := attendance.Record{
		BraceletID: braceletID,
		WorkDate:   workDate,
		EntryTime:  &at,
	}
	if err := q.QueryRow(ctx, query, braceletID, workDate, at).Scan(&rec.ID); err != nil {
		if isUniqueViolation(err) {
			return attendance.Record{}, attendance.ErrMarkAlreadySet
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return rec, nil
}

// UpdateMark implements attendance.AttendanceRepository.
func (r *attendanceRepository) UpdateMark(ctx context.Context, recordID int64, mark attendance.MarkType, at time.Time) error {
	if !mark.IsValid() {
		return attendance.ErrInvalidMarkType
	}
	q := GetQuerier(ctx, r.db)

	// The IS NULL guard makes check-and-set a single statement.
	column := mark.Column()
	query := fmt.Sprintf(`UPDATE asistencias SET %s = $1 WHERE id = $2 AND %s IS NULL`, column, column)

	commandTag, err := q.Exec(ctx, query, at, recordID)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrMarkAlreadySet
	}

	return nil
}

// FindByMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) FindByMonth(ctx context.Context, braceletID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM asistencias
		WHERE pulsera_uuid = $1
		  AND horario_entrada >= $2
		  AND horario_entrada < $3
		ORDER BY fecha ASC, horario_entrada ASC
	`

	rows, err := q.Query(ctx, query, braceletID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
