package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/attendance"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*database.DB, pgxmock.PgxPoolIface) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return database.NewDB(pool), pool
}

var workDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestAttendanceFindToday_NoRow(t *testing.T) {
	db, pool := newMockDB(t)
	pool.ExpectQuery(`FROM asistencias\s+WHERE pulsera_uuid = \$1\s+AND fecha = \$2`).
		WithArgs("pul-1", workDate).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	rec, err := NewAttendanceRepository(db).FindToday(context.Background(), "pul-1", workDate)

	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestAttendanceInsertEntry(t *testing.T) {
	db, pool := newMockDB(t)
	at := workDate.Add(8 * time.Hour)
	pool.ExpectQuery(`INSERT INTO asistencias`).
		WithArgs("pul-1", workDate, at).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(31)))

	rec, err := NewAttendanceRepository(db).InsertEntry(context.Background(), "pul-1", workDate, at)

	require.NoError(t, err)
	assert.Equal(t, int64(31), rec.ID)
	require.NotNil(t, rec.EntryTime)
	assert.Equal(t, at, *rec.EntryTime)
	assert.Nil(t, rec.ExitTime)
}

func TestAttendanceInsertEntry_ConcurrentDuplicate(t *testing.T) {
	db, pool := newMockDB(t)
	pool.ExpectQuery(`INSERT INTO asistencias`).
		WithArgs("pul-1", workDate, workDate).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := NewAttendanceRepository(db).InsertEntry(context.Background(), "pul-1", workDate, workDate)

	assert.ErrorIs(t, err, attendance.ErrMarkAlreadySet)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestAttendanceUpdateMark(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{"slot empty", 1, nil},
		{"slot already filled", 0, attendance.ErrMarkAlreadySet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, pool := newMockDB(t)
			at := workDate.Add(13 * time.Hour)
			pool.ExpectExec(`UPDATE asistencias SET horario_salida_colacion = \$1 WHERE id = \$2 AND horario_salida_colacion IS NULL`).
				WithArgs(at, int64(4)).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			err := NewAttendanceRepository(db).UpdateMark(context.Background(), 4, attendance.MarkBreakOut, at)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, pool.ExpectationsWereMet())
		})
	}
}

func TestAttendanceUpdateMark_RejectsUnknownMark(t *testing.T) {
	db, pool := newMockDB(t)

	err := NewAttendanceRepository(db).UpdateMark(context.Background(), 4, attendance.MarkType("almuerzo"), workDate)

	assert.ErrorIs(t, err, attendance.ErrInvalidMarkType)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestAttendanceFindByMonth_Empty(t *testing.T) {
	db, pool := newMockDB(t)
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	pool.ExpectQuery(`horario_entrada >= \$2\s+AND horario_entrada < \$3`).
		WithArgs("pul-1", from, to).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	records, err := NewAttendanceRepository(db).FindByMonth(context.Background(), "pul-1", from, to)

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, pool.ExpectationsWereMet())
}
