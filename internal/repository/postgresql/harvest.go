package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/harvest"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type processRepositoryImpl struct {
	db *database.DB
}

func NewProcessRepository(db *database.DB) harvest.ProcessRepository {
	return &processRepositoryImpl{db: db}
}

// Create implements harvest.ProcessRepository.
func (r *processRepositoryImpl) Create(ctx context.Context, p harvest.Process) (harvest.Process, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO procesos (id_pulsera, cantidad_fruta, fecha)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, p.BraceletID, p.FruitAmount, p.At).Scan(&p.ID); err != nil {
		if isForeignKeyViolation(err) {
			return harvest.Process{}, harvest.ErrBraceletNotRegistered
		}
		return harvest.Process{}, fmt.Errorf("failed to create process: %w", err)
	}

	return p, nil
}

// GetByID implements harvest.ProcessRepository.
func (r *processRepositoryImpl) GetByID(ctx context.Context, id int64) (harvest.Process, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, id_pulsera, cantidad_fruta, fecha
		FROM procesos
		WHERE id = $1
	`

	var p harvest.Process
	if err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.BraceletID, &p.FruitAmount, &p.At); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return harvest.Process{}, harvest.ErrProcessNotFound
		}
		return harvest.Process{}, fmt.Errorf("failed to get process: %w", err)
	}

	return p, nil
}

// List implements harvest.ProcessRepository.
func (r *processRepositoryImpl) List(ctx context.Context) ([]harvest.Process, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, id_pulsera, cantidad_fruta, fecha FROM procesos ORDER BY fecha DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	defer rows.Close()

	var processes []harvest.Process
	for rows.Next() {
		var p harvest.Process
		if err := rows.Scan(&p.ID, &p.BraceletID, &p.FruitAmount, &p.At); err != nil {
			return nil, fmt.Errorf("failed to scan process: %w", err)
		}
		processes = append(processes, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return processes, nil
}

// Update implements harvest.ProcessRepository.
func (r *processRepositoryImpl) Update(ctx context.Context, p harvest.Process) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE procesos
		SET id_pulsera = $1, cantidad_fruta = $2, fecha = $3
		WHERE id = $4
	`

	commandTag, err := q.Exec(ctx, query, p.BraceletID, p.FruitAmount, p.At, p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return harvest.ErrBraceletNotRegistered
		}
		return fmt.Errorf("failed to update process: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return harvest.ErrProcessNotFound
	}

	return nil
}

// Delete implements harvest.ProcessRepository.
func (r *processRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM procesos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete process: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return harvest.ErrProcessNotFound
	}

	return nil
}

// TotalsBetween implements harvest.ProcessRepository.
func (r *processRepositoryImpl) TotalsBetween(ctx context.Context, braceletID string, from, to time.Time) (harvest.DailyTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*), COALESCE(SUM(cantidad_fruta), 0)
		FROM procesos
		WHERE id_pulsera = $1
		  AND fecha >= $2
		  AND fecha < $3
	`

	var totals harvest.DailyTotals
	if err := q.QueryRow(ctx, query, braceletID, from, to).Scan(&totals.Count, &totals.TotalFruit); err != nil {
		return harvest.DailyTotals{}, fmt.Errorf("failed to sum processes: %w", err)
	}

	return totals, nil
}
