package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/faena-labs/faena-backend-go/internal/domain/master/quarter"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type quarterRepositoryImpl struct {
	db *database.DB
}

func NewQuarterRepository(db *database.DB) quarter.QuarterRepository {
	return &quarterRepositoryImpl{db: db}
}

// Create implements quarter.QuarterRepository.
func (r *quarterRepositoryImpl) Create(ctx context.Context, c quarter.Quarter) (quarter.Quarter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO cuarteles (empresa_id, tipo_fruta, cantidad_fruta, fecha)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, c.CompanyID, c.FruitType, c.FruitAmount, c.Date).Scan(&c.ID); err != nil {
		if isForeignKeyViolation(err) {
			return quarter.Quarter{}, quarter.ErrCompanyNotFound
		}
		return quarter.Quarter{}, fmt.Errorf("failed to create quarter: %w", err)
	}

	return c, nil
}

// GetByID implements quarter.QuarterRepository.
func (r *quarterRepositoryImpl) GetByID(ctx context.Context, id int64) (quarter.Quarter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, empresa_id, tipo_fruta, cantidad_fruta, fecha
		FROM cuarteles
		WHERE id = $1
	`

	var c quarter.Quarter
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.CompanyID, &c.FruitType, &c.FruitAmount, &c.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return quarter.Quarter{}, quarter.ErrQuarterNotFound
		}
		return quarter.Quarter{}, fmt.Errorf("failed to get quarter: %w", err)
	}

	return c, nil
}

// List implements quarter.QuarterRepository.
func (r *quarterRepositoryImpl) List(ctx context.Context, filter quarter.Filter) ([]quarter.Quarter, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []any
	)
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		conditions = append(conditions, fmt.Sprintf("c.empresa_id = $%d", len(args)))
	}
	if filter.From != nil && filter.To != nil {
		args = append(args, *filter.From, *filter.To)
		conditions = append(conditions, fmt.Sprintf("c.fecha BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}

	query := `
		SELECT c.id, c.empresa_id, c.tipo_fruta, c.cantidad_fruta, c.fecha, e.contrato
		FROM cuarteles c
		JOIN empresas e ON c.empresa_id = e.id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY c.fecha DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list quarters: %w", err)
	}
	defer rows.Close()

	var quarters []quarter.Quarter
	for rows.Next() {
		var c quarter.Quarter
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.FruitType, &c.FruitAmount, &c.Date, &c.CompanyName); err != nil {
			return nil, fmt.Errorf("failed to scan quarter: %w", err)
		}
		quarters = append(quarters, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return quarters, nil
}

// Update implements quarter.QuarterRepository.
func (r *quarterRepositoryImpl) Update(ctx context.Context, c quarter.Quarter) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE cuarteles
		SET empresa_id = $1, tipo_fruta = $2, cantidad_fruta = $3, fecha = $4
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, c.CompanyID, c.FruitType, c.FruitAmount, c.Date, c.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return quarter.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to update quarter: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return quarter.ErrQuarterNotFound
	}

	return nil
}

// Delete implements quarter.QuarterRepository.
func (r *quarterRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM cuarteles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quarter: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return quarter.ErrQuarterNotFound
	}

	return nil
}
