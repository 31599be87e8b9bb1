package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/faena-labs/faena-backend-go/internal/domain/master/assignment"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

// Create implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contrato_trabajador (contrato_id, trabajador_id, fecha_inicio, fecha_termino, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, a.ContractID, a.WorkerID, a.StartsOn, a.EndsOn, a.Status).Scan(&a.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return assignment.Assignment{}, assignment.ErrInvalidReference
		}
		return assignment.Assignment{}, fmt.Errorf("failed to create contract assignment: %w", err)
	}

	return a, nil
}

// GetByID implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id int64) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, contrato_id, trabajador_id, fecha_inicio, fecha_termino, estado
		FROM contrato_trabajador
		WHERE id = $1
	`

	var a assignment.Assignment
	err := q.QueryRow(ctx, query, id).Scan(&a.ID, &a.ContractID, &a.WorkerID, &a.StartsOn, &a.EndsOn, &a.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get contract assignment: %w", err)
	}

	return a, nil
}

// List implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) List(ctx context.Context, filter assignment.Filter) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []any
	)
	if filter.ContractID != nil {
		args = append(args, *filter.ContractID)
		conditions = append(conditions, fmt.Sprintf("ct.contrato_id = $%d", len(args)))
	}
	if filter.WorkerID != nil {
		args = append(args, *filter.WorkerID)
		conditions = append(conditions, fmt.Sprintf("ct.trabajador_id = $%d", len(args)))
	}

	query := `
		SELECT ct.id, ct.contrato_id, ct.trabajador_id, ct.fecha_inicio, ct.fecha_termino, ct.estado,
		       t.nombres, c.documento
		FROM contrato_trabajador ct
		JOIN trabajadores t ON ct.trabajador_id = t.id
		JOIN contratos c ON ct.contrato_id = c.id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY ct.fecha_inicio DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contract assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.Assignment
	for rows.Next() {
		var a assignment.Assignment
		if err := rows.Scan(
			&a.ID, &a.ContractID, &a.WorkerID, &a.StartsOn, &a.EndsOn, &a.Status,
			&a.WorkerName, &a.Document,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contract assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assignments, nil
}

// Update implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Update(ctx context.Context, a assignment.Assignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE contrato_trabajador
		SET contrato_id = $1, trabajador_id = $2, fecha_inicio = $3, fecha_termino = $4, estado = $5
		WHERE id = $6
	`

	commandTag, err := q.Exec(ctx, query, a.ContractID, a.WorkerID, a.StartsOn, a.EndsOn, a.Status, a.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return assignment.ErrInvalidReference
		}
		return fmt.Errorf("failed to update contract assignment: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// Delete implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM contrato_trabajador WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contract assignment: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}
