package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/faena-labs/faena-backend-go/internal/domain/worker"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

const workerSelect = `
		SELECT t.id, t.nombres, t.direccion, t.contacto, t.rol, t.rut, t.pulsera_uuid, p.estado
		FROM trabajadores t
		LEFT JOIN pulseras p ON t.pulsera_uuid = p.uuid
`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(&w.ID, &w.Names, &w.Address, &w.Contact, &w.Role, &w.Rut, &w.BraceletID, &w.BraceletStatus)
	return w, err
}

func mapWorkerWriteError(err error) error {
	switch {
	case isUniqueViolation(err):
		return worker.ErrBraceletInUse
	case isForeignKeyViolation(err):
		return worker.ErrBraceletNotFound
	}
	return err
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO trabajadores (nombres, direccion, contacto, rol, rut, pulsera_uuid)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, w.Names, w.Address, w.Contact, w.Role, w.Rut, w.BraceletID).Scan(&w.ID)
	if err != nil {
		if mapped := mapWorkerWriteError(err); mapped != err {
			return worker.Worker{}, mapped
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id int64) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	w, err := scanWorker(q.QueryRow(ctx, workerSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

// GetByBracelet implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByBracelet(ctx context.Context, braceletID string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	w, err := scanWorker(q.QueryRow(ctx, workerSelect+` WHERE t.pulsera_uuid = $1 LIMIT 1`, braceletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrNoWorkerForBracelet
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by bracelet: %w", err)
	}

	return w, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, workerSelect+` ORDER BY t.nombres ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workers, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE trabajadores
		SET nombres = $1, direccion = $2, contacto = $3, rol = $4, rut = $5, pulsera_uuid = $6
		WHERE id = $7
	`

	commandTag, err := q.Exec(ctx, query, w.Names, w.Address, w.Contact, w.Role, w.Rut, w.BraceletID, w.ID)
	if err != nil {
		if mapped := mapWorkerWriteError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to update worker: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// Delete implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM trabajadores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}
