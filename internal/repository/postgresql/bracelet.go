package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/faena-labs/faena-backend-go/internal/domain/attendance"
	"github.com/faena-labs/faena-backend-go/internal/domain/worker"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type braceletRepositoryImpl struct {
	db *database.DB
}

func NewBraceletRepository(db *database.DB) worker.BraceletRepository {
	return &braceletRepositoryImpl{db: db}
}

// NewBraceletDirectory exposes bracelet lookups to the attendance flows.
func NewBraceletDirectory(db *database.DB) attendance.BraceletDirectory {
	return &braceletRepositoryImpl{db: db}
}

// Create implements worker.BraceletRepository.
func (r *braceletRepositoryImpl) Create(ctx context.Context, b worker.Bracelet) (worker.Bracelet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pulseras (uuid, estado)
		VALUES ($1, $2)
		RETURNING creado_en
	`

	if err := q.QueryRow(ctx, query, b.UUID, b.Status).Scan(&b.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return worker.Bracelet{}, worker.ErrBraceletExists
		}
		return worker.Bracelet{}, fmt.Errorf("failed to create bracelet: %w", err)
	}

	return b, nil
}

// GetByUUID implements worker.BraceletRepository.
func (r *braceletRepositoryImpl) GetByUUID(ctx context.Context, uuid string) (worker.Bracelet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.uuid, p.estado, p.creado_en, t.id, t.nombres
		FROM pulseras p
		LEFT JOIN trabajadores t ON t.pulsera_uuid = p.uuid
		WHERE p.uuid = $1
	`

	var b worker.Bracelet
	err := q.QueryRow(ctx, query, uuid).Scan(&b.UUID, &b.Status, &b.CreatedAt, &b.WorkerID, &b.WorkerName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Bracelet{}, worker.ErrBraceletNotFound
		}
		return worker.Bracelet{}, fmt.Errorf("failed to get bracelet: %w", err)
	}

	return b, nil
}

// List implements worker.BraceletRepository.
func (r *braceletRepositoryImpl) List(ctx context.Context) ([]worker.Bracelet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.uuid, p.estado, p.creado_en, t.id, t.nombres
		FROM pulseras p
		LEFT JOIN trabajadores t ON t.pulsera_uuid = p.uuid
		ORDER BY p.creado_en DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bracelets: %w", err)
	}
	defer rows.Close()

	var bracelets []worker.Bracelet
	for rows.Next() {
		var b worker.Bracelet
		if err := rows.Scan(&b.UUID, &b.Status, &b.CreatedAt, &b.WorkerID, &b.WorkerName); err != nil {
			return nil, fmt.Errorf("failed to scan bracelet: %w", err)
		}
		bracelets = append(bracelets, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return bracelets, nil
}

// UpdateStatus implements worker.BraceletRepository.
func (r *braceletRepositoryImpl) UpdateStatus(ctx context.Context, uuid string, status worker.BraceletStatus) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE pulseras SET estado = $1 WHERE uuid = $2`, status, uuid)
	if err != nil {
		return fmt.Errorf("failed to update bracelet status: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return worker.ErrBraceletNotFound
	}

	return nil
}

// BraceletActive implements attendance.BraceletDirectory.
func (r *braceletRepositoryImpl) BraceletActive(ctx context.Context, braceletID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var status string
	err := q.QueryRow(ctx, `SELECT estado FROM pulseras WHERE uuid = $1`, braceletID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, attendance.ErrBraceletNotRegistered
		}
		return false, fmt.Errorf("failed to get bracelet status: %w", err)
	}

	return status == string(worker.BraceletActive), nil
}

// WorkerByBracelet implements attendance.BraceletDirectory.
func (r *braceletRepositoryImpl) WorkerByBracelet(ctx context.Context, braceletID string) (attendance.WorkerProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.nombres, t.rol, COALESCE(t.contacto, ''), COALESCE(t.direccion, ''),
			   COALESCE(p.estado, '')
		FROM trabajadores t
		LEFT JOIN pulseras p ON t.pulsera_uuid = p.uuid
		WHERE t.pulsera_uuid = $1
		LIMIT 1
	`

	profile := attendance.WorkerProfile{BraceletID: braceletID}
	var status string
	err := q.QueryRow(ctx, query, braceletID).Scan(
		&profile.WorkerID, &profile.Name, &profile.Role, &profile.Contact, &profile.Address, &status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.WorkerProfile{}, attendance.ErrWorkerNotFound
		}
		return attendance.WorkerProfile{}, fmt.Errorf("failed to get worker by bracelet: %w", err)
	}
	profile.Active = status == string(worker.BraceletActive)

	return profile, nil
}
