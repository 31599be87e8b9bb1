package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/faena-labs/faena-backend-go/internal/domain/master/contractor"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type contractorRepositoryImpl struct {
	db *database.DB
}

func NewContractorRepository(db *database.DB) contractor.ContractorRepository {
	return &contractorRepositoryImpl{db: db}
}

// Create implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) Create(ctx context.Context, c contractor.Contractor) (contractor.Contractor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contratistas (razon_social, empresa_id, usuario_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, c.LegalName, c.CompanyID, c.UserID).Scan(&c.ID); err != nil {
		if isForeignKeyViolation(err) {
			return contractor.Contractor{}, contractor.ErrInvalidReference
		}
		return contractor.Contractor{}, fmt.Errorf("failed to create contractor: %w", err)
	}

	return c, nil
}

// GetByID implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) GetByID(ctx context.Context, id int64) (contractor.Contractor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, razon_social, empresa_id, usuario_id
		FROM contratistas
		WHERE id = $1
	`

	var c contractor.Contractor
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.LegalName, &c.CompanyID, &c.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contractor.Contractor{}, contractor.ErrContractorNotFound
		}
		return contractor.Contractor{}, fmt.Errorf("failed to get contractor: %w", err)
	}

	return c, nil
}

// List implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) List(ctx context.Context) ([]contractor.Contractor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ct.id, ct.razon_social, ct.empresa_id, ct.usuario_id, e.contrato, u.nombre
		FROM contratistas ct
		JOIN empresas e ON ct.empresa_id = e.id
		JOIN usuarios u ON ct.usuario_id = u.id
		ORDER BY ct.id DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contractors: %w", err)
	}
	defer rows.Close()

	var contractors []contractor.Contractor
	for rows.Next() {
		var c contractor.Contractor
		if err := rows.Scan(&c.ID, &c.LegalName, &c.CompanyID, &c.UserID, &c.CompanyName, &c.UserName); err != nil {
			return nil, fmt.Errorf("failed to scan contractor: %w", err)
		}
		contractors = append(contractors, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return contractors, nil
}

// Update implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) Update(ctx context.Context, c contractor.Contractor) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE contratistas
		SET razon_social = $1, empresa_id = $2, usuario_id = $3
		WHERE id = $4
	`

	commandTag, err := q.Exec(ctx, query, c.LegalName, c.CompanyID, c.UserID, c.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return contractor.ErrInvalidReference
		}
		return fmt.Errorf("failed to update contractor: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return contractor.ErrContractorNotFound
	}

	return nil
}

// Delete implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM contratistas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contractor: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return contractor.ErrContractorNotFound
	}

	return nil
}
