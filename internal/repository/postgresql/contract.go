package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/faena-labs/faena-backend-go/internal/domain/master/contract"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

// Create implements contract.ContractRepository.
func (r *contractRepositoryImpl) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contratos (contratista_id, documento, fecha, documentacion)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, c.ContractorID, c.Document, c.Date, c.Documentation).Scan(&c.ID); err != nil {
		if isForeignKeyViolation(err) {
			return contract.Contract{}, contract.ErrContractorNotFound
		}
		return contract.Contract{}, fmt.Errorf("failed to create contract: %w", err)
	}

	return c, nil
}

// GetByID implements contract.ContractRepository.
func (r *contractRepositoryImpl) GetByID(ctx context.Context, id int64) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, contratista_id, documento, fecha, documentacion
		FROM contratos
		WHERE id = $1
	`

	var c contract.Contract
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.ContractorID, &c.Document, &c.Date, &c.Documentation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contract.Contract{}, contract.ErrContractNotFound
		}
		return contract.Contract{}, fmt.Errorf("failed to get contract: %w", err)
	}

	return c, nil
}

// List implements contract.ContractRepository.
func (r *contractRepositoryImpl) List(ctx context.Context) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.contratista_id, c.documento, c.fecha, c.documentacion, ct.razon_social
		FROM contratos c
		JOIN contratistas ct ON c.contratista_id = ct.id
		ORDER BY c.fecha DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []contract.Contract
	for rows.Next() {
		var c contract.Contract
		if err := rows.Scan(&c.ID, &c.ContractorID, &c.Document, &c.Date, &c.Documentation, &c.ContractorName); err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return contracts, nil
}

// Update implements contract.ContractRepository.
func (r *contractRepositoryImpl) Update(ctx context.Context, c contract.Contract) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE contratos
		SET contratista_id = $1, documento = $2, fecha = $3, documentacion = $4
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, c.ContractorID, c.Document, c.Date, c.Documentation, c.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return contract.ErrContractorNotFound
		}
		return fmt.Errorf("failed to update contract: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return contract.ErrContractNotFound
	}

	return nil
}

// Delete implements contract.ContractRepository.
func (r *contractRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM contratos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return contract.ErrContractNotFound
	}

	return nil
}
