package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/faena-labs/faena-backend-go/internal/domain/company"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

const companySelect = `
		SELECT id, contrato, fecha_adjudicacion, fecha_termino_faena, documentos
		FROM empresas
`

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(&c.ID, &c.Contract, &c.AwardedOn, &c.WorkEndsOn, &c.Documents)
	return c, err
}

// Create implements company.CompanyRepository.
func (r *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO empresas (contrato, fecha_adjudicacion, fecha_termino_faena, documentos)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		newCompany.Contract, newCompany.AwardedOn, newCompany.WorkEndsOn, newCompany.Documents,
	).Scan(&newCompany.ID)
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return newCompany, nil
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id int64) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCompany(q.QueryRow(ctx, companySelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	return c, nil
}

// List implements company.CompanyRepository.
func (r *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, companySelect+` ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return companies, nil
}

// Update implements company.CompanyRepository.
func (r *companyRepositoryImpl) Update(ctx context.Context, c company.Company) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE empresas
		SET contrato = $1, fecha_adjudicacion = $2, fecha_termino_faena = $3, documentos = $4
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, c.Contract, c.AwardedOn, c.WorkEndsOn, c.Documents, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}

	return nil
}

// Delete implements company.CompanyRepository.
func (r *companyRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return company.ErrCompanyInUse
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}

	return nil
}
