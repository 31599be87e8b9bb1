package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/faena-labs/faena-backend-go/internal/domain/payroll"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settlementRepositoryImpl struct {
	db *database.DB
}

func NewSettlementRepository(db *database.DB) payroll.SettlementRepository {
	return &settlementRepositoryImpl{db: db}
}

const settlementColumns = `l.id, l.contrato_trabajador_id, l.fecha_liquidacion, l.dias_trabajados,
		l.sueldo_base, l.gratificacion, l.colacion, l.asignacion_gastos,
		l.cotizacion_prevision, l.cotizacion_salud, l.seguro_cesantia, l.impuesto_unico,
		l.otros_descuentos, l.afp_nombre, l.salud_nombre,
		l.total_haberes, l.total_descuentos, l.liquido_final`

func settlementDest(s *payroll.Settlement) []any {
	return []any{
		&s.ID, &s.AssignmentID, &s.SettledOn, &s.DaysWorked,
		&s.BaseSalary, &s.Bonus, &s.MealAllowance, &s.ExpenseAllowance,
		&s.PensionContribution, &s.HealthContribution, &s.UnemploymentInsurance, &s.IncomeTax,
		&s.OtherDeductions, &s.PensionFund, &s.HealthProvider,
		&s.TotalEarnings, &s.TotalDeductions, &s.NetPay,
	}
}

func settlementArgs(s payroll.Settlement) []any {
	return []any{
		s.AssignmentID, s.SettledOn, s.DaysWorked,
		s.BaseSalary, s.Bonus, s.MealAllowance, s.ExpenseAllowance,
		s.PensionContribution, s.HealthContribution, s.UnemploymentInsurance, s.IncomeTax,
		s.OtherDeductions, s.PensionFund, s.HealthProvider,
		s.TotalEarnings, s.TotalDeductions, s.NetPay,
	}
}

// Create implements payroll.SettlementRepository.
func (r *settlementRepositoryImpl) Create(ctx context.Context, s payroll.Settlement) (payroll.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO liquidaciones (
			contrato_trabajador_id, fecha_liquidacion, dias_trabajados,
			sueldo_base, gratificacion, colacion, asignacion_gastos,
			cotizacion_prevision, cotizacion_salud, seguro_cesantia, impuesto_unico,
			otros_descuentos, afp_nombre, salud_nombre,
			total_haberes, total_descuentos, liquido_final
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, settlementArgs(s)...).Scan(&s.ID); err != nil {
		if isForeignKeyViolation(err) {
			return payroll.Settlement{}, payroll.ErrAssignmentNotFound
		}
		return payroll.Settlement{}, fmt.Errorf("failed to create settlement: %w", err)
	}

	return s, nil
}

// GetByID implements payroll.SettlementRepository.
func (r *settlementRepositoryImpl) GetByID(ctx context.Context, id int64) (payroll.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settlementColumns + ` FROM liquidaciones l WHERE l.id = $1`

	var s payroll.Settlement
	if err := q.QueryRow(ctx, query, id).Scan(settlementDest(&s)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Settlement{}, payroll.ErrSettlementNotFound
		}
		return payroll.Settlement{}, fmt.Errorf("failed to get settlement: %w", err)
	}

	return s, nil
}

// List implements payroll.SettlementRepository.
func (r *settlementRepositoryImpl) List(ctx context.Context) ([]payroll.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+settlementColumns+` FROM liquidaciones l ORDER BY l.fecha_liquidacion DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []payroll.Settlement
	for rows.Next() {
		var s payroll.Settlement
		if err := rows.Scan(settlementDest(&s)...); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return settlements, nil
}

// Update implements payroll.SettlementRepository.
func (r *settlementRepositoryImpl) Update(ctx context.Context, s payroll.Settlement) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE liquidaciones SET
			contrato_trabajador_id = $1, fecha_liquidacion = $2, dias_trabajados = $3,
			sueldo_base = $4, gratificacion = $5, colacion = $6, asignacion_gastos = $7,
			cotizacion_prevision = $8, cotizacion_salud = $9, seguro_cesantia = $10, impuesto_unico = $11,
			otros_descuentos = $12, afp_nombre = $13, salud_nombre = $14,
			total_haberes = $15, total_descuentos = $16, liquido_final = $17
		WHERE id = $18
	`

	commandTag, err := q.Exec(ctx, query, append(settlementArgs(s), s.ID)...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return payroll.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to update settlement: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return payroll.ErrSettlementNotFound
	}

	return nil
}

// Delete implements payroll.SettlementRepository.
func (r *settlementRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM liquidaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete settlement: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return payroll.ErrSettlementNotFound
	}

	return nil
}

const slipJoins = `
		FROM liquidaciones l
		JOIN contrato_trabajador ct ON l.contrato_trabajador_id = ct.id
		JOIN trabajadores t ON ct.trabajador_id = t.id
		JOIN contratos c ON ct.contrato_id = c.id
		JOIN contratistas co ON c.contratista_id = co.id
		JOIN empresas e ON co.empresa_id = e.id
`

const slipExtraColumns = `, t.nombres, t.rut, t.rol, ct.fecha_inicio, ct.fecha_termino, e.contrato`

func slipDest(s *payroll.Slip) []any {
	return append(settlementDest(&s.Settlement),
		&s.WorkerName, &s.WorkerRut, &s.WorkerRole, &s.ContractStarts, &s.ContractEnds, &s.CompanyName,
	)
}

// GetSlip implements payroll.SettlementRepository.
func (r *settlementRepositoryImpl) GetSlip(ctx context.Context, id int64) (payroll.Slip, error) {
	q := GetQuerier(ctx, r.db)

	// Existence is checked first so a broken join is told apart from a missing settlement.
	if _, err := r.GetByID(ctx, id); err != nil {
		return payroll.Slip{}, err
	}

	query := `SELECT ` + settlementColumns + slipExtraColumns + slipJoins + ` WHERE l.id = $1`

	var s payroll.Slip
	if err := q.QueryRow(ctx, query, id).Scan(slipDest(&s)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Slip{}, payroll.ErrContractInfoMissing
		}
		return payroll.Slip{}, fmt.Errorf("failed to get settlement slip: %w", err)
	}

	return s, nil
}

// ListSlipsByWorker implements payroll.SettlementRepository.
func (r *settlementRepositoryImpl) ListSlipsByWorker(ctx context.Context, filter payroll.WorkerFilter) ([]payroll.Slip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settlementColumns + slipExtraColumns + slipJoins + ` WHERE ct.trabajador_id = $1`
	args := []any{filter.WorkerID}
	if filter.From != nil && filter.To != nil {
		query += ` AND l.fecha_liquidacion BETWEEN $2 AND $3`
		args = append(args, *filter.From, *filter.To)
	}
	query += ` ORDER BY l.fecha_liquidacion ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker settlements: %w", err)
	}
	defer rows.Close()

	var slips []payroll.Slip
	for rows.Next() {
		var s payroll.Slip
		if err := rows.Scan(slipDest(&s)...); err != nil {
			return nil, fmt.Errorf("failed to scan settlement slip: %w", err)
		}
		slips = append(slips, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return slips, nil
}
