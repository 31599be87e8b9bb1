package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/crew"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type crewMemberRepositoryImpl struct {
	db *database.DB
}

func NewCrewMemberRepository(db *database.DB) crew.MemberRepository {
	return &crewMemberRepositoryImpl{db: db}
}

// Create implements crew.MemberRepository.
func (r *crewMemberRepositoryImpl) Create(ctx context.Context, m crew.Member) (crew.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO cuadrilla_trabajador (cuadrilla_id, pulsera_uuid, cantidad_fruta)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, m.CrewID, m.BraceletID, m.FruitAmount).Scan(&m.ID); err != nil {
		if isForeignKeyViolation(err) {
			return crew.Member{}, crew.ErrInvalidReference
		}
		return crew.Member{}, fmt.Errorf("failed to create crew member: %w", err)
	}

	return m, nil
}

// GetByID implements crew.MemberRepository.
func (r *crewMemberRepositoryImpl) GetByID(ctx context.Context, id int64) (crew.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, cuadrilla_id, pulsera_uuid, cantidad_fruta
		FROM cuadrilla_trabajador
		WHERE id = $1
	`

	var m crew.Member
	if err := q.QueryRow(ctx, query, id).Scan(&m.ID, &m.CrewID, &m.BraceletID, &m.FruitAmount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return crew.Member{}, crew.ErrMemberNotFound
		}
		return crew.Member{}, fmt.Errorf("failed to get crew member: %w", err)
	}

	return m, nil
}

// List implements crew.MemberRepository.
func (r *crewMemberRepositoryImpl) List(ctx context.Context) ([]crew.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ct.id, ct.cuadrilla_id, ct.pulsera_uuid, ct.cantidad_fruta, t.nombres, c.nombre
		FROM cuadrilla_trabajador ct
		JOIN trabajadores t ON t.pulsera_uuid = ct.pulsera_uuid
		JOIN cuadrillas c ON ct.cuadrilla_id = c.id
		ORDER BY ct.id DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew members: %w", err)
	}
	defer rows.Close()

	var members []crew.Member
	for rows.Next() {
		var m crew.Member
		if err := rows.Scan(&m.ID, &m.CrewID, &m.BraceletID, &m.FruitAmount, &m.WorkerName, &m.CrewName); err != nil {
			return nil, fmt.Errorf("failed to scan crew member: %w", err)
		}
		members = append(members, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// Update implements crew.MemberRepository.
func (r *crewMemberRepositoryImpl) Update(ctx context.Context, m crew.Member) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE cuadrilla_trabajador
		SET cuadrilla_id = $1, pulsera_uuid = $2, cantidad_fruta = $3
		WHERE id = $4
	`

	commandTag, err := q.Exec(ctx, query, m.CrewID, m.BraceletID, m.FruitAmount, m.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return crew.ErrInvalidReference
		}
		return fmt.Errorf("failed to update crew member: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return crew.ErrMemberNotFound
	}

	return nil
}

// Delete implements crew.MemberRepository.
func (r *crewMemberRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM cuadrilla_trabajador WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete crew member: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return crew.ErrMemberNotFound
	}

	return nil
}

type crewTaskRepositoryImpl struct {
	db *database.DB
}

func NewCrewTaskRepository(db *database.DB) crew.TaskRepository {
	return &crewTaskRepositoryImpl{db: db}
}

// Create implements crew.TaskRepository.
func (r *crewTaskRepositoryImpl) Create(ctx context.Context, t crew.Task) (crew.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO cuadrilla_trabajo (cuadrilla_id, trabajo_id, fecha)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, t.CrewID, t.WorkID, t.Date).Scan(&t.ID); err != nil {
		if isForeignKeyViolation(err) {
			return crew.Task{}, crew.ErrInvalidReference
		}
		return crew.Task{}, fmt.Errorf("failed to create crew task: %w", err)
	}

	return t, nil
}

// GetByID implements crew.TaskRepository.
func (r *crewTaskRepositoryImpl) GetByID(ctx context.Context, id int64) (crew.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, cuadrilla_id, trabajo_id, fecha
		FROM cuadrilla_trabajo
		WHERE id = $1
	`

	var t crew.Task
	if err := q.QueryRow(ctx, query, id).Scan(&t.ID, &t.CrewID, &t.WorkID, &t.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return crew.Task{}, crew.ErrTaskNotFound
		}
		return crew.Task{}, fmt.Errorf("failed to get crew task: %w", err)
	}

	return t, nil
}

// List implements crew.TaskRepository.
func (r *crewTaskRepositoryImpl) List(ctx context.Context) ([]crew.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ct.id, ct.cuadrilla_id, ct.trabajo_id, ct.fecha, t.nombre, t.tipo
		FROM cuadrilla_trabajo ct
		JOIN cuadrillas c ON ct.cuadrilla_id = c.id
		JOIN trabajos t ON ct.trabajo_id = t.id
		ORDER BY ct.fecha DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew tasks: %w", err)
	}
	defer rows.Close()

	var tasks []crew.Task
	for rows.Next() {
		var t crew.Task
		if err := rows.Scan(&t.ID, &t.CrewID, &t.WorkID, &t.Date, &t.WorkName, &t.WorkType); err != nil {
			return nil, fmt.Errorf("failed to scan crew task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tasks, nil
}

// Update implements crew.TaskRepository.
func (r *crewTaskRepositoryImpl) Update(ctx context.Context, t crew.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE cuadrilla_trabajo
		SET cuadrilla_id = $1, trabajo_id = $2, fecha = $3
		WHERE id = $4
	`

	commandTag, err := q.Exec(ctx, query, t.CrewID, t.WorkID, t.Date, t.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return crew.ErrInvalidReference
		}
		return fmt.Errorf("failed to update crew task: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return crew.ErrTaskNotFound
	}

	return nil
}

// Delete implements crew.TaskRepository.
func (r *crewTaskRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM cuadrilla_trabajo WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete crew task: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return crew.ErrTaskNotFound
	}

	return nil
}

type crewSummaryReader struct {
	db *database.DB
}

func NewCrewSummaryReader(db *database.DB) crew.SummaryReader {
	return &crewSummaryReader{db: db}
}

// WorksOn implements crew.SummaryReader.
func (r *crewSummaryReader) WorksOn(ctx context.Context, crewID int64, date time.Time) ([]crew.Work, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.nombre, t.tipo, t.valor
		FROM cuadrilla_trabajo ct
		JOIN trabajos t ON ct.trabajo_id = t.id
		WHERE ct.cuadrilla_id = $1 AND ct.fecha = $2
		ORDER BY t.id
	`

	rows, err := q.Query(ctx, query, crewID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew works: %w", err)
	}
	defer rows.Close()

	works := []crew.Work{}
	for rows.Next() {
		var w crew.Work
		if err := rows.Scan(&w.ID, &w.Name, &w.Type, &w.Value); err != nil {
			return nil, fmt.Errorf("failed to scan crew work: %w", err)
		}
		works = append(works, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return works, nil
}

// Workers implements crew.SummaryReader.
func (r *crewSummaryReader) Workers(ctx context.Context, crewID int64) ([]crew.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ct.id, tr.id, tr.nombres, tr.rol, ct.pulsera_uuid, ct.cantidad_fruta
		FROM cuadrilla_trabajador ct
		JOIN trabajadores tr ON tr.pulsera_uuid = ct.pulsera_uuid
		WHERE ct.cuadrilla_id = $1
		ORDER BY ct.id
	`

	rows, err := q.Query(ctx, query, crewID)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew workers: %w", err)
	}
	defer rows.Close()

	workers := []crew.Worker{}
	for rows.Next() {
		var w crew.Worker
		if err := rows.Scan(&w.MemberID, &w.WorkerID, &w.Names, &w.Role, &w.BraceletID, &w.FruitAmount); err != nil {
			return nil, fmt.Errorf("failed to scan crew worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workers, nil
}
