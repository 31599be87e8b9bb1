package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/user"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userSelect = `
		SELECT id, nombre, correo, password_hash, rol, creado_en, actualizado_en
		FROM usuarios
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO usuarios (nombre, correo, password_hash, rol)
		VALUES ($1, $2, $3, $4)
		RETURNING id, creado_en, actualizado_en
	`

	err := q.QueryRow(ctx, query, newUser.Name, newUser.Email, newUser.PasswordHash, newUser.Role).
		Scan(&newUser.ID, &newUser.CreatedAt, &newUser.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, userSelect+` WHERE correo = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, userSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

// SaveSession implements user.UserRepository.
func (r *userRepositoryImpl) SaveSession(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE usuarios
		SET token_sesion = $1, expira_token = $2, actualizado_en = NOW()
		WHERE id = $3
	`

	cmdTag, err := q.Exec(ctx, query, token, expiresAt, userID)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// ClearExpiredSessions implements user.UserRepository.
func (r *userRepositoryImpl) ClearExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE usuarios
		SET token_sesion = NULL, expira_token = NULL
		WHERE expira_token IS NOT NULL AND expira_token < $1
	`

	cmdTag, err := q.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to clear expired sessions: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
