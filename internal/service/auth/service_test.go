package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/auth"
	"github.com/faena-labs/faena-backend-go/internal/domain/user"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/faena-labs/faena-backend-go/internal/pkg/jwt"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	args := m.Called(ctx, newUser)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUserRepo) SaveSession(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, token, expiresAt)
	return args.Error(0)
}

func (m *mockUserRepo) ClearExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func newTestAuthService(t *testing.T, repo *mockUserRepo) (auth.AuthService, pgxmock.PgxPoolIface) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return NewAuthService(database.NewDB(pool), repo, jwt.NewJWTService(testSecret, "1h")), pool
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	repo.On("GetByEmail", ctx, "ana@fundo.cl").Return(user.User{
		ID: 7, Name: "Ana", Email: "ana@fundo.cl", Role: user.RoleSupervisor, PasswordHash: hashed(t, "secreto1"),
	}, nil)
	repo.On("SaveSession", ctx, int64(7), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

	svc, _ := newTestAuthService(t, repo)
	res, err := svc.Login(ctx, auth.LoginRequest{Email: "  ANA@fundo.cl ", Password: "secreto1"})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, int64(7), res.User.ID)
	assert.Equal(t, user.RoleSupervisor, res.User.Role)
	assert.Greater(t, res.ExpiresAt, time.Now().Unix())
	repo.AssertExpectations(t)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	repo.On("GetByEmail", ctx, "nadie@fundo.cl").Return(user.User{}, user.ErrUserNotFound)

	svc, _ := newTestAuthService(t, repo)
	_, err := svc.Login(ctx, auth.LoginRequest{Email: "nadie@fundo.cl", Password: "x"})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	repo.On("GetByEmail", ctx, "ana@fundo.cl").Return(user.User{ID: 7, PasswordHash: hashed(t, "secreto1")}, nil)

	svc, _ := newTestAuthService(t, repo)
	_, err := svc.Login(ctx, auth.LoginRequest{Email: "ana@fundo.cl", Password: "otra"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	repo.AssertNotCalled(t, "SaveSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t, new(mockUserRepo))
	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}

func TestRegister_Success(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u user.User) bool {
		return u.Email == "jefe@fundo.cl" && u.Role == user.RoleAdmin &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secreto1")) == nil
	})).Return(user.User{ID: 1, Name: "Jefe", Email: "jefe@fundo.cl", Role: user.RoleAdmin}, nil)
	repo.On("SaveSession", mock.Anything, int64(1), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

	svc, pool := newTestAuthService(t, repo)
	pool.ExpectBegin()
	pool.ExpectCommit()

	res, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name: "Jefe", Email: "Jefe@fundo.cl", Password: "secreto1", Role: user.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, "jefe@fundo.cl", res.User.Email)
	assert.NotEmpty(t, res.Token)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRegister_DuplicateEmailRollsBack(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(user.User{}, user.ErrUserEmailExists)

	svc, pool := newTestAuthService(t, repo)
	pool.ExpectBegin()
	pool.ExpectRollback()

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name: "Jefe", Email: "jefe@fundo.cl", Password: "secreto1", Role: user.RoleAdmin,
	})

	assert.ErrorIs(t, err, user.ErrUserEmailExists)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRegister_SessionFailureRollsBack(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(user.User{ID: 3, Role: user.RoleSupervisor}, nil)
	repo.On("SaveSession", mock.Anything, int64(3), mock.Anything, mock.Anything).Return(errors.New("boom"))

	svc, pool := newTestAuthService(t, repo)
	pool.ExpectBegin()
	pool.ExpectRollback()

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name: "Sup", Email: "sup@fundo.cl", Password: "secreto1", Role: user.RoleSupervisor,
	})

	assert.Error(t, err)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRegister_InvalidRole(t *testing.T) {
	svc, _ := newTestAuthService(t, new(mockUserRepo))
	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name: "X", Email: "x@fundo.cl", Password: "secreto1", Role: "owner",
	})
	assert.Error(t, err)
}
