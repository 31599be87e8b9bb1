package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "8h")

	token, expiresAt, err := svc.GenerateAccessToken(42, "ana@fundo.cl", user.RoleSupervisor)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(8*time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "42", claims["user_id"])
	assert.Equal(t, "supervisor", claims["rol"])
	assert.Equal(t, "access", claims["type"])
	assert.NotEmpty(t, claims["jti"])
}

func TestGenerateAccessToken_UniqueIDs(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	first, _, err := svc.GenerateAccessToken(1, "a@b.cl", user.RoleAdmin)
	require.NoError(t, err)
	second, _, err := svc.GenerateAccessToken(1, "a@b.cl", user.RoleAdmin)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService("test-secret", "eight hours")

	_, _, err := svc.GenerateAccessToken(1, "a@b.cl", user.RoleAdmin)
	assert.Error(t, err)
}

func TestDecode_RejectsOtherSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-a", "1h").GenerateAccessToken(1, "a@b.cl", user.RoleAdmin)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", "1h").JWTAuth().Decode(token)
	assert.Error(t, err)
}
