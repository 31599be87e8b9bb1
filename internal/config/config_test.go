package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "8h", cfg.JWT.AccessExpiration)
	assert.Equal(t, "America/Santiago", cfg.App.Timezone)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "America/Santiago", cfg.Location().String())
	assert.Equal(t, time.Hour, cfg.App.SessionSweepInterval)
}

func TestLoad_MissingPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_PASSWORD is required")
}

func TestLoad_InvalidTimezone(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid APP_TIMEZONE")
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PORT", "not-a-port")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid DB_PORT")
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5433, User: "faena", Password: "pw", Name: "agro", SSLMode: "require",
	}}
	assert.Equal(t, "postgres://faena:pw@db:5433/agro?sslmode=require", cfg.DatabaseURL())
}

func TestDatabaseURL_EscapesCredentials(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "faena", Password: "p@ss/w:rd?", Name: "agro", SSLMode: "disable",
	}}

	parsed, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	require.NoError(t, err)
	assert.Equal(t, "faena", parsed.ConnConfig.User)
	assert.Equal(t, "p@ss/w:rd?", parsed.ConnConfig.Password)
	assert.Equal(t, "db", parsed.ConnConfig.Host)
	assert.Equal(t, "agro", parsed.ConnConfig.Database)
}

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		cfg := &Config{App: AppConfig{LogLevel: in}}
		assert.Equal(t, want, cfg.LogLevel(), in)
	}
}

func TestGetEnvSlice_TrimsEntries(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.cl, http://b.cl ,")
	assert.Equal(t, []string{"http://a.cl", "http://b.cl"}, getEnvSlice("CORS_ALLOWED_ORIGINS", ""))
}

func TestLoad_InvalidSweepInterval(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_SWEEP_INTERVAL", "hourly")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid SESSION_SWEEP_INTERVAL")
}
