package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
)

// TestDatabaseSetup wraps a live database used by the integration tests.
// The schema in db/schema.sql must already be applied.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL. It returns nil when the
// variable is unset so callers can skip.
func NewTestDatabase(ctx context.Context) (*TestDatabaseSetup, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	return &TestDatabaseSetup{DB: db}, nil
}

// TruncateAllTables removes every row and resets the sequences.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tables := []string{
		"asistencias",
		"procesos",
		"liquidaciones",
		"cuadrilla_trabajo",
		"cuadrilla_trabajador",
		"trabajos",
		"cuadrillas",
		"cuarteles",
		"contrato_trabajador",
		"contratos",
		"contratistas",
		"empresas",
		"trabajadores",
		"pulseras",
		"usuarios",
	}

	_, err := t.DB.Exec(ctx, "TRUNCATE TABLE "+strings.Join(tables, ", ")+" RESTART IDENTITY CASCADE")
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}

func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
