// Package testkit holds shared helpers for database-backed tests.
package testkit

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/winkel/config"
	_ "github.com/shashiranjanraj/winkel/database/migrations"
	"github.com/shashiranjanraj/winkel/pkg/database"
	"github.com/shashiranjanraj/winkel/pkg/migration"
)

// DB opens a throwaway in-memory SQLite database, runs the registered
// migrations against it and returns the handle. Each call gets its own
// database. The DSN carries no pragmas on purpose: tests go through the
// same Connect path as the server, which turns foreign keys on for sqlite.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DatabaseDriver: "sqlite",
		DatabaseDSN: fmt.Sprintf("file:%s?mode=memory&cache=shared",
			uuid.NewString()),
	}

	db, err := database.Connect(cfg)
	require.NoError(t, err, "open test database")
	require.NoError(t, migration.New(db).Run(), "run migrations")

	return db
}
