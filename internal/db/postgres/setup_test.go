package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB connects to TEST_DATABASE_URL, runs migrations and empties every table.
// Tests are skipped when the variable is unset.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL tests")
	}

	db, err := Open(context.Background(), dsn)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db), "Failed to run migrations")
	require.NoError(t, Truncate(context.Background(), db))

	return db
}
