package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/plans/internal/db"
)

// NewTestDB returns a migrated in-memory SQLite database that closes with
// the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err, "open in-memory database")
	t.Cleanup(func() { database.Close() })
	return database
}
