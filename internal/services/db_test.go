package services

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/fitzone/fitzone-be/internal/database"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a migrated throwaway database for one test.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
	return count
}
