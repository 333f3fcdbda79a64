package repositories

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"fintrack/src/database"
)

// setupTestDB migrates a fresh in-memory SQLite database. The pool is pinned
// to a single connection so every query sees the same memory store.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db
}
