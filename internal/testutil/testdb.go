package testutil

import (
	"database/sql"
	"testing"

	"github.com/avilev/boardwalk/internal/db"
)

// NewTestDB opens a fresh in-memory SQLite database with migrations applied.
// The database is closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}
