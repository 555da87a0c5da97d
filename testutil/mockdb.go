package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateInMemoryDB creates an in-memory SQLite database with the reportDiskKV
// table for testing
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS reportDiskKV (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		t.Fatalf("Failed to create reportDiskKV table: %v", err)
	}

	return db
}

// InsertKV inserts a raw key-value pair, for seeding malformed or
// pre-existing data
func InsertKV(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	if _, err := db.Exec("INSERT OR REPLACE INTO reportDiskKV (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("Failed to insert key %s: %v", key, err)
	}
}
