package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Fixed storage keys in reportDiskKV. History holds the serialized report
// sequence, credential holds the user-supplied API key override.
const (
	HistoryKey    = "ai_report_history"
	CredentialKey = "user_api_key"
)

// Store is a durable key-value store backed by a SQLite reportDiskKV table
type Store struct {
	db *sql.DB
}

// NewStore wraps an already-open database. The reportDiskKV table must exist.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// OpenStore opens (and if needed creates) the store at path
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &StoreError{Key: path, Op: "open", Err: err}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StoreError{Key: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreError{Key: path, Op: "open", Err: err}
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS reportDiskKV (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, &StoreError{Key: path, Op: "open", Err: err}
	}

	return &Store{db: db}, nil
}

// Get returns the value for key and whether it was present
func (s *Store) Get(key string) (string, bool, error) {
	var value sql.NullString
	err := s.db.QueryRow("SELECT value FROM reportDiskKV WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StoreError{Key: key, Op: "get", Err: err}
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// Set durably writes value under key, replacing any previous value
func (s *Store) Set(key, value string) error {
	query := `INSERT INTO reportDiskKV (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.Exec(query, key, value); err != nil {
		return &StoreError{Key: key, Op: "set", Err: err}
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM reportDiskKV WHERE key = ?", key); err != nil {
		return &StoreError{Key: key, Op: "delete", Err: err}
	}
	return nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// DefaultStoragePath returns the default database location under the user's
// home directory, or custom when non-empty.
func DefaultStoragePath(custom string) (string, error) {
	if custom != "" {
		return custom, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".raporgen", "raporgen.db"), nil
}
