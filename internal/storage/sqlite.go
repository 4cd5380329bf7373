package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wolferonic/swiftbudget/internal/common"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements Store on a single-table SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (or creates) the database at dbPath and brings the
// schema up to date. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath is required: %w", common.ErrInvalidConfig)
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db, dbPath: dbPath}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get reads and unmarshals the value under key. Faults and corrupt values
// are logged and read as absent.
func (s *SQLiteStore) Get(key string, out any) bool {
	var raw []byte
	err := s.db.QueryRow(`SELECT value FROM collections WHERE key = ?`, key).Scan(&raw)
	switch {
	case err == sql.ErrNoRows:
		return false
	case err != nil:
		common.LogError(err, "failed to read collection", common.Fields{"key": key})
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		common.LogError(err, "corrupt collection value, treating as absent", common.Fields{"key": key})
		return false
	}
	return true
}

// Set overwrites the whole collection under key with the JSON encoding of
// value. Faults are logged and swallowed.
func (s *SQLiteStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		common.LogError(err, "failed to encode collection", common.Fields{"key": key})
		return
	}

	_, err = s.db.Exec(
		`INSERT INTO collections (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, raw)
	if err != nil {
		common.LogError(err, "failed to write collection", common.Fields{"key": key})
	}
}

// Remove deletes the value under key.
func (s *SQLiteStore) Remove(key string) {
	if _, err := s.db.Exec(`DELETE FROM collections WHERE key = ?`, key); err != nil {
		common.LogError(err, "failed to remove collection", common.Fields{"key": key})
	}
}

// Wipe removes every persisted collection.
func (s *SQLiteStore) Wipe() {
	if _, err := s.db.Exec(`DELETE FROM collections`); err != nil {
		common.LogError(err, "failed to wipe collections", common.Fields{"path": s.dbPath})
	}
}
