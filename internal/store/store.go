// Package store persists progress snapshots and session events in a
// local SQLite database.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection shared by the repositories.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the database at dsn and applies the
// connection pragmas and schema.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", p, err)
		}
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func initSchema(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS global_sequence (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			next_val INTEGER NOT NULL
		)`,
		`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`,
		`CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			data TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS quiz_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			quiz_id TEXT NOT NULL,
			category TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			total_questions INTEGER NOT NULL,
			correct_answers INTEGER NOT NULL,
			time_taken_ms INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS drill_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			operations TEXT NOT NULL,
			attempted INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			duration_sec INTEGER NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Snapshots returns the snapshot repository backed by this store.
func (s *Store) Snapshots() *SnapshotRepo {
	return &SnapshotRepo{db: s.db}
}

// Events returns the event repository backed by this store.
func (s *Store) Events() *EventRepo {
	return &EventRepo{db: s.db}
}

// DefaultDBPath resolves the database location: the QUANTPREP_DB
// environment variable wins, then XDG_DATA_HOME, then ~/.local/share.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("QUANTPREP_DB"); p != "" {
		return p, nil
	}
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "quantprep", "quantprep.db"), nil
}

// EnsureDir creates the parent directory of path if it does not exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}
