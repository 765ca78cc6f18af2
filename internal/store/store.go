package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the SQLite connection and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS fetch_events (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		request_id  TEXT    NOT NULL,
		endpoint    TEXT    NOT NULL,
		subject_id  TEXT    NOT NULL DEFAULT '',
		part_id     TEXT    NOT NULL DEFAULT '',
		success     INTEGER NOT NULL,
		error       TEXT    NOT NULL DEFAULT '',
		latency_ms  INTEGER NOT NULL,
		created_at  INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create fetch_events: %w", err)
	}
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS fetch_events_created_at ON fetch_events (created_at)`)
	if err != nil {
		return fmt.Errorf("create fetch_events index: %w", err)
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. RESHUFFLE_DB environment variable
// 2. $XDG_DATA_HOME/reshuffle-admin/history.db
// 3. ~/.local/share/reshuffle-admin/history.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("RESHUFFLE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "reshuffle-admin", "history.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
