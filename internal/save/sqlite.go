// internal/save/sqlite.go
package save

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps the latest blob per slot plus an append-only history of
// every save.
type SQLiteStore struct {
	db *sql.DB
}

// HistoryEntry is one row of the save history.
type HistoryEntry struct {
	ID      string
	Slot    string
	SavedAt time.Time
	Size    int
}

// OpenSQLite opens (or creates) the database at dbPath and its schema.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if err := createSchemas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schemas: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func createSchemas(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			blob BLOB NOT NULL,
			saved_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS save_history (
			id TEXT PRIMARY KEY,
			slot TEXT NOT NULL,
			blob BLOB NOT NULL,
			saved_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_save_history_slot ON save_history(slot, saved_at);`,
	}
	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Save(ctx context.Context, slot string, blob []byte) error {
	now := time.Now().UTC()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO saves (slot, blob, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET blob = excluded.blob, saved_at = excluded.saved_at`,
		slot, blob, now,
	); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO save_history (id, slot, blob, saved_at) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), slot, blob, now,
	); err != nil {
		return fmt.Errorf("failed to append save history: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, slot string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT blob FROM saves WHERE slot = ?`, slot).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}
	return blob, nil
}

// Delete removes the current blob. History rows are kept.
func (s *SQLiteStore) Delete(ctx context.Context, slot string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}

// History lists the saves of a slot, newest first.
func (s *SQLiteStore) History(ctx context.Context, slot string, limit int) ([]HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, slot, saved_at, length(blob) FROM save_history
		 WHERE slot = ? ORDER BY saved_at DESC, rowid DESC LIMIT ?`,
		slot, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query save history: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.Slot, &e.SavedAt, &e.Size); err != nil {
			return nil, fmt.Errorf("failed to scan save history: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
