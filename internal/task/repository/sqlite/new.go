// Package sqlite implements the task repository on a local SQLite
// database: tasks keyed by id with an indexed due-day column for the
// by-date lookup.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"aufgabe/internal/task/repository"
	pkgLog "aufgabe/pkg/log"
)

// Ensure the concrete type satisfies the repository contract.
var _ repository.Repository = (*implRepository)(nil)

type implRepository struct {
	db  *sql.DB
	loc *time.Location
	l   pkgLog.Logger
}

// New opens (or creates) the database at path and runs schema
// migration. The location decides which calendar day a due timestamp
// falls on for the secondary index.
func New(path string, loc *time.Location, l pkgLog.Logger) (*implRepository, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	r := &implRepository{db: db, loc: loc, l: l}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate task store: %w", err)
	}
	return r, nil
}

func (r *implRepository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id               TEXT PRIMARY KEY,
		content          TEXT NOT NULL,
		title            TEXT NOT NULL,
		due_date         TEXT,
		due_day          TEXT,
		recurrence       TEXT,
		tags             TEXT NOT NULL DEFAULT '[]',
		icon             TEXT NOT NULL DEFAULT '',
		is_completed     INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		completed_at     TEXT,
		postponed_count  INTEGER NOT NULL DEFAULT 0,
		original_due     TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_tasks_due_day ON tasks(due_day);
	`
	_, err := r.db.Exec(schema)
	return err
}

// Close releases the underlying database handle.
func (r *implRepository) Close() error {
	return r.db.Close()
}
