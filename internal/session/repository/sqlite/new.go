package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"focusflow/internal/session/repository"
	"focusflow/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New opens (or creates) the sqlite database at dbPath and returns a
// session Repository backed by it. This is the zero-setup default
// backing; postgres is used when a DSN is configured.
func New(dbPath string, l log.Logger) (repository.Repository, *sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	r := &implRepository{db: db, l: l}
	if err := r.createTables(); err != nil {
		db.Close()
		return nil, nil, err
	}

	return r, db, nil
}

func (r *implRepository) createTables() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS focus_sessions (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		task_title TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		ended_at   DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_focus_sessions_user_id ON focus_sessions (user_id);
	`

	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create focus_sessions table: %w", err)
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("session/repository/sqlite.%s", method)
}
