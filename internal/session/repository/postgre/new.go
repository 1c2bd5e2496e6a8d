package postgre

import (
	"database/sql"
	"fmt"

	"focusflow/internal/session/repository"
	"focusflow/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

const schema = `
	CREATE TABLE IF NOT EXISTS focus_sessions (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		task_title TEXT NOT NULL,
		started_at TIMESTAMPTZ NOT NULL,
		ended_at   TIMESTAMPTZ
	);

	CREATE INDEX IF NOT EXISTS idx_focus_sessions_user_id ON focus_sessions (user_id);
`

// New creates a new PostgreSQL-backed session Repository. The table is
// created on first use; there is no separate migration step.
func New(db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("session/repository/postgre: db is required")
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create focus_sessions table: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("session/repository/postgre.%s", method)
}
