package sqlite

import (
	"context"
	"database/sql"

	"focusflow/internal/model"
	repo "focusflow/internal/session/repository"
)

const sessionColumns = "id, user_id, task_title, started_at, ended_at"

// CreateSession inserts a new session row.
func (r *implRepository) CreateSession(ctx context.Context, opt repo.CreateSessionOptions) (model.FocusSession, error) {
	const query = `
		INSERT INTO focus_sessions (id, user_id, task_title, started_at)
		VALUES (?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID, opt.TaskTitle, opt.StartedAt); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return model.FocusSession{}, repo.ErrFailedToInsert
	}

	return model.FocusSession{
		ID:        opt.ID,
		UserID:    opt.UserID,
		TaskTitle: opt.TaskTitle,
		StartedAt: opt.StartedAt,
	}, nil
}

// GetOneSession retrieves a single session by the provided filters (AND
// condition). Returns zero-value session when not found.
func (r *implRepository) GetOneSession(ctx context.Context, opt repo.GetOneSessionOptions) (model.FocusSession, error) {
	query := "SELECT " + sessionColumns + " FROM focus_sessions WHERE 1=1"
	var args []any
	if opt.ID != "" {
		query += " AND id = ?"
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		query += " AND user_id = ?"
		args = append(args, opt.UserID)
	}
	query += " LIMIT 1"

	s, err := scanSession(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.FocusSession{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSession"), err)
		return model.FocusSession{}, repo.ErrFailedToGet
	}
	return s, nil
}

// ListSessions returns a user's sessions, newest first.
func (r *implRepository) ListSessions(ctx context.Context, opt repo.ListSessionsOptions) ([]model.FocusSession, error) {
	query := "SELECT " + sessionColumns + " FROM focus_sessions WHERE user_id = ? ORDER BY started_at DESC"
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSessions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var sessions []model.FocusSession
	for rows.Next() {
		s, scanErr := scanSession(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSessions"), scanErr)
			return nil, repo.ErrFailedToList
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSessions"), err)
		return nil, repo.ErrFailedToList
	}
	return sessions, nil
}

// EndSession sets ended_at on an active session owned by the user.
// Returns zero-value session when no active row matched.
func (r *implRepository) EndSession(ctx context.Context, opt repo.EndSessionOptions) (model.FocusSession, error) {
	const query = `
		UPDATE focus_sessions
		SET ended_at = ?
		WHERE id = ? AND user_id = ? AND ended_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, opt.EndedAt, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("EndSession"), err)
		return model.FocusSession{}, repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s affected: %v", r.dsn("EndSession"), err)
		return model.FocusSession{}, repo.ErrFailedToUpdate
	}
	if affected == 0 {
		return model.FocusSession{}, nil
	}

	return r.GetOneSession(ctx, repo.GetOneSessionOptions{ID: opt.ID, UserID: opt.UserID})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (model.FocusSession, error) {
	var s model.FocusSession
	var endedAt sql.NullTime
	if err := row.Scan(&s.ID, &s.UserID, &s.TaskTitle, &s.StartedAt, &endedAt); err != nil {
		return model.FocusSession{}, err
	}
	s.StartedAt = s.StartedAt.UTC()
	if endedAt.Valid {
		t := endedAt.Time.UTC()
		s.EndedAt = &t
	}
	return s, nil
}
