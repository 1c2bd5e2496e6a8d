package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"focusflow/internal/model"
	repo "focusflow/internal/session/repository"
)

// CreateSession inserts a new session row and returns the created entity.
func (r *implRepository) CreateSession(ctx context.Context, opt repo.CreateSessionOptions) (model.FocusSession, error) {
	const query = `
		INSERT INTO focus_sessions (id, user_id, task_title, started_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, task_title, started_at, ended_at`

	row := r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID, opt.TaskTitle, opt.StartedAt)
	s, err := scanSession(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return model.FocusSession{}, repo.ErrFailedToInsert
	}
	return s, nil
}

// GetOneSession retrieves a single session by the provided filters (AND
// condition). Returns zero-value session when not found.
func (r *implRepository) GetOneSession(ctx context.Context, opt repo.GetOneSessionOptions) (model.FocusSession, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(
		"SELECT id, user_id, task_title, started_at, ended_at FROM focus_sessions WHERE %s LIMIT 1",
		mods,
	)

	s, err := scanSession(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.FocusSession{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSession"), err)
		return model.FocusSession{}, repo.ErrFailedToGet
	}
	return s, nil
}

// ListSessions returns a user's sessions, newest first.
func (r *implRepository) ListSessions(ctx context.Context, opt repo.ListSessionsOptions) ([]model.FocusSession, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(
		"SELECT id, user_id, task_title, started_at, ended_at FROM focus_sessions %s",
		mods,
	)

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

// EndSession sets ended_at on an active session owned by the user. The
// ended_at IS NULL guard keeps the write single-shot: a racing second
// End matches no row and gets the zero value back.
func (r *implRepository) EndSession(ctx context.Context, opt repo.EndSessionOptions) (model.FocusSession, error) {
	const query = `
		UPDATE focus_sessions
		SET ended_at = $1
		WHERE id = $2 AND user_id = $3 AND ended_at IS NULL
		RETURNING id, user_id, task_title, started_at, ended_at`

	s, err := scanSession(r.db.QueryRowContext(ctx, query, opt.EndedAt, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.FocusSession{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("EndSession"), err)
		return model.FocusSession{}, repo.ErrFailedToUpdate
	}
	return s, nil
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
