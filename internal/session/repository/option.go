package repository

import "time"

// CreateSessionOptions holds parameters for inserting a new session.
// The use case generates the id and start time so every backing stores
// identical rows.
type CreateSessionOptions struct {
	ID        string
	UserID    string
	TaskTitle string
	StartedAt time.Time
}

// GetOneSessionOptions holds filter parameters for fetching a single
// session. All non-empty fields are applied as AND conditions.
type GetOneSessionOptions struct {
	ID     string
	UserID string
}

// ListSessionsOptions holds filter parameters for listing sessions.
type ListSessionsOptions struct {
	UserID string
	Limit  int
}

// EndSessionOptions holds parameters for ending an active session.
type EndSessionOptions struct {
	ID      string
	UserID  string
	EndedAt time.Time
}
