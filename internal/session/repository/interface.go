package repository

import (
	"context"

	"focusflow/internal/model"
)

// Repository is the data store for focus sessions. Every read and write
// is scoped to a user; there is no cross-user access path.
type Repository interface {
	// CreateSession inserts a new session row.
	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.FocusSession, error)

	// GetOneSession retrieves a single session by the provided filters
	// (AND condition). Returns zero-value session (ID == "") when not
	// found — do NOT return an error for not-found.
	GetOneSession(ctx context.Context, opt GetOneSessionOptions) (model.FocusSession, error)

	// ListSessions returns a user's sessions ordered by started_at
	// descending. Limit <= 0 means no limit.
	ListSessions(ctx context.Context, opt ListSessionsOptions) ([]model.FocusSession, error)

	// EndSession sets ended_at on an active session owned by the user.
	// Returns zero-value session when no active row matched.
	EndSession(ctx context.Context, opt EndSessionOptions) (model.FocusSession, error)
}
