// Package inmem is a map-backed session Repository. It exists for tests
// and for running the API without a database (database.driver: memory);
// it satisfies the same contract as the sqlite and postgres backings.
package inmem

import (
	"context"
	"sort"
	"sync"

	"focusflow/internal/model"
	repo "focusflow/internal/session/repository"
)

type implRepository struct {
	mu       sync.RWMutex
	sessions map[string]model.FocusSession
}

// New creates an empty in-memory session Repository.
func New() repo.Repository {
	return &implRepository{
		sessions: make(map[string]model.FocusSession),
	}
}

func (r *implRepository) CreateSession(ctx context.Context, opt repo.CreateSessionOptions) (model.FocusSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := model.FocusSession{
		ID:        opt.ID,
		UserID:    opt.UserID,
		TaskTitle: opt.TaskTitle,
		StartedAt: opt.StartedAt,
	}
	r.sessions[s.ID] = s
	return s, nil
}

func (r *implRepository) GetOneSession(ctx context.Context, opt repo.GetOneSessionOptions) (model.FocusSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if opt.ID != "" && s.ID != opt.ID {
			continue
		}
		if opt.UserID != "" && s.UserID != opt.UserID {
			continue
		}
		return s, nil
	}
	return model.FocusSession{}, nil
}

func (r *implRepository) ListSessions(ctx context.Context, opt repo.ListSessionsOptions) ([]model.FocusSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sessions []model.FocusSession
	for _, s := range r.sessions {
		if s.UserID == opt.UserID {
			sessions = append(sessions, s)
		}
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})

	if opt.Limit > 0 && len(sessions) > opt.Limit {
		sessions = sessions[:opt.Limit]
	}
	return sessions, nil
}

func (r *implRepository) EndSession(ctx context.Context, opt repo.EndSessionOptions) (model.FocusSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[opt.ID]
	if !ok || s.UserID != opt.UserID || s.EndedAt != nil {
		return model.FocusSession{}, nil
	}

	endedAt := opt.EndedAt
	s.EndedAt = &endedAt
	r.sessions[opt.ID] = s
	return s, nil
}
