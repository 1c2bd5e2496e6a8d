package usecase

import (
	"context"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/session"
	repo "focusflow/internal/session/repository"
)

// End sets ended_at on an active session. A session owned by another
// user looks exactly like a missing one.
func (uc *implUseCase) End(ctx context.Context, sc model.Scope, sessionID string) (session.EndOutput, error) {
	s, err := uc.repo.GetOneSession(ctx, repo.GetOneSessionOptions{ID: sessionID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.End GetOneSession: %v", err)
		return session.EndOutput{}, err
	}
	if s.ID == "" {
		return session.EndOutput{}, session.ErrSessionNotFound
	}
	if s.EndedAt != nil {
		return session.EndOutput{}, session.ErrSessionAlreadyEnded
	}

	updated, err := uc.repo.EndSession(ctx, repo.EndSessionOptions{
		ID:      sessionID,
		UserID:  sc.UserID,
		EndedAt: time.Now().UTC(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.End EndSession: %v", err)
		return session.EndOutput{}, err
	}
	if updated.ID == "" {
		// A concurrent End won the single-shot update.
		return session.EndOutput{}, session.ErrSessionAlreadyEnded
	}

	return session.EndOutput{Session: updated}, nil
}
