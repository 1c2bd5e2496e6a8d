package usecase

import (
	"context"

	"focusflow/internal/model"
	"focusflow/internal/session"
	repo "focusflow/internal/session/repository"
)

// List returns the caller's sessions, newest first. A non-positive limit
// is an empty prefix, not an error.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input session.ListInput) (session.ListOutput, error) {
	if input.Limit <= 0 {
		return session.ListOutput{Sessions: []model.FocusSession{}}, nil
	}

	sessions, err := uc.repo.ListSessions(ctx, repo.ListSessionsOptions{
		UserID: sc.UserID,
		Limit:  input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListSessions: %v", err)
		return session.ListOutput{}, err
	}

	return session.ListOutput{Sessions: sessions}, nil
}
