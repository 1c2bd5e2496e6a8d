package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"focusflow/internal/model"
	"focusflow/internal/session"
	repo "focusflow/internal/session/repository"
)

// Start creates a new active session for the caller. A blank title falls
// back to the placeholder.
func (uc *implUseCase) Start(ctx context.Context, sc model.Scope, input session.StartInput) (session.StartOutput, error) {
	title := strings.TrimSpace(input.TaskTitle)
	if title == "" {
		title = model.DefaultTaskTitle
	}

	s, err := uc.repo.CreateSession(ctx, repo.CreateSessionOptions{
		ID:        uuid.New().String(),
		UserID:    sc.UserID,
		TaskTitle: title,
		StartedAt: time.Now().UTC(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Start CreateSession: %v", err)
		return session.StartOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Start: user=%s session=%s title=%q", sc.UserID, s.ID, s.TaskTitle)
	return session.StartOutput{Session: s}, nil
}
