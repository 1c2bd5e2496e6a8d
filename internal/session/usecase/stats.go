package usecase

import (
	"context"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/session"
	repo "focusflow/internal/session/repository"
)

// Stats aggregates the caller's full session history. Counts include
// active sessions; minutes come from completed ones only. "Today" is the
// UTC calendar date of started_at at call time.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (session.StatsOutput, error) {
	sessions, err := uc.repo.ListSessions(ctx, repo.ListSessionsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListSessions: %v", err)
		return session.StatsOutput{}, err
	}

	todayY, todayM, todayD := time.Now().UTC().Date()

	out := session.StatsOutput{}
	for _, s := range sessions {
		minutes := durationMinutes(s)

		out.TotalSessions++
		out.TotalMinutes += minutes

		y, m, d := s.StartedAt.UTC().Date()
		if y == todayY && m == todayM && d == todayD {
			out.TodaySessions++
			out.TodayMinutes += minutes
		}
	}

	return out, nil
}
