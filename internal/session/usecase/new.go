package usecase

import (
	"context"

	"focusflow/internal/session/repository"
	"focusflow/pkg/gcalendar"
	"focusflow/pkg/log"
)

// CalendarClient is the slice of the Google Calendar client this use
// case needs. Nil means calendar sync is not configured.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of session.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	calendar   CalendarClient
	calendarID string
}

// New creates a new session UseCase implementation.
func New(l log.Logger, repo repository.Repository, calendar CalendarClient, calendarID string) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
	}
}
