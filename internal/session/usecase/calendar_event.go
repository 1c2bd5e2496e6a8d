package usecase

import (
	"context"

	"focusflow/internal/model"
	"focusflow/internal/session"
	repo "focusflow/internal/session/repository"
	"focusflow/pkg/gcalendar"
)

// CalendarEvent inserts the session's block directly into the user's
// Google Calendar. Only available when calendar credentials are
// configured; the render-link operation covers everyone else.
func (uc *implUseCase) CalendarEvent(ctx context.Context, sc model.Scope, sessionID string) (session.CalendarEventOutput, error) {
	if uc.calendar == nil {
		return session.CalendarEventOutput{}, session.ErrCalendarNotConfigured
	}

	s, err := uc.repo.GetOneSession(ctx, repo.GetOneSessionOptions{ID: sessionID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CalendarEvent GetOneSession: %v", err)
		return session.CalendarEventOutput{}, err
	}
	if s.ID == "" {
		return session.CalendarEventOutput{}, session.ErrSessionNotFound
	}

	start, end := eventWindow(s)
	title := eventTitle(s)

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     title,
		Description: "Focus session",
		StartTime:   start,
		EndTime:     end,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CalendarEvent CreateEvent: %v", err)
		return session.CalendarEventOutput{}, err
	}

	uc.l.Infof(ctx, "uc.CalendarEvent: user=%s session=%s event=%s", sc.UserID, s.ID, event.ID)
	return session.CalendarEventOutput{
		EventID:  event.ID,
		HtmlLink: event.HtmlLink,
		Title:    title,
	}, nil
}
