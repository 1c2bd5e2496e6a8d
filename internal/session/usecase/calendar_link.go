package usecase

import (
	"context"
	"net/url"

	"focusflow/internal/model"
	"focusflow/internal/session"
	repo "focusflow/internal/session/repository"
)

const calendarRenderURL = "https://calendar.google.com/calendar/render"

// CalendarLink builds a Google Calendar "create event" URL for a session
// so the user can block the time themselves. No provider is contacted;
// this is pure URL construction.
func (uc *implUseCase) CalendarLink(ctx context.Context, sc model.Scope, sessionID string) (session.CalendarLinkOutput, error) {
	s, err := uc.repo.GetOneSession(ctx, repo.GetOneSessionOptions{ID: sessionID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CalendarLink GetOneSession: %v", err)
		return session.CalendarLinkOutput{}, err
	}
	if s.ID == "" {
		return session.CalendarLinkOutput{}, session.ErrSessionNotFound
	}

	start, end := eventWindow(s)
	title := eventTitle(s)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", title)
	params.Set("dates", formatCalendarTime(start)+"/"+formatCalendarTime(end))

	return session.CalendarLinkOutput{
		URL:   calendarRenderURL + "?" + params.Encode(),
		Title: title,
	}, nil
}
