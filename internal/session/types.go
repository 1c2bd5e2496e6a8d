package session

import "focusflow/internal/model"

// --- UseCase Inputs ---

type StartInput struct {
	TaskTitle string
}

type ListInput struct {
	Limit int
}

// --- UseCase Outputs ---

type StartOutput struct {
	Session model.FocusSession
}

type EndOutput struct {
	Session model.FocusSession
}

type ListOutput struct {
	Sessions []model.FocusSession
}

// StatsOutput aggregates a user's focus history. Minutes count completed
// sessions only; session counts include active ones.
type StatsOutput struct {
	TotalSessions int
	TotalMinutes  int
	TodaySessions int
	TodayMinutes  int
}

// CalendarLinkOutput is a Google Calendar render URL for a session plus
// the resolved event title.
type CalendarLinkOutput struct {
	URL   string
	Title string
}

// CalendarEventOutput describes the event inserted into the user's
// calendar for a session block.
type CalendarEventOutput struct {
	EventID  string
	HtmlLink string
	Title    string
}
