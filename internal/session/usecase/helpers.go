package usecase

import (
	"strings"
	"time"

	"focusflow/internal/model"
)

// defaultBlockMinutes is the event length assumed for a session that has
// not ended yet.
const defaultBlockMinutes = 60

// durationMinutes is the whole-minute duration of a completed session,
// clamped to zero so inconsistent clocks never produce negative stats.
// Active sessions have no duration.
func durationMinutes(s model.FocusSession) int {
	if s.EndedAt == nil {
		return 0
	}
	minutes := int(s.EndedAt.Sub(s.StartedAt) / time.Minute)
	if minutes < 0 {
		return 0
	}
	return minutes
}

// eventWindow resolves the calendar time range for a session: its actual
// span when ended, else a default block from the start.
func eventWindow(s model.FocusSession) (time.Time, time.Time) {
	start := s.StartedAt.UTC()
	if s.EndedAt != nil {
		return start, s.EndedAt.UTC()
	}
	return start, start.Add(defaultBlockMinutes * time.Minute)
}

// eventTitle resolves the calendar event title for a session.
func eventTitle(s model.FocusSession) string {
	title := strings.TrimSpace(s.TaskTitle)
	if title == "" {
		return model.DefaultTaskTitle
	}
	return title
}

// formatCalendarTime renders a timestamp in the compact UTC form Google
// Calendar expects in the dates parameter.
func formatCalendarTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}
