package model

import "time"

// FocusSession is a timed interval of dedicated work on one task.
// A session is active while EndedAt is nil; ending it is terminal.
type FocusSession struct {
	ID        string     // generated at creation, immutable
	UserID    string     // caller-asserted owner, immutable
	TaskTitle string     // defaults to "Focus" when blank
	StartedAt time.Time  // UTC, set at creation
	EndedAt   *time.Time // UTC, nil while active, set exactly once
}

// DefaultTaskTitle is the placeholder used when a session is started
// with a blank title.
const DefaultTaskTitle = "Focus"

// Active reports whether the session has not been ended yet.
func (s FocusSession) Active() bool {
	return s.EndedAt == nil
}
