package session

import "errors"

// Domain-specific errors for the session package. A session owned by a
// different user is reported as not found, never as forbidden.
var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrSessionAlreadyEnded   = errors.New("session already ended")
	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
)
