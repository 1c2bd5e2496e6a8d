package http

import (
	"focusflow/internal/session"
	pkgErrors "focusflow/pkg/errors"
)

// mapError translates domain errors into HTTP errors. A session owned by
// another user was already reported as not found by the use case, so no
// 403 exists here.
func (h *handler) mapError(err error) error {
	switch err {
	case session.ErrSessionNotFound:
		return pkgErrors.NewHTTPError(404, "Session not found")
	case session.ErrSessionAlreadyEnded:
		return pkgErrors.NewHTTPError(400, "Session already ended")
	case session.ErrCalendarNotConfigured:
		return pkgErrors.NewHTTPError(503, "Google Calendar is not configured")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
