package http

import (
	"errors"

	"focusflow/internal/breakdown"
	pkgErrors "focusflow/pkg/errors"
)

// mapError translates domain errors into HTTP errors. Any model call
// failure surfaces as a bad gateway with the upstream message so the
// client can tell quota errors from parse errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, breakdown.ErrNotConfigured):
		return pkgErrors.NewHTTPError(503, "OpenAI API key not configured. Set OPENAI_API_KEY to enable task breakdown.")
	default:
		return pkgErrors.NewHTTPError(502, err.Error())
	}
}
