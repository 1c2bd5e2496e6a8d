package errors

import "fmt"

// HTTPError is an error that carries the HTTP status it should be
// rendered with. Delivery layers produce it from domain errors via
// their mapError functions.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}
