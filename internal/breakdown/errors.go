package breakdown

import "errors"

// Domain-specific errors for the breakdown package.
var (
	// ErrNotConfigured means no usable model provider credential exists.
	ErrNotConfigured = errors.New("model provider API key not configured")

	// ErrUnparsableReply means the model replied with something that is
	// not a JSON array of steps.
	ErrUnparsableReply = errors.New("could not parse model reply")
)
