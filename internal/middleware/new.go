package middleware

import (
	"focusflow/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware bundle. rateLimitPerMin guards the
// breakdown endpoint; <= 0 disables limiting.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	var rl *rateLimiter
	if rateLimitPerMin > 0 {
		rl = newRateLimiter(rateLimitPerMin)
	}
	return Middleware{
		l:       l,
		limiter: rl,
	}
}
