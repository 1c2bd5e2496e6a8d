package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"focusflow/pkg/response"
)

// RateLimit throttles per caller. Applied to the breakdown endpoint only:
// every request there is a paid model-completion call. Keyed by user id
// when Identity ran, else by client IP.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}

		key := ScopeFromContext(c).UserID
		if key == "" {
			key = c.ClientIP()
		}

		if !mw.limiter.Allow(key) {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s", key, c.FullPath())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorBody{Detail: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per caller with auto-expiry.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max tracked callers
			nil,           // no eviction callback
			time.Minute*5, // TTL
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
