package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"focusflow/internal/model"
	"focusflow/pkg/response"
)

// UserIDHeader carries the caller-asserted user identity. It is trusted
// verbatim: there is no credential behind it.
const UserIDHeader = "X-User-Id"

const scopeKey = "focusflow.scope"

// Identity requires the X-User-Id header and puts the resulting Scope on
// the gin context. Requests without it are rejected with 400 before any
// handler (and therefore any storage access) runs.
func (mw Middleware) Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			response.BadRequest(c, "Missing X-User-Id header")
			return
		}
		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// ScopeFromContext returns the Scope set by Identity. The zero Scope is
// returned on routes that skipped the middleware.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
