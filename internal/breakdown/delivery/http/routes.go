package http

import (
	"github.com/gin-gonic/gin"

	"focusflow/internal/middleware"
)

// RegisterRoutes maps the breakdown endpoint. No identity header is
// needed: nothing here touches per-user state. Model calls cost money,
// so the route is rate limited per client.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	api.POST("/breakdown", mw.RateLimit(), h.Decompose)
}
