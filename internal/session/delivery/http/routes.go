package http

import (
	"github.com/gin-gonic/gin"

	"focusflow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every
// route requires the caller identity header.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	sessions := api.Group("/sessions")
	{
		sessions.POST("", mw.Identity(), h.Start)
		sessions.GET("", mw.Identity(), h.List)
		sessions.PATCH("/:id", mw.Identity(), h.End)
		sessions.GET("/:id/calendar-link", mw.Identity(), h.CalendarLink)
		sessions.POST("/:id/calendar-event", mw.Identity(), h.CalendarEvent)
	}

	api.GET("/stats", mw.Identity(), h.Stats)
}
