package http

import (
	"github.com/gin-gonic/gin"

	"focusflow/internal/session"
	"focusflow/pkg/log"
)

// Handler is the public interface for the session HTTP delivery layer.
type Handler interface {
	Start(c *gin.Context)
	End(c *gin.Context)
	List(c *gin.Context)
	Stats(c *gin.Context)
	CalendarLink(c *gin.Context)
	CalendarEvent(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc session.UseCase
}

// New creates a new HTTP handler for the session domain.
func New(l log.Logger, uc session.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
