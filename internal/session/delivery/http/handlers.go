package http

import (
	"github.com/gin-gonic/gin"

	"focusflow/internal/middleware"
	"focusflow/pkg/response"
)

// Start godoc
// @Summary     Start a focus session
// @Description Starts a new focus session for the caller. Returns the session with id and started_at.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       X-User-Id header string   true "Caller identity"
// @Param       body      body   startReq true "Session data"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.ErrorBody "Missing identity"
// @Router      /api/sessions [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processStartReq(c)
	if err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	output, err := h.uc.Start(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output.Session))
}

// End godoc
// @Summary     End a focus session
// @Description Sets ended_at on an active session. Ending twice fails.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       X-User-Id header string true "Caller identity"
// @Param       id        path   string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.ErrorBody "Missing identity / already ended"
// @Failure     404 {object} response.ErrorBody "Not Found"
// @Router      /api/sessions/{id} [PATCH]
func (h *handler) End(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.End(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.End: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output.Session))
}

// List godoc
// @Summary     List focus sessions
// @Description Returns the caller's sessions, newest first.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       X-User-Id header string true  "Caller identity"
// @Param       limit     query  int    false "Max sessions to return (default: 20)"
// @Success     200 {array} sessionResp
// @Failure     400 {object} response.ErrorBody "Missing identity"
// @Router      /api/sessions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req := h.processListReq(c)

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Stats godoc
// @Summary     Focus stats
// @Description Today and all-time session counts and completed minutes for the caller.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       X-User-Id header string true "Caller identity"
// @Success     200 {object} statsResp
// @Failure     400 {object} response.ErrorBody "Missing identity"
// @Router      /api/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// CalendarLink godoc
// @Summary     Calendar link for a session
// @Description Google Calendar URL to block the session's time. Active sessions get a default 60-minute block.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       X-User-Id header string true "Caller identity"
// @Param       id        path   string true "Session ID"
// @Success     200 {object} calendarLinkResp
// @Failure     400 {object} response.ErrorBody "Missing identity"
// @Failure     404 {object} response.ErrorBody "Not Found"
// @Router      /api/sessions/{id}/calendar-link [GET]
func (h *handler) CalendarLink(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.CalendarLink(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.CalendarLink: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCalendarLinkResp(output))
}

// CalendarEvent godoc
// @Summary     Insert a calendar event for a session
// @Description Creates the session's block directly in the user's Google Calendar. Requires calendar credentials on the server.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       X-User-Id header string true "Caller identity"
// @Param       id        path   string true "Session ID"
// @Success     200 {object} calendarEventResp
// @Failure     400 {object} response.ErrorBody "Missing identity"
// @Failure     404 {object} response.ErrorBody "Not Found"
// @Failure     503 {object} response.ErrorBody "Calendar not configured"
// @Router      /api/sessions/{id}/calendar-event [POST]
func (h *handler) CalendarEvent(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.CalendarEvent(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.CalendarEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCalendarEventResp(output))
}
