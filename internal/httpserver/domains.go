package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	breakdownHTTP "focusflow/internal/breakdown/delivery/http"
	breakdownUC "focusflow/internal/breakdown/usecase"
	"focusflow/internal/middleware"
	sessionHTTP "focusflow/internal/session/delivery/http"
	sessionUC "focusflow/internal/session/usecase"
)

// setupSessionDomain initializes the session domain and registers its
// routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, deps...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupSessionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := sessionUC.New(srv.l, srv.sessionRepo, srv.calendar, srv.calendarID)
	h := sessionHTTP.New(srv.l, uc)

	sessionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Session domain registered (calendar inserts: %v)", srv.calendar != nil)
	return nil
}

// setupBreakdownDomain initializes the breakdown domain and registers
// its routes. With no LLM client the endpoint still mounts and reports
// 503 per request.
func (srv HTTPServer) setupBreakdownDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := breakdownUC.New(srv.l, srv.llm, srv.openAIModel)
	h := breakdownHTTP.New(srv.l, uc)

	breakdownHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Breakdown domain registered (model configured: %v)", srv.llm != nil)
	return nil
}
