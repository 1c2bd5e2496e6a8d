package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"focusflow/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery())

	mw := middleware.New(srv.l, 0)
	srv.gin.Use(mw.Cors(srv.corsOrigin))
	srv.l.Infof(ctx, "CORS origin: %s", srv.corsOrigin)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.welcome)
	srv.gin.GET("/health", srv.healthCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.breakdownRateLimit)
	api := srv.gin.Group("/api")

	if err := srv.setupSessionDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupBreakdownDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
