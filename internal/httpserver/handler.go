package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	analysisHTTP "mindcare-api/internal/analysis/delivery/http"
	"mindcare-api/internal/middleware"
	"mindcare-api/internal/model"
	"mindcare-api/pkg/response"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	srv.gin.NoRoute(response.NotFound)
}

func (srv HTTPServer) registerMiddlewares() {
	// Recovery runs inside Logger and Metrics so recovered panics are still logged and counted.
	srv.gin.Use(
		srv.mw.RequestID(),
		srv.mw.Logger(),
		srv.mw.Metrics(),
		srv.mw.Recovery(),
		srv.mw.CORS(),
	)

	ctx := context.Background()
	policy := srv.mw.CORSPolicy()
	if srv.environment == string(model.EnvironmentProduction) && policy == middleware.CORSAllowAll {
		srv.l.Warnf(ctx, "CORS allows every origin in production")
	} else {
		srv.l.Infof(ctx, "CORS origins: %s", policy)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.root)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metricsHandler != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metricsHandler))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1")
	analysisHTTP.RegisterRoutes(api, srv.analysisHandler, srv.mw.RateLimit())

	srv.l.Infof(context.Background(), "Analysis routes registered under /api/v1")
}
