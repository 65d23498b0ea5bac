package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	analysisHTTP "mindcare-api/internal/analysis/delivery/http"
	"mindcare-api/pkg/response"
)

const (
	HealthMessage = "MindCare text analysis service"
	HealthVersion = analysisHTTP.ServiceVersion
	ServiceName   = analysisHTTP.ServiceName

	readyTimeout = 2 * time.Second
)

// root returns service information.
// @Summary Service Info
// @Description Service name, version and the main endpoints
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service information"
// @Router / [get]
func (srv HTTPServer) root(c *gin.Context) {
	response.OK(c, gin.H{
		"service": ServiceName,
		"version": HealthVersion,
		"message": HealthMessage,
		"endpoints": gin.H{
			"analyze_text":  "/api/v1/analyze-text",
			"batch_analyze": "/api/v1/batch-analyze",
			"health":        "/api/v1/health",
			"model_info":    "/api/v1/model-info",
			"docs":          "/swagger/index.html",
		},
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API process is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck pings every readiness dependency and reports 503 if any fails.
// @Summary Readiness Check
// @Description Check if the API and its dependencies are ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	checks := make(map[string]string, len(srv.readiness))
	ready := true
	for name, p := range srv.readiness {
		if err := p.Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %s not ready: %v", name, err)
			checks[name] = "unavailable"
			ready = false
			continue
		}
		checks[name] = "ok"
	}

	data := gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
		"checks":  checks,
	}
	if !ready {
		data["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "Service not ready",
			Data:      data,
		})
		return
	}
	response.OK(c, data)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
