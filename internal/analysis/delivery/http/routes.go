package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// limit is applied to the analysis routes only; status routes stay unthrottled.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, limit ...gin.HandlerFunc) {
	throttled := rg.Group("", limit...)
	{
		throttled.POST("/analyze-text", h.AnalyzeText)
		throttled.POST("/batch-analyze", h.BatchAnalyze)
	}

	rg.GET("/health", h.Health)
	rg.GET("/model-info", h.ModelInfo)
}
