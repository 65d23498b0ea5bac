package http

import (
	"github.com/gin-gonic/gin"

	"mindcare-api/internal/analysis"
	"mindcare-api/pkg/log"
)

// Handler is the public interface for the analysis HTTP delivery layer.
type Handler interface {
	AnalyzeText(c *gin.Context)
	BatchAnalyze(c *gin.Context)
	Health(c *gin.Context)
	ModelInfo(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc analysis.UseCase
}

// New creates a new HTTP handler for the analysis domain.
func New(l log.Logger, uc analysis.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
