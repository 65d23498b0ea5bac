package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"mindcare-api/internal/analysis"
	"mindcare-api/pkg/response"
)

const (
	ServiceName    = "MindCare AI - Text Analysis"
	ServiceVersion = "1.0.0"
)

// AnalyzeText godoc
// @Summary     Analyze text
// @Description Classifies the emotion of a text and derives sentiment, linguistic features, a wellness score and a crisis assessment.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Text to analyze"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Model inference failed"
// @Failure     503  {object} response.Resp "Model not available"
// @Router      /api/v1/analyze-text [POST]
func (h *handler) AnalyzeText(c *gin.Context) {
	ctx := c.Request.Context()
	started := time.Now()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.AnalyzeText(ctx, req.toInput())
	if err != nil {
		if !analysis.IsInputError(err) {
			h.l.Errorf(ctx, "uc.AnalyzeText: %v", err)
		}
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyzeResp(output, started))
}

// BatchAnalyze godoc
// @Summary     Analyze several texts
// @Description Analyzes up to 50 texts. Blank items are skipped; results keep input order.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body []string true "Texts to analyze"
// @Success     200  {object} batchResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Model inference failed"
// @Failure     503  {object} response.Resp "Model not available"
// @Router      /api/v1/batch-analyze [POST]
func (h *handler) BatchAnalyze(c *gin.Context) {
	ctx := c.Request.Context()
	started := time.Now()

	req, err := h.processBatchReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.BatchAnalyze(ctx, req.toInput())
	if err != nil {
		if !analysis.IsInputError(err) {
			h.l.Errorf(ctx, "uc.BatchAnalyze: %v", err)
		}
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBatchResp(output, started))
}

// Health godoc
// @Summary     Model health
// @Description Reports whether at least one classifier backend is ready.
// @Tags        Analysis
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /api/v1/health [GET]
func (h *handler) Health(c *gin.Context) {
	output := h.uc.Health(c.Request.Context())
	response.OK(c, h.newHealthResp(output))
}

// ModelInfo godoc
// @Summary     Model information
// @Description Returns the model type, label set, maximum token length and configured backends.
// @Tags        Analysis
// @Produce     json
// @Success     200 {object} modelInfoResp
// @Failure     503 {object} response.Resp "Model not available"
// @Router      /api/v1/model-info [GET]
func (h *handler) ModelInfo(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ModelInfo(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ModelInfo: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newModelInfoResp(output))
}
