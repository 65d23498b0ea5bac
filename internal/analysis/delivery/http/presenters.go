package http

import (
	"math"
	"time"

	"mindcare-api/internal/analysis"
	"mindcare-api/pkg/linguistics"
	"mindcare-api/pkg/response"
	"mindcare-api/pkg/sentiment"
)

// --- Request DTOs ---

type analyzeReq struct {
	Text   string `json:"text"    binding:"required"`
	UserID string `json:"user_id" binding:"max=255"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		Text:   r.Text,
		UserID: r.UserID,
	}
}

// batchReq is a bare JSON array of texts.
type batchReq []string

func (r batchReq) toInput() analysis.BatchInput {
	return analysis.BatchInput{Texts: r}
}

// --- Response DTOs ---

type emotionResp struct {
	Primary          string             `json:"primary"`
	Confidence       float64            `json:"confidence"`
	AllProbabilities map[string]float64 `json:"all_probabilities"`
}

type crisisResp struct {
	Detected       bool     `json:"detected"`
	Severity       string   `json:"severity"`
	Indicators     []string `json:"indicators"`
	SupportMessage string   `json:"support_message,omitempty"`
}

type analyzeResp struct {
	Emotion            emotionResp          `json:"emotion"`
	Sentiment          sentiment.Scores     `json:"sentiment"`
	LinguisticFeatures linguistics.Features `json:"linguistic_features"`
	WellnessScore      float64              `json:"wellness_score"`
	Interpretation     string               `json:"interpretation"`
	Crisis             crisisResp           `json:"crisis"`
	InputLength        int                  `json:"input_length"`
	UserID             string               `json:"user_id,omitempty"`
	Timestamp          response.DateTime    `json:"timestamp"`
	Provider           string               `json:"provider"`
	Model              string               `json:"model"`
	Cached             bool                 `json:"cached"`
	ProcessingTime     float64              `json:"processing_time,omitempty"`
}

func newAnalyzeResp(out analysis.AnalyzeOutput) analyzeResp {
	a := out.Analysis
	probs := make(map[string]float64, len(a.Emotion.Probabilities))
	for e, p := range a.Emotion.Probabilities {
		probs[e.String()] = p
	}
	indicators := a.Crisis.Indicators
	if indicators == nil {
		indicators = []string{}
	}

	return analyzeResp{
		Emotion: emotionResp{
			Primary:          a.Emotion.Primary.String(),
			Confidence:       a.Emotion.Confidence,
			AllProbabilities: probs,
		},
		Sentiment:          a.Sentiment,
		LinguisticFeatures: a.Features,
		WellnessScore:      a.WellnessScore,
		Interpretation:     a.Interpretation,
		Crisis: crisisResp{
			Detected:       a.Crisis.Detected,
			Severity:       a.Crisis.Severity.String(),
			Indicators:     indicators,
			SupportMessage: a.Crisis.SupportMessage,
		},
		InputLength: out.InputLength,
		UserID:      out.UserID,
		Timestamp:   response.DateTime(out.Timestamp),
		Provider:    a.Provider,
		Model:       a.Model,
		Cached:      out.Cached,
	}
}

func (h *handler) newAnalyzeResp(out analysis.AnalyzeOutput, started time.Time) analyzeResp {
	resp := newAnalyzeResp(out)
	resp.ProcessingTime = elapsedSeconds(started)
	return resp
}

type batchResp struct {
	Count          int           `json:"count"`
	Skipped        int           `json:"skipped"`
	Results        []analyzeResp `json:"results"`
	ProcessingTime float64       `json:"processing_time"`
}

func (h *handler) newBatchResp(out analysis.BatchOutput, started time.Time) batchResp {
	results := make([]analyzeResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = newAnalyzeResp(r)
	}
	return batchResp{
		Count:          out.Count,
		Skipped:        out.Skipped,
		Results:        results,
		ProcessingTime: elapsedSeconds(started),
	}
}

type backendResp struct {
	Name  string `json:"name"`
	Model string `json:"model"`
}

func newBackendResps(backends []analysis.Backend) []backendResp {
	out := make([]backendResp, len(backends))
	for i, b := range backends {
		out[i] = backendResp{Name: b.Name, Model: b.Model}
	}
	return out
}

type healthResp struct {
	Status      string        `json:"status"`
	Service     string        `json:"service"`
	Version     string        `json:"version"`
	ModelLoaded bool          `json:"model_loaded"`
	Backends    []backendResp `json:"backends"`
	Error       string        `json:"error,omitempty"`
}

func (h *handler) newHealthResp(out analysis.HealthOutput) healthResp {
	return healthResp{
		Status:      out.Status,
		Service:     ServiceName,
		Version:     ServiceVersion,
		ModelLoaded: out.ModelLoaded,
		Backends:    newBackendResps(out.Backends),
		Error:       out.Error,
	}
}

type modelInfoResp struct {
	ModelType   string        `json:"model_type"`
	ModelName   string        `json:"model_name"`
	Emotions    []string      `json:"emotions"`
	NumEmotions int           `json:"num_emotions"`
	MaxLength   int           `json:"max_length"`
	Backends    []backendResp `json:"backends"`
}

func (h *handler) newModelInfoResp(out analysis.ModelInfoOutput) modelInfoResp {
	emotions := make([]string, len(out.Labels))
	for i, e := range out.Labels {
		emotions[i] = e.String()
	}
	return modelInfoResp{
		ModelType:   out.ModelType,
		ModelName:   out.ModelName,
		Emotions:    emotions,
		NumEmotions: out.NumLabels,
		MaxLength:   out.MaxLength,
		Backends:    newBackendResps(out.Backends),
	}
}

func elapsedSeconds(started time.Time) float64 {
	return math.Round(time.Since(started).Seconds()*1000) / 1000
}
