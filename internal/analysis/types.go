package analysis

import (
	"time"

	"mindcare-api/internal/model"
	"mindcare-api/pkg/linguistics"
	"mindcare-api/pkg/sentiment"
)

// --- Domain Model ---

// Emotion is the classifier's verdict.
type Emotion struct {
	Primary       model.Emotion             `json:"primary"`
	Confidence    float64                   `json:"confidence"`
	Probabilities map[model.Emotion]float64 `json:"all_probabilities"`
}

// Crisis is the risk assessment attached to every analysis.
type Crisis struct {
	Detected       bool                 `json:"detected"`
	Severity       model.CrisisSeverity `json:"severity"`
	Indicators     []string             `json:"indicators"`
	SupportMessage string               `json:"support_message,omitempty"`
}

// Analysis is everything derived from the text alone. It is a pure function
// of the text and the serving model, which is what makes it cacheable.
type Analysis struct {
	Emotion        Emotion              `json:"emotion"`
	Sentiment      sentiment.Scores     `json:"sentiment"`
	Features       linguistics.Features `json:"linguistic_features"`
	WellnessScore  float64              `json:"wellness_score"`
	Interpretation string               `json:"interpretation"`
	Crisis         Crisis               `json:"crisis"`
	Provider       string               `json:"provider"`
	Model          string               `json:"model"`
}

// Backend identifies one configured classifier backend.
type Backend struct {
	Name  string
	Model string
}

// --- UseCase Inputs ---

type AnalyzeInput struct {
	Text   string
	UserID string
}

type BatchInput struct {
	Texts []string
}

// --- UseCase Outputs ---

type AnalyzeOutput struct {
	Analysis    Analysis
	InputLength int
	UserID      string
	Timestamp   time.Time
	Cached      bool
}

type BatchOutput struct {
	Results []AnalyzeOutput
	Count   int
	Skipped int
}

type ModelInfoOutput struct {
	ModelType string
	ModelName string
	Labels    []model.Emotion
	NumLabels int
	MaxLength int
	Backends  []Backend
}

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

type HealthOutput struct {
	Status      string
	ModelLoaded bool
	Backends    []Backend
	Error       string
}
