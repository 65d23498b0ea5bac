package classifier

import (
	"context"

	"mindcare-api/internal/model"
)

// Provider defines the interface for emotion classification backends
type Provider interface {
	// Classify scores text against the backend's label set
	Classify(ctx context.Context, text string) (*Prediction, error)

	// Name returns the provider name (e.g., "tei", "lexicon")
	Name() string

	// Model returns the model being used
	Model() string
}

// HealthChecker is implemented by providers that can report readiness.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Describer is implemented by providers that can describe the served model.
type Describer interface {
	Describe(ctx context.Context) (*ModelDescription, error)
}

// Prediction is a backend's raw output
type Prediction struct {
	Scores       []Score
	Logits       bool // Scores are unnormalised logits
	ProviderName string
	ModelName    string
}

// Score is one raw label score
type Score struct {
	Label string
	Score float64
}

// Result is a normalised distribution over the emotion label set
type Result struct {
	Primary       model.Emotion
	Confidence    float64
	Probabilities map[model.Emotion]float64
	ProviderName  string
	ModelName     string
}

// ModelDescription is what a backend reports about its model
type ModelDescription struct {
	ModelID        string
	MaxInputLength int
}

// ProviderInfo identifies a configured provider
type ProviderInfo struct {
	Name  string
	Model string
}
