package classifier

import (
	"context"

	"mindcare-api/pkg/hfinference"
)

// TEIAdapter adapts an inference-server client to the Provider interface
type TEIAdapter struct {
	client    hfinference.IClient
	rawScores bool
}

// NewTEIAdapter creates a new TEI adapter. rawScores must match what the
// client asks the server for.
func NewTEIAdapter(client hfinference.IClient, rawScores bool) *TEIAdapter {
	return &TEIAdapter{client: client, rawScores: rawScores}
}

// Classify implements Provider interface
func (a *TEIAdapter) Classify(ctx context.Context, text string) (*Prediction, error) {
	scores, err := a.client.Predict(ctx, text)
	if err != nil {
		return nil, err
	}

	pred := &Prediction{
		Scores:       make([]Score, 0, len(scores)),
		Logits:       a.rawScores,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
	}
	for _, s := range scores {
		pred.Scores = append(pred.Scores, Score{Label: s.Label, Score: s.Score})
	}
	return pred, nil
}

// Health implements HealthChecker interface
func (a *TEIAdapter) Health(ctx context.Context) error {
	return a.client.Health(ctx)
}

// Describe implements Describer interface
func (a *TEIAdapter) Describe(ctx context.Context) (*ModelDescription, error) {
	info, err := a.client.Info(ctx)
	if err != nil {
		return nil, err
	}
	return &ModelDescription{ModelID: info.ModelID, MaxInputLength: info.MaxInputLength}, nil
}

// Name implements Provider interface
func (a *TEIAdapter) Name() string {
	return "tei"
}

// Model implements Provider interface
func (a *TEIAdapter) Model() string {
	return a.client.Model()
}
