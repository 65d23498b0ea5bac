package analysis

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Text analysis
	AnalyzeText(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
	BatchAnalyze(ctx context.Context, input BatchInput) (BatchOutput, error)

	// Model status
	ModelInfo(ctx context.Context) (ModelInfoOutput, error)
	Health(ctx context.Context) HealthOutput
}
