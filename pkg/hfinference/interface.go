package hfinference

import "context"

// IClient defines the text-classification inference API.
// Implementations are safe for concurrent use.
type IClient interface {
	Predict(ctx context.Context, text string) ([]LabelScore, error)
	Info(ctx context.Context) (*Info, error)
	Health(ctx context.Context) error
	Model() string
}
