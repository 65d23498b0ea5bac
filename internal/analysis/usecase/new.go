package usecase

import (
	"context"
	"time"

	"mindcare-api/internal/model"
	"mindcare-api/pkg/alert"
	"mindcare-api/pkg/cache"
	"mindcare-api/pkg/classifier"
	"mindcare-api/pkg/log"
	"mindcare-api/pkg/sentiment"
)

// emotionClassifier is satisfied by *classifier.Manager.
type emotionClassifier interface {
	Classify(ctx context.Context, text string) (*classifier.Result, error)
	Health(ctx context.Context) error
	Describe(ctx context.Context) *classifier.ModelDescription
	Providers() []classifier.ProviderInfo
	Labels() []model.Emotion
}

// recorder is satisfied by *metrics.Metrics.
type recorder interface {
	AnalysisCompleted(emotion string)
	CrisisDetected(severity string)
	CacheLookup(hit bool)
	AlertFailed()
}

type nopRecorder struct{}

func (nopRecorder) AnalysisCompleted(string) {}
func (nopRecorder) CrisisDetected(string)    {}
func (nopRecorder) CacheLookup(bool)         {}
func (nopRecorder) AlertFailed()             {}

// Config holds the use case limits and the model facts it reports.
type Config struct {
	MaxTextLength    int
	MaxBatchSize     int
	BatchConcurrency int

	ModelType string
	ModelName string
	MaxLength int
}

// Deps are the optional collaborators. Nil fields are replaced by no-ops.
type Deps struct {
	Cache     cache.Cache
	Publisher alert.Publisher
	Metrics   recorder
}

// implUseCase is the private implementation of analysis.UseCase.
type implUseCase struct {
	clf       emotionClassifier
	sentiment *sentiment.Analyzer
	cache     cache.Cache
	publisher alert.Publisher
	metrics   recorder
	cfg       Config
	l         log.Logger
	now       func() time.Time
}

// New creates a new analysis UseCase implementation.
func New(l log.Logger, clf emotionClassifier, cfg Config, deps Deps) *implUseCase {
	uc := &implUseCase{
		clf:       clf,
		sentiment: sentiment.New(),
		cache:     deps.Cache,
		publisher: deps.Publisher,
		metrics:   deps.Metrics,
		cfg:       cfg,
		l:         l,
		now:       time.Now,
	}
	if uc.publisher == nil {
		uc.publisher = alert.Noop{}
	}
	if uc.metrics == nil {
		uc.metrics = nopRecorder{}
	}
	if uc.cfg.BatchConcurrency <= 0 {
		uc.cfg.BatchConcurrency = 1
	}
	return uc
}
