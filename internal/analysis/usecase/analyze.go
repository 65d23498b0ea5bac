package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"mindcare-api/internal/analysis"
	"mindcare-api/pkg/classifier"
	"mindcare-api/pkg/linguistics"
)

// AnalyzeText runs the full pipeline on a single text.
func (uc *implUseCase) AnalyzeText(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	text, err := uc.validateText(input.Text)
	if err != nil {
		return analysis.AnalyzeOutput{}, err
	}

	a, cached, err := uc.analyze(ctx, text)
	if err != nil {
		return analysis.AnalyzeOutput{}, err
	}

	out := analysis.AnalyzeOutput{
		Analysis:    a,
		InputLength: utf8.RuneCountInString(input.Text),
		UserID:      input.UserID,
		Timestamp:   uc.now().UTC(),
		Cached:      cached,
	}
	uc.notifyCrisis(ctx, out)
	return out, nil
}

func (uc *implUseCase) validateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", analysis.ErrEmptyText
	}
	if uc.cfg.MaxTextLength > 0 && utf8.RuneCountInString(text) > uc.cfg.MaxTextLength {
		return "", fmt.Errorf("%w: limit is %d characters", analysis.ErrTextTooLong, uc.cfg.MaxTextLength)
	}
	return trimmed, nil
}

// analyze returns the analysis of an already validated text, from cache when possible.
func (uc *implUseCase) analyze(ctx context.Context, text string) (analysis.Analysis, bool, error) {
	key := cacheKey(text)
	if a, ok := uc.loadCached(ctx, key); ok {
		uc.metrics.AnalysisCompleted(a.Emotion.Primary.String())
		return a, true, nil
	}

	res, err := uc.clf.Classify(ctx, text)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.analyze.Classify: %v", err)
		return analysis.Analysis{}, false, mapClassifierError(err)
	}

	a := uc.compose(text, res)
	uc.storeCached(ctx, key, a)
	uc.metrics.AnalysisCompleted(a.Emotion.Primary.String())
	return a, false, nil
}

// compose derives everything except the emotion from the text itself.
func (uc *implUseCase) compose(text string, res *classifier.Result) analysis.Analysis {
	sent := uc.sentiment.PolarityScores(text)
	features := linguistics.Extract(text)
	score := wellnessScore(res.Primary, sent, features)

	return analysis.Analysis{
		Emotion: analysis.Emotion{
			Primary:       res.Primary,
			Confidence:    res.Confidence,
			Probabilities: res.Probabilities,
		},
		Sentiment:      sent,
		Features:       features,
		WellnessScore:  score,
		Interpretation: interpretation(score, res.Primary),
		Crisis:         uc.assessCrisis(text, score, features),
		Provider:       res.ProviderName,
		Model:          res.ModelName,
	}
}

func mapClassifierError(err error) error {
	switch {
	case errors.Is(err, classifier.ErrNoProvidersConfigured):
		return fmt.Errorf("%w: %v", analysis.ErrModelUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", analysis.ErrInferenceFailed, err)
	}
}

