package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"mindcare-api/internal/analysis"
)

// BatchAnalyze analyses every non-blank text concurrently and returns the
// results in input order. Blank texts are skipped. One failure fails the batch.
func (uc *implUseCase) BatchAnalyze(ctx context.Context, input analysis.BatchInput) (analysis.BatchOutput, error) {
	if uc.cfg.MaxBatchSize > 0 && len(input.Texts) > uc.cfg.MaxBatchSize {
		return analysis.BatchOutput{}, fmt.Errorf("%w: maximum %d texts per batch", analysis.ErrBatchTooLarge, uc.cfg.MaxBatchSize)
	}

	var texts []string
	for i, t := range input.Texts {
		if strings.TrimSpace(t) == "" {
			continue
		}
		if _, err := uc.validateText(t); err != nil {
			return analysis.BatchOutput{}, fmt.Errorf("item %d: %w", i, err)
		}
		texts = append(texts, t)
	}

	results := make([]analysis.AnalyzeOutput, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.BatchConcurrency)
	for i, t := range texts {
		g.Go(func() error {
			out, err := uc.AnalyzeText(gctx, analysis.AnalyzeInput{Text: t})
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.BatchAnalyze: %v", err)
		return analysis.BatchOutput{}, err
	}

	return analysis.BatchOutput{
		Results: results,
		Count:   len(results),
		Skipped: len(input.Texts) - len(texts),
	}, nil
}
