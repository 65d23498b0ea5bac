package usecase

import (
	"context"

	"mindcare-api/internal/analysis"
)

// ModelInfo describes the label set and the configured backends. A backend
// that can describe its model overrides the configured model name.
func (uc *implUseCase) ModelInfo(ctx context.Context) (analysis.ModelInfoOutput, error) {
	backends := uc.backends()
	if len(backends) == 0 {
		return analysis.ModelInfoOutput{}, analysis.ErrModelUnavailable
	}

	labels := uc.clf.Labels()
	out := analysis.ModelInfoOutput{
		ModelType: uc.cfg.ModelType,
		ModelName: uc.cfg.ModelName,
		Labels:    labels,
		NumLabels: len(labels),
		MaxLength: uc.cfg.MaxLength,
		Backends:  backends,
	}
	if desc := uc.clf.Describe(ctx); desc != nil && desc.ModelID != "" {
		out.ModelName = desc.ModelID
	}
	return out, nil
}

// Health is healthy when at least one backend is ready.
func (uc *implUseCase) Health(ctx context.Context) analysis.HealthOutput {
	out := analysis.HealthOutput{
		Status:      analysis.StatusHealthy,
		ModelLoaded: true,
		Backends:    uc.backends(),
	}
	if err := uc.clf.Health(ctx); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.Health: %v", err)
		out.Status = analysis.StatusDegraded
		out.ModelLoaded = false
		out.Error = err.Error()
	}
	return out
}

func (uc *implUseCase) backends() []analysis.Backend {
	providers := uc.clf.Providers()
	out := make([]analysis.Backend, 0, len(providers))
	for _, p := range providers {
		out = append(out, analysis.Backend{Name: p.Name, Model: p.Model})
	}
	return out
}
