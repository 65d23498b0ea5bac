package classifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mindcare-api/internal/model"
	"mindcare-api/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	labels    LabelMap
	logger    log.Logger
	observer  Observer
}

// Config defines configuration for the classifier Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for the entire fallback chain
}

// Observer receives one call per provider attempt.
type Observer interface {
	ObserveInference(provider string, duration time.Duration, err error)
}

// NewManager creates a new Manager with the given providers, config, label map, and logger
func NewManager(providers []Provider, config *Config, labels LabelMap, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{RetryAttempts: 1}
	}
	return &Manager{
		providers: providers,
		config:    config,
		labels:    labels,
		logger:    logger,
	}
}

// WithObserver attaches an attempt observer (metrics).
func (m *Manager) WithObserver(o Observer) *Manager {
	m.observer = o
	return m
}

// Classify iterates through providers in priority order with fallback logic
func (m *Manager) Classify(ctx context.Context, text string) (*Result, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: global timeout exceeded: %v", ErrAllProvidersFailed, ctx.Err())
		default:
		}

		res, err := m.classifyWithRetry(ctx, provider, text)
		if err == nil {
			m.logSuccess(ctx, provider, res)
			return res, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// classifyWithRetry retries with linear backoff. Non-retryable errors stop early.
func (m *Manager) classifyWithRetry(ctx context.Context, provider Provider, text string) (*Result, error) {
	attempts := max(m.config.RetryAttempts, 1)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		res, err := m.attempt(ctx, provider, text)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if !retryable(err) || ctx.Err() != nil {
			break
		}
	}

	return nil, lastErr
}

func (m *Manager) attempt(ctx context.Context, provider Provider, text string) (*Result, error) {
	start := time.Now()
	pred, err := provider.Classify(ctx, text)
	var res *Result
	if err == nil {
		if pred != nil && pred.ProviderName == "" {
			pred.ProviderName = provider.Name()
		}
		if pred != nil && pred.ModelName == "" {
			pred.ModelName = provider.Model()
		}
		res, err = m.labels.Distribution(pred)
	}
	if m.observer != nil {
		m.observer.ObserveInference(provider.Name(), time.Since(start), err)
	}
	return res, err
}

// Health returns nil when at least one provider is ready.
// Providers without a health check count as ready.
func (m *Manager) Health(ctx context.Context) error {
	if len(m.providers) == 0 {
		return ErrNoProvidersConfigured
	}

	var errs []error
	for _, provider := range m.providers {
		hc, ok := provider.(HealthChecker)
		if !ok {
			return nil
		}
		err := hc.Health(ctx)
		if err == nil {
			return nil
		}
		errs = append(errs, &ProviderError{Provider: provider.Name(), Err: err})
	}
	return errors.Join(errs...)
}

// Describe returns the first description a provider can give, or nil.
func (m *Manager) Describe(ctx context.Context) *ModelDescription {
	for _, provider := range m.providers {
		d, ok := provider.(Describer)
		if !ok {
			continue
		}
		desc, err := d.Describe(ctx)
		if err != nil {
			m.logger.Debug(ctx, "model description unavailable", "provider", provider.Name(), "error", err.Error())
			continue
		}
		return desc
	}
	return nil
}

// Providers lists the configured providers in priority order.
func (m *Manager) Providers() []ProviderInfo {
	out := make([]ProviderInfo, 0, len(m.providers))
	for _, p := range m.providers {
		out = append(out, ProviderInfo{Name: p.Name(), Model: p.Model()})
	}
	return out
}

// Labels returns the label set in class-id order.
func (m *Manager) Labels() []model.Emotion {
	return m.labels.Labels()
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, res *Result) {
	m.logger.Debug(ctx, "classification successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"primary", res.Primary.String(),
		"confidence", res.Confidence,
	)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "classification failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
