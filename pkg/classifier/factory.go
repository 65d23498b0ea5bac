package classifier

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"mindcare-api/config"
	"mindcare-api/pkg/hfinference"
)

// InitializeProviders creates Provider instances from config.ModelConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Skips providers that fail to initialize instead of failing the entire service.
func InitializeProviders(cfg *config.ModelConfig) ([]Provider, []error, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("model config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}
	if len(enabledProviders) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []error
	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Errorf("provider %s (priority %d): %w", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		msgs := make([]string, 0, len(initErrors))
		for _, e := range initErrors {
			msgs = append(msgs, e.Error())
		}
		return nil, initErrors, fmt.Errorf("no providers successfully initialized: %s", strings.Join(msgs, "; "))
	}

	return providers, initErrors, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	switch cfg.Name {
	case "tei":
		var timeout time.Duration
		if cfg.Timeout != "" {
			d, err := time.ParseDuration(cfg.Timeout)
			if err != nil {
				return nil, fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
			}
			timeout = d
		}
		client, err := hfinference.New(hfinference.Config{
			BaseURL:   cfg.BaseURL,
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			Timeout:   timeout,
			RawScores: cfg.RawScores,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create tei client: %w", err)
		}
		return NewTEIAdapter(client, cfg.RawScores), nil

	case "lexicon":
		return NewLexiconProvider(cfg.Model, cfg.NeutralPrior)

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
