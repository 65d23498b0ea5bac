package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, 8000, cfg.HTTPServer.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ShutdownTimeout)
	assert.Equal(t, 128, cfg.Model.MaxLength)
	assert.Equal(t, 5000, cfg.Analysis.MaxTextLength)
	assert.Equal(t, 50, cfg.Analysis.MaxBatchSize)
	assert.Equal(t, 15*time.Second, cfg.Model.MaxTotalTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.NotEmpty(t, cfg.Model.Providers)
}

func TestLoad_PortEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("PORT", "9123")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9123, cfg.HTTPServer.Port)
}

func TestLoad_ListFromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
}

func validConfig() *Config {
	return &Config{
		Environment: EnvironmentConfig{Name: "development"},
		HTTPServer:  HTTPServerConfig{Port: 8000, Mode: "debug"},
		Logger:      LoggerConfig{Level: "info", Encoding: "json"},
		Model: ModelConfig{
			MaxLength:     128,
			RetryAttempts: 1,
			Providers:     []ProviderConfig{{Name: "lexicon", Enabled: true, Priority: 1}},
		},
		Analysis:  AnalysisConfig{MaxTextLength: 5000, MaxBatchSize: 50, BatchConcurrency: 4},
		Cache:     CacheConfig{Backend: "memory", Size: 16},
		RateLimit: RateLimitConfig{RequestsPerMinute: 60, Burst: 5, MaxClients: 100},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.HTTPServer.Port = 0 }, wantErr: true},
		{name: "unknown provider", mutate: func(c *Config) { c.Model.Providers[0].Name = "gpt" }, wantErr: true},
		{name: "tei without base url", mutate: func(c *Config) { c.Model.Providers[0].Name = "tei" }, wantErr: true},
		{name: "disabled tei without base url", mutate: func(c *Config) {
			c.Model.Providers = append(c.Model.Providers, ProviderConfig{Name: "tei", Priority: 2})
		}},
		{name: "duplicate priority", mutate: func(c *Config) {
			c.Model.Providers = append(c.Model.Providers, ProviderConfig{Name: "tei", Enabled: true, Priority: 1, BaseURL: "http://tei"})
		}, wantErr: true},
		{name: "no enabled providers", mutate: func(c *Config) { c.Model.Providers[0].Enabled = false }, wantErr: true},
		{name: "bad provider timeout", mutate: func(c *Config) { c.Model.Providers[0].Timeout = "soon" }, wantErr: true},
		{name: "nats without subject", mutate: func(c *Config) { c.NATS = NATSConfig{Enabled: true, URL: "nats://x"} }, wantErr: true},
		{name: "unknown cache backend", mutate: func(c *Config) { c.Cache.Backend = "disk" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("MINDCARE_TEST_KEY", "secret")

	assert.Equal(t, "secret", expandEnvVar("${MINDCARE_TEST_KEY}"))
	assert.Equal(t, "", expandEnvVar("${MINDCARE_TEST_MISSING}"))
	assert.Equal(t, "plain", expandEnvVar("plain"))
}
