package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Classifier backends
	Model ModelConfig

	// Analysis pipeline
	Analysis AnalysisConfig
	Cache    CacheConfig
	Redis    RedisConfig

	// Edge
	RateLimit RateLimitConfig
	CORS      CORSConfig

	// Crisis alerts
	NATS NATSConfig
}

type EnvironmentConfig struct {
	Name string `validate:"oneof=development staging production"`
}

type HTTPServerConfig struct {
	Port            int    `validate:"min=1,max=65535"`
	Mode            string `validate:"oneof=debug release test"`
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string `validate:"oneof=debug info warn error"`
	Mode         string
	Encoding     string `validate:"oneof=console json"`
	ColorEnabled bool
}

// ModelConfig holds configuration for the classifier and its backends
type ModelConfig struct {
	Type              string
	Name              string
	MaxLength         int `validate:"gt=0"`
	LabelMappingsPath string

	Providers       []ProviderConfig `validate:"min=1,dive"`
	FallbackEnabled bool
	RetryAttempts   int `validate:"min=1"`
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for the entire fallback chain
}

// ProviderConfig holds configuration for a single classifier backend
type ProviderConfig struct {
	Name         string  `yaml:"name" validate:"oneof=tei lexicon"`
	Enabled      bool    `yaml:"enabled"`
	Priority     int     `yaml:"priority"`
	APIKey       string  `yaml:"api_key"`
	BaseURL      string  `yaml:"base_url,omitempty"`
	Model        string  `yaml:"model"`
	Timeout      string  `yaml:"timeout"`
	RawScores    bool    `yaml:"raw_scores"`
	NeutralPrior float64 `yaml:"neutral_prior" validate:"min=0"`
}

type AnalysisConfig struct {
	MaxTextLength    int `validate:"gt=0"`
	MaxBatchSize     int `validate:"gt=0"`
	BatchConcurrency int `validate:"gt=0"`
}

type CacheConfig struct {
	Enabled bool
	Backend string `validate:"oneof=memory redis"`
	Size    int    `validate:"gt=0"`
	TTL     time.Duration
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int `validate:"gt=0"`
	Burst             int `validate:"gt=0"`
	MaxClients        int `validate:"gt=0"`
}

type CORSConfig struct {
	AllowOrigins []string
}

type NATSConfig struct {
	Enabled       bool
	URL           string
	CrisisSubject string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = viper.BindEnv("http_server.port", "PORT")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Classifier
	cfg.Model.Type = viper.GetString("model.type")
	cfg.Model.Name = viper.GetString("model.name")
	cfg.Model.MaxLength = viper.GetInt("model.max_length")
	cfg.Model.LabelMappingsPath = viper.GetString("model.label_mappings_path")
	cfg.Model.FallbackEnabled = viper.GetBool("model.fallback_enabled")
	cfg.Model.RetryAttempts = viper.GetInt("model.retry_attempts")
	cfg.Model.RetryDelay = viper.GetDuration("model.retry_delay")
	cfg.Model.MaxTotalTimeout = viper.GetDuration("model.max_total_timeout")

	if viper.IsSet("model.providers") {
		if providersList, ok := viper.Get("model.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.Model.Providers = append(cfg.Model.Providers, ProviderConfig{
						Name:         getStringFromMap(providerMap, "name"),
						Enabled:      getBoolFromMap(providerMap, "enabled"),
						Priority:     getIntFromMap(providerMap, "priority"),
						APIKey:       expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:      expandEnvVar(getStringFromMap(providerMap, "base_url")),
						Model:        getStringFromMap(providerMap, "model"),
						Timeout:      getStringFromMap(providerMap, "timeout"),
						RawScores:    getBoolFromMap(providerMap, "raw_scores"),
						NeutralPrior: getFloatFromMap(providerMap, "neutral_prior"),
					})
				}
			}
		}
	}

	// Without any configured backend the service still answers using the offline model.
	if len(cfg.Model.Providers) == 0 {
		cfg.Model.Providers = []ProviderConfig{{Name: "lexicon", Enabled: true, Priority: 1}}
	}

	// Analysis
	cfg.Analysis.MaxTextLength = viper.GetInt("analysis.max_text_length")
	cfg.Analysis.MaxBatchSize = viper.GetInt("analysis.max_batch_size")
	cfg.Analysis.BatchConcurrency = viper.GetInt("analysis.batch_concurrency")

	cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	cfg.Cache.Backend = viper.GetString("cache.backend")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.KeyPrefix = viper.GetString("redis.key_prefix")

	// Edge
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	// Split origins since viper might not parse array seamlessly from env
	cfg.CORS.AllowOrigins = splitList(viper.GetString("cors.allow_origins"))
	if len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS.AllowOrigins = viper.GetStringSlice("cors.allow_origins")
	}

	cfg.NATS.Enabled = viper.GetBool("nats.enabled")
	cfg.NATS.URL = viper.GetString("nats.url")
	cfg.NATS.CrisisSubject = viper.GetString("nats.crisis_subject")

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Classifier defaults
	viper.SetDefault("model.type", "DistilBERT")
	viper.SetDefault("model.name", "mindcare-emotion-distilbert")
	viper.SetDefault("model.max_length", 128)
	viper.SetDefault("model.fallback_enabled", true)
	viper.SetDefault("model.retry_attempts", 2)
	viper.SetDefault("model.retry_delay", "200ms")
	viper.SetDefault("model.max_total_timeout", "15s")

	viper.SetDefault("analysis.max_text_length", 5000)
	viper.SetDefault("analysis.max_batch_size", 50)
	viper.SetDefault("analysis.batch_concurrency", 8)

	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.size", 1024)
	viper.SetDefault("cache.ttl", "10m")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.key_prefix", "mindcare:analysis:")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_minute", 120)
	viper.SetDefault("rate_limit.burst", 20)
	viper.SetDefault("rate_limit.max_clients", 10000)

	viper.SetDefault("cors.allow_origins", []string{"*"})

	viper.SetDefault("nats.enabled", false)
	viper.SetDefault("nats.url", "nats://localhost:4222")
	viper.SetDefault("nats.crisis_subject", "mindcare.crisis")
}

// Validate checks struct tags and the cross-field rules tags cannot express.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := validateProviders(cfg.Model.Providers); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.NATS.Enabled && (cfg.NATS.URL == "" || cfg.NATS.CrisisSubject == "") {
		return fmt.Errorf("invalid config: nats url and crisis_subject are required when nats is enabled")
	}
	if cfg.Cache.Enabled && cfg.Cache.Backend == "redis" && cfg.Redis.Addr == "" {
		return fmt.Errorf("invalid config: redis addr is required for the redis cache backend")
	}
	return nil
}

// validateProviders validates the classifier backend list
func validateProviders(providers []ProviderConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for _, provider := range providers {
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Name == "tei" && provider.BaseURL == "" {
			return fmt.Errorf("provider %s: base_url is required", provider.Name)
		}
		if provider.Timeout != "" {
			if _, err := time.ParseDuration(provider.Timeout); err != nil {
				return fmt.Errorf("provider %s: invalid timeout %q", provider.Name, provider.Timeout)
			}
		}

		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled model providers")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

func getFloatFromMap(m map[string]interface{}, key string) float64 {
	if val, ok := m[key]; ok {
		switch v := val.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		}
	}
	return 0
}
