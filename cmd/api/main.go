package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"mindcare-api/config"
	_ "mindcare-api/docs" // Swagger docs
	analysisHTTP "mindcare-api/internal/analysis/delivery/http"
	analysisUC "mindcare-api/internal/analysis/usecase"
	"mindcare-api/internal/httpserver"
	"mindcare-api/internal/middleware"
	"mindcare-api/pkg/alert"
	"mindcare-api/pkg/cache"
	"mindcare-api/pkg/classifier"
	"mindcare-api/pkg/log"
	"mindcare-api/pkg/metrics"
)

// @title       MindCare Text Analysis API
// @description Emotion classification, sentiment, wellness scoring and crisis detection for free text.
// @version     1.0.0
// @host        localhost:8000
// @schemes     http
func main() {
	// 0. Optional .env for local runs
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting MindCare text analysis API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	m := metrics.New()

	// 4. Classifier
	labels := classifier.DefaultLabelMap()
	if cfg.Model.LabelMappingsPath != "" {
		labels, err = classifier.LoadLabelMap(cfg.Model.LabelMappingsPath)
		if err != nil {
			logger.Errorf(ctx, "Failed to load label mappings from %s: %v", cfg.Model.LabelMappingsPath, err)
			return
		}
		logger.Infof(ctx, "Label mappings loaded from %s", cfg.Model.LabelMappingsPath)
	}

	providers, initErrs, err := classifier.InitializeProviders(&cfg.Model)
	for _, e := range initErrs {
		logger.Warnf(ctx, "Classifier provider skipped: %v", e)
	}
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize classifier providers: %v", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "Classifier provider ready: %s (%s)", p.Name(), p.Model())
	}

	manager := classifier.NewManager(providers, &classifier.Config{
		FallbackEnabled: cfg.Model.FallbackEnabled,
		RetryAttempts:   cfg.Model.RetryAttempts,
		RetryDelay:      cfg.Model.RetryDelay,
		MaxTotalTimeout: cfg.Model.MaxTotalTimeout,
	}, labels, logger).WithObserver(m)

	// 5. Result cache (optional)
	var resultCache cache.Cache
	readiness := map[string]httpserver.Pinger{}
	if cfg.Cache.Enabled {
		switch cfg.Cache.Backend {
		case "redis":
			rc := cache.NewRedis(cache.RedisConfig{
				Addr:      cfg.Redis.Addr,
				Password:  cfg.Redis.Password,
				DB:        cfg.Redis.DB,
				KeyPrefix: cfg.Redis.KeyPrefix,
				TTL:       cfg.Cache.TTL,
			})
			if pingErr := rc.Ping(ctx); pingErr != nil {
				logger.Warnf(ctx, "Redis not reachable at %s, results will not be cached until it is: %v", cfg.Redis.Addr, pingErr)
			}
			resultCache = rc
			readiness["redis"] = rc
		default:
			resultCache = cache.NewMemory(cfg.Cache.Size, cfg.Cache.TTL)
		}
		defer resultCache.Close()
		logger.Infof(ctx, "Result cache enabled: %s (ttl %s)", cfg.Cache.Backend, cfg.Cache.TTL)
	}

	// 6. Crisis alerts (optional)
	var publisher alert.Publisher = alert.Noop{}
	if cfg.NATS.Enabled {
		np, natsErr := alert.NewNATS(cfg.NATS.URL, cfg.NATS.CrisisSubject, logger)
		if natsErr != nil {
			logger.Warnf(ctx, "NATS not available, crisis alerts disabled: %v", natsErr)
		} else {
			publisher = np
			logger.Infof(ctx, "Crisis alerts published on %s", cfg.NATS.CrisisSubject)
		}
	}
	defer publisher.Close()

	// 7. Analysis domain
	uc := analysisUC.New(logger, manager, analysisUC.Config{
		MaxTextLength:    cfg.Analysis.MaxTextLength,
		MaxBatchSize:     cfg.Analysis.MaxBatchSize,
		BatchConcurrency: cfg.Analysis.BatchConcurrency,
		ModelType:        cfg.Model.Type,
		ModelName:        cfg.Model.Name,
		MaxLength:        cfg.Model.MaxLength,
	}, analysisUC.Deps{
		Cache:     resultCache,
		Publisher: publisher,
		Metrics:   m,
	})
	handler := analysisHTTP.New(logger, uc)

	// 8. HTTP Server
	mw := middleware.New(logger, middleware.Config{
		AllowOrigins:      cfg.CORS.AllowOrigins,
		RateLimitEnabled:  cfg.RateLimit.Enabled,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		Burst:             cfg.RateLimit.Burst,
		MaxClients:        cfg.RateLimit.MaxClients,
	}, m)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AnalysisHandler: handler,
		Middleware:      mw,
		MetricsHandler:  m.Handler(),
		Readiness:       readiness,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
