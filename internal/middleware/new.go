package middleware

import (
	"time"

	"mindcare-api/pkg/log"
)

// HTTPRecorder is satisfied by *metrics.Metrics.
type HTTPRecorder interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Config holds the edge settings the middlewares need.
type Config struct {
	AllowOrigins []string

	RateLimitEnabled  bool
	RequestsPerMinute int
	Burst             int
	MaxClients        int
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	metrics HTTPRecorder
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config, metrics HTTPRecorder) Middleware {
	mw := Middleware{
		l:       l,
		cfg:     cfg,
		metrics: metrics,
	}
	if cfg.RateLimitEnabled {
		mw.limiter = newRateLimiter(cfg.RequestsPerMinute, cfg.Burst, cfg.MaxClients)
	}
	return mw
}
