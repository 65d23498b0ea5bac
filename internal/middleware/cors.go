package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured origins; "*" or an empty list allows all.
func (mw Middleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID, HeaderProcessTime},
		MaxAge:        12 * time.Hour,
	}

	if allowAll(mw.cfg.AllowOrigins) {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = mw.cfg.AllowOrigins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

// CORSAllowAll is the policy reported when every origin is allowed.
const CORSAllowAll = "*"

// CORSPolicy describes the allowed origins, CORSAllowAll or a comma-separated list.
func (mw Middleware) CORSPolicy() string {
	if allowAll(mw.cfg.AllowOrigins) {
		return CORSAllowAll
	}
	return strings.Join(mw.cfg.AllowOrigins, ",")
}

func allowAll(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
