package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

const HeaderProcessTime = "X-Process-Time"

// Logger logs one line per request and reports the handler time in
// X-Process-Time (seconds). 5xx are errors, 4xx warnings.
func (mw Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Writer = &timedWriter{ResponseWriter: c.Writer, start: start}
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
			"size", c.Writer.Size(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			mw.l.Error(ctx, append([]any{"request failed"}, fields...)...)
		case status >= 400:
			mw.l.Warn(ctx, append([]any{"request rejected"}, fields...)...)
		default:
			mw.l.Info(ctx, append([]any{"request completed"}, fields...)...)
		}
	}
}

// timedWriter stamps X-Process-Time just before the headers are flushed.
type timedWriter struct {
	gin.ResponseWriter
	start   time.Time
	stamped bool
}

func (w *timedWriter) stamp() {
	if w.stamped {
		return
	}
	w.stamped = true
	w.Header().Set(HeaderProcessTime, fmt.Sprintf("%.4f", time.Since(w.start).Seconds()))
}

func (w *timedWriter) WriteHeader(code int) {
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) WriteHeaderNow() {
	w.stamp()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *timedWriter) Write(data []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(data)
}

func (w *timedWriter) WriteString(s string) (int, error) {
	w.stamp()
	return w.ResponseWriter.WriteString(s)
}
