package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcare-api/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type httpObservation struct {
	method, route string
	status        int
}

type fakeRecorder struct {
	mu  sync.Mutex
	obs []httpObservation
}

func (f *fakeRecorder) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.obs = append(f.obs, httpObservation{method, route, status})
}

func newTestMiddleware(cfg Config, rec HTTPRecorder) Middleware {
	return New(log.NewNop(), cfg, rec)
}

func TestRequestID_Generated(t *testing.T) {
	mw := newTestMiddleware(Config{}, nil)
	r := gin.New()
	r.Use(mw.RequestID())

	var fromGin, fromCtx string
	r.GET("/test", func(c *gin.Context) {
		fromGin = c.GetString(ContextRequestID)
		fromCtx = log.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	id := w.Header().Get(HeaderRequestID)
	require.NotEmpty(t, id)
	assert.Equal(t, id, fromGin)
	assert.Equal(t, id, fromCtx)
}

func TestRequestID_Propagated(t *testing.T) {
	mw := newTestMiddleware(Config{}, nil)
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestLogger_SetsProcessTime(t *testing.T) {
	mw := newTestMiddleware(Config{}, nil)
	r := gin.New()
	r.Use(mw.Logger())
	r.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderProcessTime))
}

func TestRecovery(t *testing.T) {
	mw := newTestMiddleware(Config{}, nil)
	r := gin.New()
	r.Use(mw.Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{name: "allow all", origins: []string{"*"}, origin: "http://client.local", want: "*"},
		{name: "empty allows all", origins: nil, origin: "http://client.local", want: "*"},
		{name: "listed origin", origins: []string{"http://app.local"}, origin: "http://app.local", want: "http://app.local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := newTestMiddleware(Config{AllowOrigins: tt.origins}, nil)
			r := gin.New()
			r.Use(mw.CORS())
			r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_RejectsUnlistedOrigin(t *testing.T) {
	mw := newTestMiddleware(Config{AllowOrigins: []string{"http://app.local"}}, nil)
	r := gin.New()
	r.Use(mw.CORS())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://evil.local")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetrics_RecordsRoute(t *testing.T) {
	rec := &fakeRecorder{}
	mw := newTestMiddleware(Config{}, rec)
	r := gin.New()
	r.Use(mw.Metrics())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Len(t, rec.obs, 2)
	assert.Equal(t, httpObservation{"GET", "/items/:id", http.StatusAccepted}, rec.obs[0])
	assert.Equal(t, httpObservation{"GET", "unmatched", http.StatusNotFound}, rec.obs[1])
}

func TestRateLimit(t *testing.T) {
	mw := newTestMiddleware(Config{
		RateLimitEnabled:  true,
		RequestsPerMinute: 60,
		Burst:             2,
		MaxClients:        10,
	}, nil)
	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := newTestMiddleware(Config{RequestsPerMinute: 1, Burst: 1}, nil)
	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	for range 5 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestNewRateLimiter_Defaults(t *testing.T) {
	rl := newRateLimiter(100, 0, 0)
	assert.Equal(t, 10, rl.burst)
	assert.True(t, rl.Allow("a"))
}

func TestCORSPolicy(t *testing.T) {
	assert.Equal(t, CORSAllowAll, newTestMiddleware(Config{}, nil).CORSPolicy())
	assert.Equal(t, CORSAllowAll, newTestMiddleware(Config{AllowOrigins: []string{"http://a.local", "*"}}, nil).CORSPolicy())
	assert.Equal(t, "http://a.local,http://b.local",
		newTestMiddleware(Config{AllowOrigins: []string{"http://a.local", "http://b.local"}}, nil).CORSPolicy())
}
