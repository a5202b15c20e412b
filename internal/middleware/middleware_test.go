package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"specialist-router/config"
	"specialist-router/pkg/log"
)

func newEngine(m Middleware, mws ...gin.HandlerFunc) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var traceID string
	r := gin.New()
	r.Use(mws...)
	r.GET("/ping", func(c *gin.Context) {
		traceID = log.TraceID(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})
	return r, &traceID
}

func TestRateLimit(t *testing.T) {
	t.Run("blocks after burst", func(t *testing.T) {
		m := New(log.NewNop(), config.RateLimitConfig{Enabled: true, RequestsPerMin: 20, MaxTrackedUsers: 10})
		r, _ := newEngine(m, m.RateLimit())

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set(HeaderUserID, "u1")
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		// burst is 20/10 = 2
		if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
			t.Errorf("unexpected status codes: %v", codes)
		}
	})

	t.Run("callers are tracked separately", func(t *testing.T) {
		m := New(log.NewNop(), config.RateLimitConfig{Enabled: true, RequestsPerMin: 10})
		r, _ := newEngine(m, m.RateLimit())

		for _, user := range []string{"a", "b"} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?userId="+user, nil))
			if w.Code != http.StatusOK {
				t.Errorf("user %s: expected 200, got %d", user, w.Code)
			}
		}
	})

	t.Run("disabled passes everything", func(t *testing.T) {
		m := New(log.NewNop(), config.RateLimitConfig{Enabled: false, RequestsPerMin: 1})
		r, _ := newEngine(m, m.RateLimit())

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})
}

func TestRequestID(t *testing.T) {
	m := New(log.NewNop(), config.RateLimitConfig{})
	r, traceID := newEngine(m, m.RequestID())

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		got := w.Header().Get(HeaderRequestID)
		if len(got) != 36 {
			t.Errorf("expected uuid request id, got %q", got)
		}
		if *traceID != got {
			t.Errorf("trace id %q does not match header %q", *traceID, got)
		}
	})

	t.Run("keeps caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		r.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderRequestID); got != "abc-123" {
			t.Errorf("expected abc-123, got %q", got)
		}
	})
}

func TestCORS(t *testing.T) {
	m := New(log.NewNop(), config.RateLimitConfig{})
	r, _ := newEngine(m, m.CORS())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ping", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight: expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing Access-Control-Allow-Origin")
	}
}
