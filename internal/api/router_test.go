package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/config"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/testutil"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/upstream"
)

func newTestRouter(t *testing.T, rateLimit config.RateLimitConfig) (http.Handler, *testutil.MockUpstream) {
	t.Helper()
	mock := testutil.NewMockUpstream(t)
	cfg := &config.Config{
		Upstream:  mock.Config(),
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		RateLimit: rateLimit,
	}
	svc := service.NewDashboardService(cfg.Upstream, upstream.NewClient(cfg.Upstream, zerolog.Nop()), zerolog.Nop())
	return NewRouter(svc, cfg, zerolog.Nop()), mock
}

func TestNewRouter(t *testing.T) {
	t.Run("routes data endpoint", func(t *testing.T) {
		router, mock := newTestRouter(t, config.RateLimitConfig{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/data", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		ids := mock.RequestIDs()
		if len(ids) != 3 {
			t.Fatalf("Expected 3 upstream calls, got %d", len(ids))
		}
		for _, id := range ids {
			if id != ids[0] || id == "" {
				t.Errorf("Expected the inbound request id on every upstream call, got %v", ids)
				break
			}
		}
	})

	t.Run("routes system endpoints", func(t *testing.T) {
		router, _ := newTestRouter(t, config.RateLimitConfig{})

		for _, path := range []string{"/api/system/health", "/api/system/version"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", path, w.Code)
			}
		}
	})

	t.Run("rejects other methods on data endpoint", func(t *testing.T) {
		router, mock := newTestRouter(t, config.RateLimitConfig{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/data", nil))

		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("Expected 405, got %d", w.Code)
		}
		if mock.AuthCalls.Load() != 0 {
			t.Error("Expected no upstream call")
		}
	})

	t.Run("rate limits data endpoint only", func(t *testing.T) {
		router, _ := newTestRouter(t, config.RateLimitConfig{RequestsPerSecond: 1.0 / 3600, Burst: 1})

		first := httptest.NewRecorder()
		router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/data", nil))
		second := httptest.NewRecorder()
		router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/data", nil))
		health := httptest.NewRecorder()
		router.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/api/system/health", nil))

		if first.Code != http.StatusOK {
			t.Errorf("Expected first request 200, got %d", first.Code)
		}
		if second.Code != http.StatusTooManyRequests {
			t.Errorf("Expected second request 429, got %d", second.Code)
		}
		if health.Code != http.StatusOK {
			t.Errorf("Expected health 200, got %d", health.Code)
		}
	})

	t.Run("answers CORS preflight for allowed origin", func(t *testing.T) {
		router, _ := newTestRouter(t, config.RateLimitConfig{})

		req := httptest.NewRequest(http.MethodOptions, "/api/data", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Expected allowed origin header, got '%s'", got)
		}
	})
}
