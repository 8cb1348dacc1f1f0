package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/config"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/testutil"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/upstream"
)

func newTestDashboardService(cfg config.UpstreamConfig) *service.DashboardService {
	return service.NewDashboardService(cfg, upstream.NewClient(cfg, zerolog.Nop()), zerolog.Nop())
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	return body["error"]
}

func TestDashboardHandler_Data(t *testing.T) {
	t.Run("returns aggregated view", func(t *testing.T) {
		mock := testutil.NewMockUpstream(t)
		handler := NewDashboardHandler(newTestDashboardService(mock.Config()))

		req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
		w := httptest.NewRecorder()

		handler.Data(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
			t.Errorf("Expected UTF-8 JSON content type, got '%s'", ct)
		}

		var view model.AggregatedView
		if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(view.StockHoldings) != 2 {
			t.Errorf("Expected 2 stock holdings, got %d", len(view.StockHoldings))
		}
		if len(view.CurrencyHoldings) != 3 {
			t.Errorf("Expected 3 currency holdings, got %d", len(view.CurrencyHoldings))
		}
		if len(view.Chart) != 3 {
			t.Errorf("Expected 3 chart points, got %d", len(view.Chart))
		}
		if view.Chart[1].NetPerformanceInPercentage != 0.012345678 {
			t.Errorf("Expected unrounded chart value, got %v", view.Chart[1].NetPerformanceInPercentage)
		}
	})

	t.Run("forwards request id to every upstream call", func(t *testing.T) {
		mock := testutil.NewMockUpstream(t)
		handler := NewDashboardHandler(newTestDashboardService(mock.Config()))

		req := testutil.NewRequestWithRequestID(http.MethodGet, "/api/data", "req-123")
		w := httptest.NewRecorder()

		handler.Data(w, req)

		ids := mock.RequestIDs()
		if len(ids) != 3 {
			t.Fatalf("Expected 3 upstream calls, got %d", len(ids))
		}
		for _, id := range ids {
			if id != "req-123" {
				t.Errorf("Expected request id 'req-123', got '%s'", id)
			}
		}
	})

	t.Run("empty portfolio encodes empty arrays", func(t *testing.T) {
		mock := testutil.NewMockUpstream(t)
		mock.Holdings = nil
		mock.Performance = nil
		handler := NewDashboardHandler(newTestDashboardService(mock.Config()))

		w := httptest.NewRecorder()
		handler.Data(w, httptest.NewRequest(http.MethodGet, "/api/data", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		want := "{\"stockHoldings\":[],\"currencyHoldings\":[],\"chart\":[]}\n"
		if got := w.Body.String(); got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	})

	t.Run("missing configuration returns 500", func(t *testing.T) {
		handler := NewDashboardHandler(newTestDashboardService(config.UpstreamConfig{}))

		w := httptest.NewRecorder()
		handler.Data(w, httptest.NewRequest(http.MethodGet, "/api/data", nil))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", w.Code)
		}
		if msg := decodeError(t, w); msg != "Missing environment variables" {
			t.Errorf("Expected 'Missing environment variables', got '%s'", msg)
		}
	})

	t.Run("auth failure returns 500 without upstream detail", func(t *testing.T) {
		mock := testutil.NewMockUpstream(t)
		mock.AuthStatus = http.StatusForbidden
		handler := NewDashboardHandler(newTestDashboardService(mock.Config()))

		w := httptest.NewRecorder()
		handler.Data(w, httptest.NewRequest(http.MethodGet, "/api/data", nil))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", w.Code)
		}
		if msg := decodeError(t, w); msg != "Failed to fetch auth token" {
			t.Errorf("Expected 'Failed to fetch auth token', got '%s'", msg)
		}
	})

	t.Run("missing auth token returns 500", func(t *testing.T) {
		mock := testutil.NewMockUpstream(t)
		mock.AuthToken = ""
		handler := NewDashboardHandler(newTestDashboardService(mock.Config()))

		w := httptest.NewRecorder()
		handler.Data(w, httptest.NewRequest(http.MethodGet, "/api/data", nil))

		if msg := decodeError(t, w); msg != "Failed to fetch auth token" {
			t.Errorf("Expected 'Failed to fetch auth token', got '%s'", msg)
		}
	})

	t.Run("data fetch failure returns generic 500", func(t *testing.T) {
		mock := testutil.NewMockUpstream(t)
		mock.PerformanceStatus = http.StatusBadGateway
		handler := NewDashboardHandler(newTestDashboardService(mock.Config()))

		w := httptest.NewRecorder()
		handler.Data(w, httptest.NewRequest(http.MethodGet, "/api/data", nil))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", w.Code)
		}
		if msg := decodeError(t, w); msg != "Internal server error" {
			t.Errorf("Expected 'Internal server error', got '%s'", msg)
		}
	})
}
