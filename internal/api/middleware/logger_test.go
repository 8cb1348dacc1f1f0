package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/api/middleware"
)

func TestLogger(t *testing.T) {
	t.Run("logs method, path and status", func(t *testing.T) {
		var buf bytes.Buffer
		log := zerolog.New(&buf)

		handler := middleware.NewLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/data", nil))

		var entry map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("Failed to decode log line %q: %v", buf.String(), err)
		}
		if entry["method"] != "GET" || entry["path"] != "/api/data" {
			t.Errorf("Unexpected log entry: %v", entry)
		}
		if entry["status"] != float64(http.StatusTeapot) {
			t.Errorf("Expected status 418, got %v", entry["status"])
		}
	})

	t.Run("attaches request-scoped logger to context", func(t *testing.T) {
		var buf bytes.Buffer
		log := zerolog.New(&buf)

		handler := chimiddleware.RequestID(middleware.NewLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zerolog.Ctx(r.Context()).Warn().Msg("inside handler")
			w.WriteHeader(http.StatusOK)
		})))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		if len(lines) != 2 {
			t.Fatalf("Expected 2 log lines, got %d: %s", len(lines), buf.String())
		}

		var inner map[string]interface{}
		if err := json.Unmarshal(lines[0], &inner); err != nil {
			t.Fatalf("Failed to decode log line: %v", err)
		}
		if id, _ := inner["request_id"].(string); id == "" {
			t.Errorf("Expected request_id on handler log line, got %v", inner)
		}
	})
}
