package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5/middleware"
)

// NewRequestWithRequestID creates an HTTP request carrying a chi request id,
// as if it had passed through middleware.RequestID.
//
// Example:
//
//	req := testutil.NewRequestWithRequestID(http.MethodGet, "/api/data", "req-123")
func NewRequestWithRequestID(method, path, requestID string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, requestID))
}

// ContextWithRequestID returns ctx carrying a chi request id.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, middleware.RequestIDKey, requestID)
}
