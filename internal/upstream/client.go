// Package upstream talks to the portfolio services behind the dashboard:
// an auth endpoint that exchanges the static access token for a short-lived
// auth token, and the holdings and performance endpoints that require it.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/config"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/model"
)

// maxLoggedBody caps how much of an error response body is written to the log.
const maxLoggedBody = 512

// PortfolioClient defines the calls the dashboard makes to the portfolio services.
// This interface enables dependency injection and testing with mock implementations.
type PortfolioClient interface {
	Authenticate(ctx context.Context) (string, error)
	FetchHoldings(ctx context.Context, authToken string) ([]model.HoldingRecord, error)
	FetchPerformance(ctx context.Context, authToken string) ([]model.PerformancePoint, error)
}

// Client is the HTTP implementation of PortfolioClient.
// It holds no state between calls besides the underlying http.Client.
type Client struct {
	httpClient *http.Client
	cfg        config.UpstreamConfig
	log        zerolog.Logger
}

// NewClient creates a new upstream client for the configured endpoints.
// A zero cfg.Timeout leaves requests bounded only by their context.
func NewClient(cfg config.UpstreamConfig, log zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		log:        log.With().Str("component", "upstream").Logger(),
	}
}

// Authenticate exchanges the static access token for an auth token.
//
// Returns:
//   - string: The auth token to send as a Bearer credential
//   - error: apperrors.ErrAuthFailed on a non-success status,
//     apperrors.ErrMissingAuthToken if the response carries no token,
//     or the transport/decode error
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	payload, err := json.Marshal(AuthRequest{AccessToken: c.cfg.AccessToken})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AuthEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID(ctx))

	data, status, err := c.do(req)
	if err != nil {
		return "", err
	}
	if !isSuccess(status) {
		c.logFailure("auth", status, data)
		return "", fmt.Errorf("%w: status code %d", apperrors.ErrAuthFailed, status)
	}

	var response AuthResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return "", fmt.Errorf("failed to decode auth response: %w", err)
	}
	if response.AuthToken == "" {
		return "", apperrors.ErrMissingAuthToken
	}

	return response.AuthToken, nil
}

// FetchHoldings retrieves the raw holdings records.
// A response without a holdings field yields an empty slice.
func (c *Client) FetchHoldings(ctx context.Context, authToken string) ([]model.HoldingRecord, error) {
	var response HoldingsResponse
	if err := c.getJSON(ctx, "holdings", c.cfg.HoldingsEndpoint, authToken, &response); err != nil {
		return nil, err
	}
	if response.Holdings == nil {
		return []model.HoldingRecord{}, nil
	}
	return response.Holdings, nil
}

// FetchPerformance retrieves the raw performance series.
// A response without a chart field yields an empty slice.
func (c *Client) FetchPerformance(ctx context.Context, authToken string) ([]model.PerformancePoint, error) {
	var response PerformanceResponse
	if err := c.getJSON(ctx, "performance", c.cfg.PerformanceEndpoint, authToken, &response); err != nil {
		return nil, err
	}
	if response.Chart == nil {
		return []model.PerformancePoint{}, nil
	}
	return response.Chart, nil
}

// getJSON performs an authenticated GET and decodes the UTF-8 JSON body into out.
func (c *Client) getJSON(ctx context.Context, resource, url, authToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+authToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID(ctx))

	data, status, err := c.do(req)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		c.logFailure(resource, status, data)
		return fmt.Errorf("%w: %s status code %d", apperrors.ErrUpstreamStatus, resource, status)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", resource, err)
	}
	return nil
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return data, resp.StatusCode, nil
}

func (c *Client) logFailure(resource string, status int, body []byte) {
	if len(body) > maxLoggedBody {
		body = body[:maxLoggedBody]
	}
	c.log.Error().
		Str("resource", resource).
		Int("status", status).
		Str("body", string(body)).
		Msg("upstream request failed")
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// requestID reuses the inbound chi request id so upstream logs can be correlated.
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
