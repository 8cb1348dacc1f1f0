package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/config"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/model"
)

// Default credentials accepted by MockUpstream.
const (
	MockAccessToken = "test-access-token"
	MockAuthToken   = "test-auth-token"
)

// MockUpstream is an httptest server standing in for the auth, holdings and
// performance services. Exported fields may be changed before the first request.
type MockUpstream struct {
	Server *httptest.Server

	// AuthStatus, HoldingsStatus and PerformanceStatus override the status code
	// of the respective endpoint when non-zero.
	AuthStatus        int
	HoldingsStatus    int
	PerformanceStatus int

	// AuthToken is returned by the auth endpoint. Empty omits the field.
	AuthToken   string
	Holdings    []model.HoldingRecord
	Performance []model.PerformancePoint

	// HoldingsBody and PerformanceBody replace the encoded response when set.
	HoldingsBody    string
	PerformanceBody string

	// PerformanceGate, when non-nil, is waited on before the performance
	// endpoint answers. Tests use it to hold one fetch open.
	PerformanceGate chan struct{}

	AuthCalls        atomic.Int32
	HoldingsCalls    atomic.Int32
	PerformanceCalls atomic.Int32

	mu         sync.Mutex
	requestIDs []string
}

// NewMockUpstream starts a mock upstream that is closed when the test completes.
// It serves CreateTestHoldings and CreateTestPerformance by default.
func NewMockUpstream(t *testing.T) *MockUpstream {
	t.Helper()

	m := &MockUpstream{
		AuthToken:   MockAuthToken,
		Holdings:    CreateTestHoldings(),
		Performance: CreateTestPerformance(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth", m.handleAuth)
	mux.HandleFunc("GET /holdings", m.handleHoldings)
	mux.HandleFunc("GET /performance", m.handlePerformance)

	m.Server = httptest.NewServer(mux)
	t.Cleanup(m.Server.Close)

	return m
}

// Config returns an upstream configuration pointing at the mock server.
func (m *MockUpstream) Config() config.UpstreamConfig {
	return config.UpstreamConfig{
		AccessToken:         MockAccessToken,
		AuthEndpoint:        m.Server.URL + "/auth",
		HoldingsEndpoint:    m.Server.URL + "/holdings",
		PerformanceEndpoint: m.Server.URL + "/performance",
	}
}

// RequestIDs returns the X-Request-ID headers received so far.
func (m *MockUpstream) RequestIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.requestIDs...)
}

func (m *MockUpstream) record(r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestIDs = append(m.requestIDs, r.Header.Get("X-Request-ID"))
}

func (m *MockUpstream) handleAuth(w http.ResponseWriter, r *http.Request) {
	m.AuthCalls.Add(1)
	m.record(r)

	if m.AuthStatus != 0 {
		http.Error(w, "auth rejected", m.AuthStatus)
		return
	}

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.AccessToken != MockAccessToken {
		http.Error(w, "bad access token", http.StatusForbidden)
		return
	}

	response := map[string]string{}
	if m.AuthToken != "" {
		response["authToken"] = m.AuthToken
	}
	writeJSON(w, response)
}

func (m *MockUpstream) handleHoldings(w http.ResponseWriter, r *http.Request) {
	m.HoldingsCalls.Add(1)
	m.record(r)

	if !m.authorized(w, r, m.HoldingsStatus) {
		return
	}
	if m.HoldingsBody != "" {
		writeRaw(w, m.HoldingsBody)
		return
	}
	writeJSON(w, map[string]any{"holdings": m.Holdings})
}

func (m *MockUpstream) handlePerformance(w http.ResponseWriter, r *http.Request) {
	m.PerformanceCalls.Add(1)
	m.record(r)

	if m.PerformanceGate != nil {
		select {
		case <-m.PerformanceGate:
		case <-r.Context().Done():
			return
		}
	}

	if !m.authorized(w, r, m.PerformanceStatus) {
		return
	}
	if m.PerformanceBody != "" {
		writeRaw(w, m.PerformanceBody)
		return
	}
	writeJSON(w, map[string]any{"chart": m.Performance})
}

func (m *MockUpstream) authorized(w http.ResponseWriter, r *http.Request, override int) bool {
	if r.Header.Get("Authorization") != "Bearer "+m.AuthToken {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	if override != 0 {
		http.Error(w, "upstream failure", override)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	//nolint:errcheck // Test server - a failed write surfaces as a client error
	json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	//nolint:errcheck // Test server - a failed write surfaces as a client error
	w.Write([]byte(body))
}
