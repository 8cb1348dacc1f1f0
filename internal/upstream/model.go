package upstream

import "github.com/ndewijer/Portfolio-Dashboard-Backend/internal/model"

// AuthRequest is the body posted to the auth endpoint.
type AuthRequest struct {
	AccessToken string `json:"accessToken"`
}

// AuthResponse is the relevant part of the auth endpoint response.
type AuthResponse struct {
	AuthToken string `json:"authToken"`
}

// HoldingsResponse is the relevant part of the holdings endpoint response.
// Fields not listed here are dropped during decoding.
type HoldingsResponse struct {
	Holdings []model.HoldingRecord `json:"holdings"`
}

// PerformanceResponse is the relevant part of the performance endpoint response.
type PerformanceResponse struct {
	Chart []model.PerformancePoint `json:"chart"`
}
