package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/service"
)

// DashboardHandler serves the aggregated portfolio data to the dashboard page
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Data handles GET requests for the aggregated dashboard view.
// Failure details are logged server-side only; the caller receives a generic message.
//
// Endpoint: GET /api/data
// Response: 200 OK with model.AggregatedView
// Error: 500 Internal Server Error with {"error": "..."}
func (h *DashboardHandler) Data(w http.ResponseWriter, r *http.Request) {
	view, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to build dashboard data")
		response.RespondError(w, http.StatusInternalServerError, publicMessage(err), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, view)
}

// publicMessage maps an error to the message exposed to the browser.
func publicMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrMissingConfiguration):
		return "Missing environment variables"
	case errors.Is(err, apperrors.ErrAuthFailed), errors.Is(err, apperrors.ErrMissingAuthToken):
		return "Failed to fetch auth token"
	default:
		return "Internal server error"
	}
}
