package handlers

import (
	"net/http"

	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/version"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	dashboardService *service.DashboardService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(dashboardService *service.DashboardService) *SystemHandler {
	return &SystemHandler{
		dashboardService: dashboardService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
	Error    string `json:"error,omitempty"`
}

// Health reports whether the upstream services are configured.
// It does not contact them.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.dashboardService.CheckConfiguration(); err != nil {
		response.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Upstream: "unconfigured",
			Error:    err.Error(),
		})
		return
	}

	response.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Upstream: "configured",
	})
}

// VersionInfoResponse represents the version check response
type VersionInfoResponse struct {
	AppVersion string `json:"app_version"`
}

// Version handles GET requests for the application version.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionInfoResponse
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, VersionInfoResponse{
		AppVersion: version.Version,
	})
}
