package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/college-predictor/internal/adapters/http/dto"
	"github.com/jsamuelsen11/college-predictor/internal/ports"
)

const homeMessage = "college predictor API is running"

// HealthHandler handles the home, liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Home handles GET /.
func (h *HealthHandler) Home(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: dto.StatusOK, Message: homeMessage})
}

// Liveness handles GET /health/live. Always returns 200 OK without touching
// the database.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: dto.StatusOK})
}

// Readiness handles GET /health/ready. Returns 200 when every registered
// check passes and 503 otherwise, with per-component results.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, ready := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
