package controller

import (
	"net/http"

	"overol-freefly/models"
)

// HealthController handles GET /api/health
type HealthController struct {
	serviceName string
}

// NewHealthController creates a new HealthController
func NewHealthController(serviceName string) *HealthController {
	return &HealthController{serviceName: serviceName}
}

// Health reports liveness. It does not touch the store.
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "healthy", Service: c.serviceName})
}
