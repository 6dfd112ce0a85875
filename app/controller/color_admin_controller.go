package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"overol-freefly/models"
	"overol-freefly/service"
)

// ColorAdminController handles POST /api/admin/colors
type ColorAdminController struct {
	service service.ColorAdminServiceInterface
}

// NewColorAdminController creates a new ColorAdminController
func NewColorAdminController(svc service.ColorAdminServiceInterface) *ColorAdminController {
	return &ColorAdminController{service: svc}
}

// ManageColors adds, updates or removes a palette color
func (c *ColorAdminController) ManageColors(w http.ResponseWriter, r *http.Request) {
	var req models.AdminColorRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	message, err := c.service.HandleColorRequest(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: message})
}
