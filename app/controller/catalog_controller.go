package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"overol-freefly/models"
	"overol-freefly/repository"
)

// CatalogController handles HTTP requests for fabric types and colors
type CatalogController struct {
	repository repository.CatalogRepositoryInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(repo repository.CatalogRepositoryInterface) *CatalogController {
	return &CatalogController{repository: repo}
}

// GetFabricTypes handles GET /api/fabric-types
func (c *CatalogController) GetFabricTypes(w http.ResponseWriter, r *http.Request) {
	fabricTypes, err := c.repository.ListFabricTypes(r.Context())
	if err != nil {
		log.Printf("❌ GetFabricTypes: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.FabricTypesResponse{FabricTypes: fabricTypes})
}

// GetColors handles GET /api/colors
func (c *CatalogController) GetColors(w http.ResponseWriter, r *http.Request) {
	colors, err := c.repository.ListColors(r.Context())
	if err != nil {
		log.Printf("❌ GetColors: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ColorsResponse{Colors: colors})
}

// GetColorsByFabricType handles GET /api/colors/{fabricTypeId}
// An unknown fabric type yields an empty list, not 404.
func (c *CatalogController) GetColorsByFabricType(w http.ResponseWriter, r *http.Request) {
	fabricTypeID := mux.Vars(r)["fabricTypeId"]

	colors, err := c.repository.ListColorsByFabricType(r.Context(), fabricTypeID)
	if err != nil {
		log.Printf("❌ GetColorsByFabricType(%s): %v", fabricTypeID, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ColorsResponse{Colors: colors})
}
