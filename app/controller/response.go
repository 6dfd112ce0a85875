package controller

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"overol-freefly/models"
	"overol-freefly/service"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// writeJSON encodes v with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

// writeDetail writes {"detail": message}
func writeDetail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Detail: message})
}

// writeError maps a service error to its status and client message
func writeError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError && !errors.Is(err, service.ErrGenerationFailed) {
		log.Printf("❌ Internal error: %v", err)
		writeDetail(w, status, "Internal server error")
		return
	}
	writeDetail(w, status, service.Detail(err))
}

// StatusFor returns the HTTP status for a service error
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
