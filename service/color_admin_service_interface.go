package service

import (
	"context"

	"overol-freefly/models"
)

// ColorAdminServiceInterface defines the contract for password-gated palette changes
type ColorAdminServiceInterface interface {
	// ManageColor applies action to the palette and returns the success message
	ManageColor(ctx context.Context, password, action string, color *models.Color, colorID string) (string, error)
	// HandleColorRequest checks the password, then decodes and applies a raw admin request
	HandleColorRequest(ctx context.Context, req *models.AdminColorRequest) (string, error)
}
