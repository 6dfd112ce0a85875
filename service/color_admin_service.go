package service

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"overol-freefly/models"
	"overol-freefly/repository"
	"overol-freefly/utils"
)

// ColorAdminService gates color mutations behind the shared admin secret
// Implements ColorAdminServiceInterface
type ColorAdminService struct {
	repository  repository.CatalogRepositoryInterface
	adminSecret string
}

// NewColorAdminService creates a new ColorAdminService.
// adminSecret is the configured ADMIN_PASSWORD (plain or bcrypt hash).
func NewColorAdminService(repo repository.CatalogRepositoryInterface, adminSecret string) *ColorAdminService {
	return &ColorAdminService{
		repository:  repo,
		adminSecret: adminSecret,
	}
}

// Ensure ColorAdminService implements ColorAdminServiceInterface
var _ ColorAdminServiceInterface = (*ColorAdminService)(nil)

// ManageColor checks the password first, then dispatches on action
func (s *ColorAdminService) ManageColor(ctx context.Context, password, action string, color *models.Color, colorID string) (string, error) {
	ctx, span := tracer.Start(ctx, "ColorAdminService.ManageColor")
	defer span.End()

	if err := s.authorize(password, action); err != nil {
		return "", err
	}
	return s.apply(ctx, action, color, colorID)
}

// HandleColorRequest checks the password before looking at the payload
func (s *ColorAdminService) HandleColorRequest(ctx context.Context, req *models.AdminColorRequest) (string, error) {
	ctx, span := tracer.Start(ctx, "ColorAdminService.HandleColorRequest")
	defer span.End()

	if err := s.authorize(req.Password, req.Action); err != nil {
		return "", err
	}

	var color *models.Color
	colorID := ""
	switch req.Action {
	case models.ColorActionAdd, models.ColorActionUpdate:
		decoded, err := decodeColor(req.Color)
		if err != nil {
			return "", err
		}
		color = decoded
	case models.ColorActionRemove:
		decoded, err := decodeColorID(req.ColorID)
		if err != nil {
			return "", err
		}
		colorID = decoded
	}
	return s.apply(ctx, req.Action, color, colorID)
}

func (s *ColorAdminService) authorize(password, action string) error {
	if !utils.SecretMatches(s.adminSecret, password) {
		log.Printf("⚠️  Rejected color %s request: invalid admin password", action)
		return newDetailError(ErrUnauthorized, "Invalid admin password")
	}
	return nil
}

func (s *ColorAdminService) apply(ctx context.Context, action string, color *models.Color, colorID string) (string, error) {
	switch action {
	case models.ColorActionAdd:
		return s.addColor(ctx, color)
	case models.ColorActionUpdate:
		return s.updateColor(ctx, color)
	case models.ColorActionRemove:
		return s.removeColor(ctx, colorID)
	default:
		return "", newDetailError(ErrInvalidRequest, "Invalid action")
	}
}

func (s *ColorAdminService) addColor(ctx context.Context, color *models.Color) (string, error) {
	if color == nil {
		return "", newDetailError(ErrInvalidRequest, "Color data required for add action")
	}
	if err := validateColor(color); err != nil {
		return "", err
	}

	_, err := s.repository.FindColor(ctx, color.ID)
	if err == nil {
		return "", newDetailError(ErrConflict, "Color with this ID already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", errors.Wrapf(err, "failed to look up color %s", color.ID)
	}

	if err := s.repository.InsertColor(ctx, color); err != nil {
		// Concurrent add of the same id lost the race on the unique constraint
		if errors.Is(err, repository.ErrAlreadyExists) {
			return "", newDetailError(ErrConflict, "Color with this ID already exists")
		}
		return "", errors.Wrapf(err, "failed to insert color %s", color.ID)
	}

	log.Printf("✅ Color %s added to %s", color.ID, color.FabricType)
	return "Color added successfully", nil
}

func (s *ColorAdminService) updateColor(ctx context.Context, color *models.Color) (string, error) {
	if color == nil {
		return "", newDetailError(ErrInvalidRequest, "Color data required for update action")
	}
	if err := validateColor(color); err != nil {
		return "", err
	}

	if err := s.repository.ReplaceColor(ctx, color.ID, color); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", newDetailError(ErrNotFound, "Color not found")
		}
		return "", errors.Wrapf(err, "failed to update color %s", color.ID)
	}

	log.Printf("✅ Color %s updated", color.ID)
	return "Color updated successfully", nil
}

func (s *ColorAdminService) removeColor(ctx context.Context, colorID string) (string, error) {
	if colorID == "" {
		return "", newDetailError(ErrInvalidRequest, "Color ID required for remove action")
	}

	if err := s.repository.DeleteColor(ctx, colorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", newDetailError(ErrNotFound, "Color not found")
		}
		return "", errors.Wrapf(err, "failed to remove color %s", colorID)
	}

	log.Printf("🗑️  Color %s removed", colorID)
	return "Color removed successfully", nil
}

func isJSONNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// decodeColor returns nil for an absent or null color
func decodeColor(raw json.RawMessage) (*models.Color, error) {
	if isJSONNull(raw) {
		return nil, nil
	}
	var color models.Color
	if err := json.Unmarshal(raw, &color); err != nil {
		return nil, &DetailError{Kind: ErrInvalidRequest, Detail: "Invalid color data: " + err.Error(), Cause: err}
	}
	return &color, nil
}

func decodeColorID(raw json.RawMessage) (string, error) {
	if isJSONNull(raw) {
		return "", nil
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return "", &DetailError{Kind: ErrInvalidRequest, Detail: "Invalid color_id: must be a string", Cause: err}
	}
	return id, nil
}

func validateColor(color *models.Color) error {
	if err := validateValue(colorSchema, color); err != nil {
		return &DetailError{Kind: ErrInvalidRequest, Detail: "Invalid color data: " + schemaMessage(err), Cause: err}
	}
	return nil
}
