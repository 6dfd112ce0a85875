package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"overol-freefly/models"
)

// CatalogRepository handles database operations for fabric types and colors.
// Listings follow insertion order so repeated reads are identical.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// ListFabricTypes retrieves all fabric types
func (r *CatalogRepository) ListFabricTypes(ctx context.Context) ([]models.FabricType, error) {
	query := r.db.Rebind(`SELECT id, name, pattern_type FROM fabric_types ORDER BY seq`)

	fabricTypes := []models.FabricType{}
	if err := r.db.SelectContext(ctx, &fabricTypes, query); err != nil {
		log.Printf("❌ Error querying fabric types: %v", err)
		return nil, fmt.Errorf("failed to query fabric types: %w", err)
	}
	return fabricTypes, nil
}

// ListColors retrieves every color of every fabric type
func (r *CatalogRepository) ListColors(ctx context.Context) ([]models.Color, error) {
	query := r.db.Rebind(`SELECT id, name, hex_value, fabric_type FROM colors ORDER BY seq`)

	colors := []models.Color{}
	if err := r.db.SelectContext(ctx, &colors, query); err != nil {
		log.Printf("❌ Error querying colors: %v", err)
		return nil, fmt.Errorf("failed to query colors: %w", err)
	}
	return colors, nil
}

// ListColorsByFabricType retrieves the colors of one fabric type
func (r *CatalogRepository) ListColorsByFabricType(ctx context.Context, fabricTypeID string) ([]models.Color, error) {
	query := r.db.Rebind(`
		SELECT id, name, hex_value, fabric_type
		FROM colors
		WHERE fabric_type = ?
		ORDER BY seq
	`)

	colors := []models.Color{}
	if err := r.db.SelectContext(ctx, &colors, query, fabricTypeID); err != nil {
		log.Printf("❌ Error querying colors for fabric_type=%s: %v", fabricTypeID, err)
		return nil, fmt.Errorf("failed to query colors: %w", err)
	}
	return colors, nil
}

// FindColor retrieves a color by id
func (r *CatalogRepository) FindColor(ctx context.Context, id string) (*models.Color, error) {
	query := r.db.Rebind(`SELECT id, name, hex_value, fabric_type FROM colors WHERE id = ?`)

	var color models.Color
	if err := r.db.GetContext(ctx, &color, query, id); err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		log.Printf("❌ Error fetching color id=%s: %v", id, err)
		return nil, fmt.Errorf("failed to get color: %w", err)
	}
	return &color, nil
}

// InsertColor inserts a new color. The UNIQUE constraint on id settles concurrent adds.
func (r *CatalogRepository) InsertColor(ctx context.Context, color *models.Color) error {
	query := r.db.Rebind(`INSERT INTO colors (id, name, hex_value, fabric_type) VALUES (?, ?, ?, ?)`)

	if _, err := r.db.ExecContext(ctx, query, color.ID, color.Name, color.HexValue, color.FabricType); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		log.Printf("❌ Error inserting color id=%s: %v", color.ID, err)
		return fmt.Errorf("failed to insert color: %w", err)
	}

	log.Printf("✓ Inserted color id=%s fabric_type=%s", color.ID, color.FabricType)
	return nil
}

// ReplaceColor replaces every field of the color stored under id
func (r *CatalogRepository) ReplaceColor(ctx context.Context, id string, color *models.Color) error {
	query := r.db.Rebind(`
		UPDATE colors
		SET id = ?, name = ?, hex_value = ?, fabric_type = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query, color.ID, color.Name, color.HexValue, color.FabricType, id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		log.Printf("❌ Error replacing color id=%s: %v", id, err)
		return fmt.Errorf("failed to replace color: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return err
	}

	log.Printf("✓ Replaced color id=%s", id)
	return nil
}

// DeleteColor removes a color by id
func (r *CatalogRepository) DeleteColor(ctx context.Context, id string) error {
	query := r.db.Rebind(`DELETE FROM colors WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Printf("❌ Error deleting color id=%s: %v", id, err)
		return fmt.Errorf("failed to delete color: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return err
	}

	log.Printf("✓ Deleted color id=%s", id)
	return nil
}

// InsertFabricType inserts a fabric type
func (r *CatalogRepository) InsertFabricType(ctx context.Context, fabricType *models.FabricType) error {
	query := r.db.Rebind(`INSERT INTO fabric_types (id, name, pattern_type) VALUES (?, ?, ?)`)

	if _, err := r.db.ExecContext(ctx, query, fabricType.ID, fabricType.Name, fabricType.PatternType); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert fabric type: %w", err)
	}
	return nil
}

// FabricTypeIDs returns the ids of every stored fabric type
func (r *CatalogRepository) FabricTypeIDs(ctx context.Context) ([]string, error) {
	ids := []string{}
	if err := r.db.SelectContext(ctx, &ids, r.db.Rebind(`SELECT id FROM fabric_types ORDER BY seq`)); err != nil {
		return nil, fmt.Errorf("failed to query fabric type ids: %w", err)
	}
	return ids, nil
}

// ColorIDs returns the ids of every stored color
func (r *CatalogRepository) ColorIDs(ctx context.Context) ([]string, error) {
	ids := []string{}
	if err := r.db.SelectContext(ctx, &ids, r.db.Rebind(`SELECT id FROM colors ORDER BY seq`)); err != nil {
		return nil, fmt.Errorf("failed to query color ids: %w", err)
	}
	return ids, nil
}
