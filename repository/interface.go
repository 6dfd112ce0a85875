package repository

import (
	"context"

	"overol-freefly/models"
)

// CatalogRepositoryInterface defines the contract for fabric type and color storage
type CatalogRepositoryInterface interface {
	ListFabricTypes(ctx context.Context) ([]models.FabricType, error)
	ListColors(ctx context.Context) ([]models.Color, error)
	// ListColorsByFabricType returns an empty slice for an unknown fabric type
	ListColorsByFabricType(ctx context.Context, fabricTypeID string) ([]models.Color, error)
	FindColor(ctx context.Context, id string) (*models.Color, error)
	InsertColor(ctx context.Context, color *models.Color) error
	// ReplaceColor overwrites the whole record stored under id
	ReplaceColor(ctx context.Context, id string, color *models.Color) error
	DeleteColor(ctx context.Context, id string) error

	// Seeding support
	InsertFabricType(ctx context.Context, fabricType *models.FabricType) error
	FabricTypeIDs(ctx context.Context) ([]string, error)
	ColorIDs(ctx context.Context) ([]string, error)
}

// OrderRepositoryInterface defines the contract for order persistence.
// Orders are immutable: there is no update or delete.
type OrderRepositoryInterface interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
}
