package service

import "context"

// SeedServiceInterface defines the contract for catalog seeding
type SeedServiceInterface interface {
	// SeedCatalog inserts missing seed records.
	// inserted = new rows created, skipped = already present (by id), total = records in the seed.
	SeedCatalog(ctx context.Context) (inserted int, skipped int, total int, err error)
}
