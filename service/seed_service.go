package service

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"overol-freefly/repository"
	"overol-freefly/seed"
)

// SeedService reconciles the stored catalog with the built-in seed
// Implements SeedServiceInterface
type SeedService struct {
	repository repository.CatalogRepositoryInterface
	catalog    *seed.Catalog
}

// NewSeedService creates a new SeedService for the given seed catalog
func NewSeedService(repo repository.CatalogRepositoryInterface, catalog *seed.Catalog) *SeedService {
	return &SeedService{
		repository: repo,
		catalog:    catalog,
	}
}

// Ensure SeedService implements SeedServiceInterface
var _ SeedServiceInterface = (*SeedService)(nil)

// SeedCatalog inserts seed fabric types and colors whose ids are not stored yet.
// Existing records are never modified, so running it again is a no-op.
func (s *SeedService) SeedCatalog(ctx context.Context) (inserted int, skipped int, total int, err error) {
	ctx, span := tracer.Start(ctx, "SeedService.SeedCatalog")
	defer span.End()

	log.Printf("🔄 Starting catalog seed: %d fabric types, %d colors", len(s.catalog.FabricTypes), len(s.catalog.Colors))
	total = len(s.catalog.FabricTypes) + len(s.catalog.Colors)

	fabricIDs, err := s.repository.FabricTypeIDs(ctx)
	if err != nil {
		return 0, 0, total, errors.Wrap(err, "failed to load fabric type ids")
	}
	missingFabrics := seed.Reconcile(fabricIDs, s.catalog.FabricTypes, seed.FabricTypeID)

	colorIDs, err := s.repository.ColorIDs(ctx)
	if err != nil {
		return 0, 0, total, errors.Wrap(err, "failed to load color ids")
	}
	missingColors := seed.Reconcile(colorIDs, s.catalog.Colors, seed.ColorID)

	skipped = total - len(missingFabrics) - len(missingColors)

	for i := range missingFabrics {
		ft := missingFabrics[i]
		if err := s.repository.InsertFabricType(ctx, &ft); err != nil {
			if errors.Is(err, repository.ErrAlreadyExists) {
				log.Printf("⏭️  Skipping fabric type %s (inserted concurrently)", ft.ID)
				skipped++
				continue
			}
			return inserted, skipped, total, errors.Wrapf(err, "failed to insert fabric type %s", ft.ID)
		}
		inserted++
	}

	for i := range missingColors {
		c := missingColors[i]
		if err := s.repository.InsertColor(ctx, &c); err != nil {
			if errors.Is(err, repository.ErrAlreadyExists) {
				log.Printf("⏭️  Skipping color %s (inserted concurrently)", c.ID)
				skipped++
				continue
			}
			return inserted, skipped, total, errors.Wrapf(err, "failed to insert color %s", c.ID)
		}
		inserted++
	}

	log.Printf("🎉 Catalog seed completed: %d inserted, %d skipped, %d total", inserted, skipped, total)
	return inserted, skipped, total, nil
}
