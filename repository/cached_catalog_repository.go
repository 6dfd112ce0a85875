package repository

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"overol-freefly/cache"
	"overol-freefly/models"
)

const (
	catalogCachePrefix   = "catalog:"
	catalogGenerationKey = "catalog_generation"
)

// CachedCatalogRepository serves catalog listings from a cache and
// invalidates them on every mutation. Cache errors never fail a call.
// Listings are keyed by a generation counter that every mutation bumps,
// so a listing loaded before a mutation is never served after it.
type CachedCatalogRepository struct {
	CatalogRepositoryInterface
	cache cache.Cache
}

// NewCachedCatalogRepository wraps next with a read-through cache
func NewCachedCatalogRepository(next CatalogRepositoryInterface, c cache.Cache) *CachedCatalogRepository {
	return &CachedCatalogRepository{CatalogRepositoryInterface: next, cache: c}
}

// Ensure CachedCatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CachedCatalogRepository)(nil)

func (r *CachedCatalogRepository) ListFabricTypes(ctx context.Context) ([]models.FabricType, error) {
	var fabricTypes []models.FabricType
	err := r.readThrough(ctx, "fabric_types", &fabricTypes, func() (interface{}, error) {
		return r.CatalogRepositoryInterface.ListFabricTypes(ctx)
	})
	return fabricTypes, err
}

func (r *CachedCatalogRepository) ListColors(ctx context.Context) ([]models.Color, error) {
	var colors []models.Color
	err := r.readThrough(ctx, "colors", &colors, func() (interface{}, error) {
		return r.CatalogRepositoryInterface.ListColors(ctx)
	})
	return colors, err
}

func (r *CachedCatalogRepository) ListColorsByFabricType(ctx context.Context, fabricTypeID string) ([]models.Color, error) {
	var colors []models.Color
	err := r.readThrough(ctx, "colors:"+fabricTypeID, &colors, func() (interface{}, error) {
		return r.CatalogRepositoryInterface.ListColorsByFabricType(ctx, fabricTypeID)
	})
	return colors, err
}

func (r *CachedCatalogRepository) InsertColor(ctx context.Context, color *models.Color) error {
	return r.invalidateAfter(ctx, r.CatalogRepositoryInterface.InsertColor(ctx, color))
}

func (r *CachedCatalogRepository) ReplaceColor(ctx context.Context, id string, color *models.Color) error {
	return r.invalidateAfter(ctx, r.CatalogRepositoryInterface.ReplaceColor(ctx, id, color))
}

func (r *CachedCatalogRepository) DeleteColor(ctx context.Context, id string) error {
	return r.invalidateAfter(ctx, r.CatalogRepositoryInterface.DeleteColor(ctx, id))
}

func (r *CachedCatalogRepository) InsertFabricType(ctx context.Context, fabricType *models.FabricType) error {
	return r.invalidateAfter(ctx, r.CatalogRepositoryInterface.InsertFabricType(ctx, fabricType))
}

// generation returns the current catalog generation; missing means 0
func (r *CachedCatalogRepository) generation(ctx context.Context) (int64, error) {
	var gen int64
	err := r.cache.Get(ctx, catalogGenerationKey, &gen)
	if errors.Is(err, cache.ErrMiss) {
		return 0, nil
	}
	return gen, err
}

// readThrough fills dest from the cache, or from load on a miss.
// The generation is read before loading so a concurrent mutation
// leaves this result under a key nobody reads anymore.
func (r *CachedCatalogRepository) readThrough(ctx context.Context, name string, dest interface{}, load func() (interface{}, error)) error {
	gen, err := r.generation(ctx)
	if err != nil {
		log.Printf("⚠️  Catalog cache generation read failed: %v", err)
		return r.loadInto(dest, load)
	}
	key := fmt.Sprintf("%sv%d:%s", catalogCachePrefix, gen, name)

	err = r.cache.Get(ctx, key, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Printf("⚠️  Catalog cache read failed for %s: %v", key, err)
	}

	value, err := load()
	if err != nil {
		return err
	}
	if err := r.cache.Set(ctx, key, value); err != nil {
		log.Printf("⚠️  Catalog cache write failed for %s: %v", key, err)
	}
	assign(dest, value)
	return nil
}

func (r *CachedCatalogRepository) loadInto(dest interface{}, load func() (interface{}, error)) error {
	value, err := load()
	if err != nil {
		return err
	}
	assign(dest, value)
	return nil
}

func assign(dest, value interface{}) {
	switch v := value.(type) {
	case []models.FabricType:
		*dest.(*[]models.FabricType) = v
	case []models.Color:
		*dest.(*[]models.Color) = v
	}
}

func (r *CachedCatalogRepository) invalidateAfter(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	if _, cacheErr := r.cache.Incr(ctx, catalogGenerationKey); cacheErr != nil {
		log.Printf("⚠️  Catalog cache generation bump failed: %v", cacheErr)
	}
	// older generations are unreachable; drop them instead of waiting for the TTL
	if cacheErr := r.cache.DeletePrefix(ctx, catalogCachePrefix); cacheErr != nil {
		log.Printf("⚠️  Catalog cache invalidation failed: %v", cacheErr)
	}
	return nil
}
