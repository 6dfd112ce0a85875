package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overol-freefly/cache"
	"overol-freefly/models"
)

type memoryCache struct {
	data    map[string][]byte
	failGet bool
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string][]byte{}} }

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	if c.failGet {
		return errors.New("redis down")
	}
	data, ok := c.data[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = data
	return nil
}

func (c *memoryCache) DeletePrefix(_ context.Context, prefix string) error {
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

func (c *memoryCache) Incr(_ context.Context, key string) (int64, error) {
	var n int64
	if data, ok := c.data[key]; ok {
		if err := json.Unmarshal(data, &n); err != nil {
			return 0, err
		}
	}
	n++
	c.data[key] = []byte(strconv.FormatInt(n, 10))
	return n, nil
}

// countingCatalog counts listing calls reaching the store
type countingCatalog struct {
	CatalogRepositoryInterface
	colors    []models.Color
	listCalls int
	// afterLoad runs once after a listing has read its rows
	afterLoad func()
}

func (c *countingCatalog) ListColors(context.Context) ([]models.Color, error) {
	c.listCalls++
	out := make([]models.Color, len(c.colors))
	copy(out, c.colors)
	if hook := c.afterLoad; hook != nil {
		c.afterLoad = nil
		hook()
	}
	return out, nil
}

func (c *countingCatalog) InsertColor(_ context.Context, color *models.Color) error {
	for _, existing := range c.colors {
		if existing.ID == color.ID {
			return ErrAlreadyExists
		}
	}
	c.colors = append(c.colors, *color)
	return nil
}

func TestCachedCatalogRepository_ReadThroughAndInvalidate(t *testing.T) {
	ctx := context.Background()
	store := &countingCatalog{colors: []models.Color{{ID: "t1_gray", Name: "Gray", HexValue: "#808080", FabricType: "tela1"}}}
	repo := NewCachedCatalogRepository(store, newMemoryCache())

	first, err := repo.ListColors(ctx)
	require.NoError(t, err)
	second, err := repo.ListColors(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.listCalls, "second listing is served from cache")

	require.NoError(t, repo.InsertColor(ctx, &models.Color{ID: "t1_blue", Name: "Blue", HexValue: "#0066CC", FabricType: "tela1"}))

	third, err := repo.ListColors(ctx)
	require.NoError(t, err)
	assert.Len(t, third, 2)
	assert.Equal(t, 2, store.listCalls)
}

func TestCachedCatalogRepository_FailedMutationKeepsCache(t *testing.T) {
	ctx := context.Background()
	store := &countingCatalog{colors: []models.Color{{ID: "t1_gray"}}}
	repo := NewCachedCatalogRepository(store, newMemoryCache())

	_, err := repo.ListColors(ctx)
	require.NoError(t, err)

	err = repo.InsertColor(ctx, &models.Color{ID: "t1_gray"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = repo.ListColors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.listCalls)
}

func TestCachedCatalogRepository_CacheErrorsFallThrough(t *testing.T) {
	store := &countingCatalog{colors: []models.Color{{ID: "t1_gray"}}}
	c := newMemoryCache()
	c.failGet = true
	repo := NewCachedCatalogRepository(store, c)

	colors, err := repo.ListColors(context.Background())
	require.NoError(t, err)
	assert.Len(t, colors, 1)
}

func TestCachedCatalogRepository_MutationDuringListingIsNotMasked(t *testing.T) {
	ctx := context.Background()
	store := &countingCatalog{colors: []models.Color{{ID: "t1_gray"}}}
	repo := NewCachedCatalogRepository(store, newMemoryCache())

	// the insert commits and invalidates while the listing still holds the old rows
	store.afterLoad = func() {
		require.NoError(t, repo.InsertColor(ctx, &models.Color{ID: "t1_blue"}))
	}
	stale, err := repo.ListColors(ctx)
	require.NoError(t, err)
	assert.Len(t, stale, 1)

	fresh, err := repo.ListColors(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
	assert.Equal(t, 2, store.listCalls)
}
