package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overol-freefly/models"
	"overol-freefly/seed"
)

func TestSeedCatalog_EmptyStore(t *testing.T) {
	catalog, err := seed.Default()
	require.NoError(t, err)
	repo := &memoryCatalog{}
	svc := NewSeedService(repo, catalog)

	inserted, skipped, total, err := svc.SeedCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 23, total)
	assert.Equal(t, 23, inserted)
	assert.Equal(t, 0, skipped)

	ids, _ := repo.FabricTypeIDs(context.Background())
	assert.Equal(t, []string{"tela1", "tela2", "tela3", "tela4"}, ids)
}

func TestSeedCatalog_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	catalog, err := seed.Default()
	require.NoError(t, err)
	repo := &memoryCatalog{}
	svc := NewSeedService(repo, catalog)

	_, _, _, err = svc.SeedCatalog(ctx)
	require.NoError(t, err)
	before, _ := repo.ListColors(ctx)

	inserted, skipped, total, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
	assert.Equal(t, total, skipped)

	after, _ := repo.ListColors(ctx)
	assert.Equal(t, before, after)
}

func TestSeedCatalog_KeepsExistingRecords(t *testing.T) {
	ctx := context.Background()
	catalog, err := seed.Default()
	require.NoError(t, err)

	// An admin already changed t1_gray; seeding must not overwrite it
	repo := &memoryCatalog{colors: []models.Color{
		{ID: "t1_gray", Name: "Custom", HexValue: "#111111", FabricType: "tela1"},
	}}
	svc := NewSeedService(repo, catalog)

	inserted, skipped, _, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 22, inserted)
	assert.Equal(t, 1, skipped)

	stored, err := repo.FindColor(ctx, "t1_gray")
	require.NoError(t, err)
	assert.Equal(t, "Custom", stored.Name)
}
