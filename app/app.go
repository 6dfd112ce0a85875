package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"overol-freefly/app/controller"
	"overol-freefly/app/router"
	"overol-freefly/artifacts"
	"overol-freefly/cache"
	"overol-freefly/config"
	"overol-freefly/db"
	"overol-freefly/repository"
	"overol-freefly/seed"
	"overol-freefly/service"
)

// App is the wired application
type App struct {
	Handler http.Handler
	DB      *sqlx.DB

	closers []func() error
}

// Options overrides parts of the wiring, mainly for tests
type Options struct {
	// Printer replaces the headless Chrome printer
	Printer service.Printer
	// Store replaces the configured artifact store
	Store artifacts.Store
}

// Initialize opens the store, migrates and seeds it, and builds the HTTP handler
func Initialize(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	a := &App{}

	conn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	a.DB = conn
	a.closers = append(a.closers, conn.Close)

	if err := db.Migrate(conn); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	var catalogRepo repository.CatalogRepositoryInterface = repository.NewCatalogRepository(conn)
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisURL, cfg.CatalogCacheTTL)
		if err != nil {
			// The catalog still works without the cache
			log.Printf("⚠️  Catalog cache disabled: %v", err)
		} else {
			log.Printf("✓ Catalog cache enabled (ttl %s)", cfg.CatalogCacheTTL)
			catalogRepo = repository.NewCachedCatalogRepository(catalogRepo, redisCache)
			a.closers = append(a.closers, redisCache.Close)
		}
	}
	orderRepo := repository.NewOrderRepository(conn)

	seedCatalog, err := seed.Default()
	if err != nil {
		a.Close()
		return nil, err
	}
	if _, _, _, err := service.NewSeedService(catalogRepo, seedCatalog).SeedCatalog(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	store := opts.Store
	if store == nil {
		store, err = artifacts.NewStoreFromConfig(ctx, cfg)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to initialize artifact store: %w", err)
		}
	}

	printer := opts.Printer
	if printer == nil {
		printer = service.NewChromePrinter(cfg.ChromePath, cfg.PDFTimeout)
	}

	documentService := service.NewDocumentService(printer, store)
	orderService := service.NewOrderService(orderRepo, documentService, store)
	colorAdminService := service.NewColorAdminService(catalogRepo, cfg.AdminPassword)

	controllers := &router.Controllers{
		Health:     controller.NewHealthController(cfg.ServiceName),
		Catalog:    controller.NewCatalogController(catalogRepo),
		ColorAdmin: controller.NewColorAdminController(colorAdminService),
		Order:      controller.NewOrderController(orderService),
	}
	a.Handler = router.SetupRoutes(controllers)

	return a, nil
}

// Close releases the database and cache connections
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Printf("⚠️  Error during shutdown: %v", err)
		}
	}
	a.closers = nil
}
