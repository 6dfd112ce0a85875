package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"overol-freefly/app"
	"overol-freefly/config"
	"overol-freefly/db"
	"overol-freefly/repository"
	"overol-freefly/seed"
	"overol-freefly/service"
)

func main() {
	cliApp := &cli.App{
		Name:  "overol-freefly",
		Usage: "skydiving suit customizer backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "path of the .env file loaded outside production",
			},
		},
		Before: func(c *cli.Context) error {
			config.LoadDotEnv(c.String("env-file"))
			return nil
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API (default)",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations and exit",
				Action: migrateCmd,
			},
			{
				Name:   "seed",
				Usage:  "apply migrations, insert missing seed catalog records and exit",
				Action: seedCmd,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	app.SetupLogging(cfg)
	return cfg, nil
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := app.SetupTracing(ctx, cfg)
	if err != nil {
		log.Printf("⚠️  Tracing disabled: %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(flushCtx)
	}()

	application, err := app.Initialize(ctx, cfg, app.Options{})
	if err != nil {
		return err
	}
	defer application.Close()

	// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           application.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server starting on %s", cfg.Addr())
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		log.Printf("🛑 Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func migrateCmd(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	conn, err := db.Open(c.Context, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	return db.Migrate(conn)
}

func seedCmd(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	conn, err := db.Open(c.Context, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.Migrate(conn); err != nil {
		return err
	}

	catalog, err := seed.Default()
	if err != nil {
		return err
	}
	inserted, skipped, total, err := service.NewSeedService(repository.NewCatalogRepository(conn), catalog).SeedCatalog(c.Context)
	if err != nil {
		return err
	}
	log.Printf("✅ Seed finished: %d inserted, %d skipped, %d total", inserted, skipped, total)
	return nil
}
