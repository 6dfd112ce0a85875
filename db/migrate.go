package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrate applies all pending schema migrations for the connection's driver
func Migrate(conn *sqlx.DB) error {
	var (
		driver database.Driver
		dir    string
		err    error
	)

	switch conn.DriverName() {
	case pgxDriverName:
		dir = "migrations/postgres"
		driver, err = migratepgx.WithInstance(conn.DB, &migratepgx.Config{})
	case sqliteDriverName:
		dir = "migrations/sqlite"
		driver, err = migratesqlite.WithInstance(conn.DB, &migratesqlite.Config{})
	default:
		return fmt.Errorf("no migrations for driver %s", conn.DriverName())
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, conn.DriverName(), driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Printf("✓ Database schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, _, _ := m.Version()
	log.Printf("✅ Database migrated to version %d", version)
	return nil
}
