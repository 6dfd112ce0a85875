package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"overol-freefly/config"
)

// Driver names registered by the imported database/sql drivers
const (
	pgxDriverName    = "pgx"
	sqliteDriverName = "sqlite"
)

// Open opens the database selected by cfg.StoreDriver and checks the connection
func Open(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	var (
		conn *sqlx.DB
		err  error
	)

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		conn, err = sqlx.Open(pgxDriverName, cfg.PostgresDSN())
	case config.DriverSQLite:
		conn, err = openSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.StoreDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✓ Database connection established successfully (driver=%s)", cfg.StoreDriver)
	return conn, nil
}

// OpenSQLite opens a SQLite database file, creating its directory if needed.
// Used for lite mode and tests.
func OpenSQLite(path string) (*sqlx.DB, error) {
	return openSQLite(path)
}

func openSQLite(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create sqlite dir: %w", err)
		}
	}

	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	conn, err := sqlx.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; one connection avoids SQLITE_BUSY under load
	conn.SetMaxOpenConns(1)
	return conn, nil
}
