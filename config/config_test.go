package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("STORE_DRIVER", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8001", cfg.Port)
	assert.Equal(t, "skydiving-suit-customizer", cfg.ServiceName)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "fs", cfg.ArtifactStorageType)
	assert.Equal(t, 30*time.Second, cfg.PDFTimeout)
	assert.Equal(t, "0.0.0.0:8001", cfg.Addr())
}

func TestLoad_RequiresAdminPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("postgres without connection settings", func(t *testing.T) {
		cfg := &Config{AdminPassword: "x", StoreDriver: "postgres"}
		assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL")
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{AdminPassword: "x", StoreDriver: "mongo"}
		assert.ErrorContains(t, cfg.Validate(), "unsupported STORE_DRIVER")
	})

	t.Run("port colon is stripped", func(t *testing.T) {
		cfg := &Config{AdminPassword: "x", StoreDriver: " SQLite ", SQLitePath: "x.db", Port: ":9000"}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	})
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "overol", DBSSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=overol sslmode=disable", cfg.PostgresDSN())

	cfg.DatabaseURL = "postgres://u:p@db/overol"
	assert.Equal(t, "postgres://u:p@db/overol", cfg.PostgresDSN())
}
