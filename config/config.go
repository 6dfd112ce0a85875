package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// Store drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds every setting the service reads from the environment
type Config struct {
	Env         string `envconfig:"ENV" default:"development"`
	Port        string `envconfig:"PORT" default:"8001"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"skydiving-suit-customizer"`

	// AdminPassword is either the plain admin passphrase or a bcrypt hash of it
	AdminPassword string `envconfig:"ADMIN_PASSWORD" required:"true"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"postgres"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME"`
	DBSSLMode   string `envconfig:"DB_SSLMODE" default:"disable"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"data/overol.db"`

	RedisURL        string        `envconfig:"REDIS_URL"`
	CatalogCacheTTL time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"5m"`

	DataDir             string `envconfig:"DATA_DIR" default:"data"`
	ArtifactStorageType string `envconfig:"ARTIFACT_STORAGE_TYPE" default:"fs"`
	ArtifactS3Bucket    string `envconfig:"ARTIFACT_S3_BUCKET"`
	ArtifactS3Region    string `envconfig:"ARTIFACT_S3_REGION"`
	ArtifactS3Endpoint  string `envconfig:"ARTIFACT_S3_ENDPOINT"`
	ArtifactS3Prefix    string `envconfig:"ARTIFACT_S3_PREFIX"`
	ArtifactGCSBucket   string `envconfig:"ARTIFACT_GCS_BUCKET"`
	ArtifactGCSPrefix   string `envconfig:"ARTIFACT_GCS_PREFIX"`
	ArtifactDriveFolder string `envconfig:"ARTIFACT_DRIVE_FOLDER_ID"`
	GoogleCredsPath     string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`
	GoogleCredsJSON     string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS_JSON"`

	ChromePath string        `envconfig:"CHROME_PATH"`
	PDFTimeout time.Duration `envconfig:"PDF_TIMEOUT" default:"30s"`

	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// LoadDotEnv loads a .env file in development.
// In production, variables should be set directly.
func LoadDotEnv(path string) {
	if os.Getenv("ENV") == "production" {
		return
	}
	// Overload so .env values win over stale shell variables
	if err := godotenv.Overload(path); err != nil {
		log.Printf("⚠️  .env file not found at %s, using system environment variables", path)
		return
	}
	log.Printf("✓ Loaded environment variables from %s", path)
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks combinations envconfig cannot express
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AdminPassword) == "" {
		return fmt.Errorf("ADMIN_PASSWORD must not be empty")
	}

	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	switch c.StoreDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" && (c.DBHost == "" || c.DBUser == "" || c.DBName == "") {
			return fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite store")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}

	// Remove leading colon if present (some platforms export PORT as ":8001")
	c.Port = strings.TrimPrefix(c.Port, ":")
	return nil
}

// PostgresDSN returns DATABASE_URL or builds a DSN from the individual DB_* variables
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Addr is the listen address. 0.0.0.0 so the service is reachable inside containers.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}
