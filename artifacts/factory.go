package artifacts

import (
	"context"
	"fmt"
	"path/filepath"

	"overol-freefly/config"
)

// StoreType represents the type of artifact storage backend
type StoreType string

const (
	StoreTypeFS    StoreType = "fs"
	StoreTypeS3    StoreType = "s3"
	StoreTypeGCS   StoreType = "gcs"
	StoreTypeDrive StoreType = "drive"
)

// NewStoreFromConfig creates the artifact store selected by ARTIFACT_STORAGE_TYPE
func NewStoreFromConfig(ctx context.Context, cfg *config.Config) (Store, error) {
	storeType := StoreType(cfg.ArtifactStorageType)
	if storeType == "" {
		storeType = StoreTypeFS
	}

	switch storeType {
	case StoreTypeFS:
		dataDir := cfg.DataDir
		if dataDir == "" {
			dataDir = "data"
		}
		return NewFileStore(filepath.Join(dataDir, "artifacts"))
	case StoreTypeS3:
		return newS3StoreFromConfig(ctx, cfg)
	case StoreTypeGCS:
		return newGCSStoreFromConfig(ctx, cfg)
	case StoreTypeDrive:
		return NewDriveStore(ctx, DriveStoreConfig{
			FolderID:        cfg.ArtifactDriveFolder,
			CredentialsJSON: cfg.GoogleCredsJSON,
			CredentialsPath: cfg.GoogleCredsPath,
		})
	default:
		return nil, fmt.Errorf("unsupported artifact storage type: %s", storeType)
	}
}

func newS3StoreFromConfig(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.ArtifactS3Bucket == "" {
		return nil, fmt.Errorf("ARTIFACT_S3_BUCKET is required for S3 storage")
	}

	region := cfg.ArtifactS3Region
	if region == "" {
		region = "us-east-1"
	}

	return NewS3Store(ctx, S3StoreConfig{
		Bucket:   cfg.ArtifactS3Bucket,
		Region:   region,
		Endpoint: cfg.ArtifactS3Endpoint,
		Prefix:   cfg.ArtifactS3Prefix,
	})
}
