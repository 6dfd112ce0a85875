//go:build gcp

package artifacts

import (
	"context"
	"fmt"

	"overol-freefly/config"
)

func newGCSStoreFromConfig(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.ArtifactGCSBucket == "" {
		return nil, fmt.Errorf("ARTIFACT_GCS_BUCKET is required for GCS storage")
	}

	return NewGCSStore(ctx, GCSStoreConfig{
		Bucket: cfg.ArtifactGCSBucket,
		Prefix: cfg.ArtifactGCSPrefix,
	})
}
