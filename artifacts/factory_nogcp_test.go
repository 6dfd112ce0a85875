//go:build !gcp

package artifacts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"overol-freefly/config"
)

func TestNewStoreFromConfig_GCSDisabled(t *testing.T) {
	_, err := NewStoreFromConfig(context.Background(), &config.Config{
		ArtifactStorageType: "gcs",
		ArtifactGCSBucket:   "bucket",
	})
	assert.ErrorContains(t, err, "not enabled")
}
