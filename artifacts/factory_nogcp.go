//go:build !gcp

package artifacts

import (
	"context"
	"fmt"

	"overol-freefly/config"
)

func newGCSStoreFromConfig(ctx context.Context, cfg *config.Config) (Store, error) {
	return nil, fmt.Errorf("GCS storage is not enabled in this build (use -tags gcp)")
}
