package artifacts

import (
	"context"
	"errors"
	"io"
)

// ErrArtifactNotFound is returned by Open when nothing is stored at the address
var ErrArtifactNotFound = errors.New("artifact not found")

// Store persists rendered documents under a caller-chosen key.
// Put only returns an address once the data is completely written; a failed
// Put leaves nothing behind that the address could point to.
type Store interface {
	// Put writes data under key and returns the address to reference it by
	Put(ctx context.Context, key string, data []byte) (string, error)
	// Open streams the artifact stored at address
	Open(ctx context.Context, address string) (io.ReadCloser, error)
	// Delete removes the artifact stored at address
	Delete(ctx context.Context, address string) error
}
