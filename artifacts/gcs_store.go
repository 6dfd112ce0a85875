//go:build gcp

package artifacts

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

const gcsScheme = "gs://"

// GCSStore implements Store using Google Cloud Storage.
// The object only becomes visible when the writer is closed successfully.
type GCSStore struct {
	client *storage.Client
	bucket string
	prefix string
}

// GCSStoreConfig holds configuration for GCSStore
type GCSStoreConfig struct {
	Bucket string
	Prefix string
}

// NewGCSStore creates a new GCS-backed artifact store (ADC credentials)
func NewGCSStore(ctx context.Context, cfg GCSStoreConfig) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStore{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// Ensure GCSStore implements Store
var _ Store = (*GCSStore)(nil)

// Put uploads data and returns gs://bucket/key
func (s *GCSStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	objectKey := s.prefix + key

	// Cancelling the context aborts the upload without creating the object
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(objectKey).NewWriter(writeCtx)
	w.ContentType = contentTypeFor(key)

	if _, err := w.Write(data); err != nil {
		cancel()
		_ = w.Close()
		return "", fmt.Errorf("gcs write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close failed: %w", err)
	}

	return gcsScheme + s.bucket + "/" + objectKey, nil
}

// Open streams the object at address
func (s *GCSStore) Open(ctx context.Context, address string) (io.ReadCloser, error) {
	bucket, key, err := splitBucketAddress(address, gcsScheme)
	if err != nil {
		return nil, err
	}

	reader, err := s.client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, address)
		}
		return nil, fmt.Errorf("gcs get failed for %s: %w", address, err)
	}
	return reader, nil
}

// Delete removes the object at address
func (s *GCSStore) Delete(ctx context.Context, address string) error {
	bucket, key, err := splitBucketAddress(address, gcsScheme)
	if err != nil {
		return err
	}

	err = s.client.Bucket(bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("gcs delete failed for %s: %w", address, err)
	}
	return nil
}

// Close closes the GCS client
func (s *GCSStore) Close() error {
	return s.client.Close()
}
