package artifacts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const s3Scheme = "s3://"

// S3Store implements Store using AWS S3 (or a compatible endpoint).
// A single PutObject is atomic: the object is either fully visible or absent.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// S3StoreConfig holds configuration for S3Store
type S3StoreConfig struct {
	Bucket   string
	Region   string
	Endpoint string // Optional custom endpoint (MinIO, LocalStack)
	Prefix   string
}

// NewS3Store creates a new S3-backed artifact store
func NewS3Store(ctx context.Context, cfg S3StoreConfig) (*S3Store, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// Ensure S3Store implements Store
var _ Store = (*S3Store)(nil)

// Put uploads data and returns s3://bucket/key
func (s *S3Store) Put(ctx context.Context, key string, data []byte) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	objectKey := s.prefix + key

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentTypeFor(key)),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put failed: %w", err)
	}

	return s3Scheme + s.bucket + "/" + objectKey, nil
}

// Open downloads the object at address
func (s *S3Store) Open(ctx context.Context, address string) (io.ReadCloser, error) {
	bucket, key, err := splitBucketAddress(address, s3Scheme)
	if err != nil {
		return nil, err
	}

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, address)
		}
		return nil, fmt.Errorf("s3 get failed for %s: %w", address, err)
	}
	return result.Body, nil
}

// Delete removes the object at address
func (s *S3Store) Delete(ctx context.Context, address string) error {
	bucket, key, err := splitBucketAddress(address, s3Scheme)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete failed for %s: %w", address, err)
	}
	return nil
}

// splitBucketAddress parses scheme://bucket/key
func splitBucketAddress(address, scheme string) (string, string, error) {
	if !strings.HasPrefix(address, scheme) {
		return "", "", fmt.Errorf("invalid artifact address: %s", address)
	}
	bucket, key, ok := strings.Cut(strings.TrimPrefix(address, scheme), "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid artifact address: %s", address)
	}
	return bucket, key, nil
}

func contentTypeFor(key string) string {
	if strings.HasSuffix(key, ".pdf") {
		return "application/pdf"
	}
	return "application/octet-stream"
}
