// Package storage uploads item images to S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/campusfound/campusfound/internal/store"
)

var _ store.ObjectStore = (*MinIO)(nil)

// Config holds the object storage connection settings.
type Config struct {
	Endpoint       string
	PublicEndpoint string // base for public URLs; Endpoint if empty
	AccessKey      string
	SecretKey      string
	Bucket         string
	UseSSL         bool
}

// MinIO stores objects in a single bucket and resolves public URLs for them.
type MinIO struct {
	client         *minio.Client
	bucket         string
	publicEndpoint string
}

// publicReadPolicy grants anonymous GetObject on everything in the bucket,
// so image URLs are directly addressable.
const publicReadPolicy = `{"Version":"2012-10-17","Statement":[{"Action":["s3:GetObject"],"Effect":"Allow","Principal":{"AWS":["*"]},"Resource":["arn:aws:s3:::%s/*"],"Sid":""}]}`

// New connects to the object store and makes sure the bucket exists with a
// public-read policy.
func New(cfg Config) (*MinIO, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating object storage client: %w", err)
	}

	publicEndpoint := strings.TrimSuffix(strings.TrimSpace(cfg.PublicEndpoint), "/")
	if publicEndpoint == "" {
		publicEndpoint = cfg.Endpoint
	}
	if !strings.Contains(publicEndpoint, "://") {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicEndpoint = scheme + "://" + publicEndpoint
	}

	s := &MinIO{
		client:         client,
		bucket:         cfg.Bucket,
		publicEndpoint: publicEndpoint,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket %q: %w", cfg.Bucket, err)
		}
		policy := fmt.Sprintf(publicReadPolicy, cfg.Bucket)
		if err := client.SetBucketPolicy(ctx, cfg.Bucket, policy); err != nil {
			return nil, fmt.Errorf("setting bucket policy: %w", err)
		}
		slog.Info("bucket created", "bucket", cfg.Bucket)
	}

	slog.Info("object storage initialized",
		"endpoint", cfg.Endpoint, "public_endpoint", publicEndpoint, "bucket", cfg.Bucket)
	return s, nil
}

// Upload stores data at the given object path.
func (s *MinIO) Upload(ctx context.Context, objectPath, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectPath,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return fmt.Errorf("uploading %q: %w", objectPath, err)
	}

	slog.Debug("object uploaded", "path", objectPath, "bytes", len(data))
	return nil
}

// PublicURL returns the publicly addressable URL for a stored object.
func (s *MinIO) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicEndpoint, s.bucket, objectPath)
}
