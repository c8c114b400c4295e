package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore persists uploaded content in an S3-compatible object store.
// The returned location is the object key inside the configured bucket.
type ObjectStore struct {
	client *minio.Client
	cfg    S3Config
	logger Logger
}

// NewObjectStore creates and validates a new object store client.
// It establishes the connection and ensures the configured bucket exists,
// creating it when absent.
func NewObjectStore(cfg S3Config, logger Logger) (*ObjectStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("storage: s3 endpoint cannot be empty")
	}
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("storage: s3 bucket name cannot be empty")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: connecting to object store: %w", err)
	}

	s := &ObjectStore{
		client: client,
		cfg:    cfg,
		logger: logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.ensureBucketExists(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// ensureBucketExists checks if the configured bucket exists and creates it if necessary.
func (s *ObjectStore) ensureBucketExists(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.BucketName)
	if err != nil {
		return fmt.Errorf("storage: checking bucket %q: %w", s.cfg.BucketName, classifyObjectError(err))
	}

	if !exists {
		if s.logger != nil {
			s.logger.Info("Bucket does not exist, creating it", nil, map[string]interface{}{
				"bucket": s.cfg.BucketName,
				"region": s.cfg.Region,
			})
		}

		if err := s.client.MakeBucket(ctx, s.cfg.BucketName, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
			return fmt.Errorf("storage: creating bucket %q: %w", s.cfg.BucketName, classifyObjectError(err))
		}
	}

	return nil
}

// Write uploads the reader's contents under the given object key.
// Object storage PUTs are atomic at the key level, so an interrupted upload
// never leaves a partial object discoverable under the final name.
func (s *ObjectStore) Write(ctx context.Context, name string, r io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, s.cfg.BucketName, name, r, -1, minio.PutObjectOptions{
		ContentType: "application/pdf",
	})
	if err != nil {
		return "", classifyObjectError(err)
	}
	return name, nil
}

// Delete removes the object at the given key. A missing object is treated as
// already deleted.
func (s *ObjectStore) Delete(ctx context.Context, location string) error {
	err := s.client.RemoveObject(ctx, s.cfg.BucketName, location, minio.RemoveObjectOptions{})
	if err != nil && !isNoSuchKey(err) {
		return classifyObjectError(err)
	}
	return nil
}

// Exists reports whether an object is present at the given key.
func (s *ObjectStore) Exists(ctx context.Context, location string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.cfg.BucketName, location, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return false, nil
		}
		return false, classifyObjectError(err)
	}
	return true, nil
}

// classifyObjectError maps MinIO errors onto the package's error kinds.
func classifyObjectError(err error) error {
	if err == nil {
		return nil
	}

	switch minio.ToErrorResponse(err).Code {
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return errors.Join(ErrPermission, err)
	default:
		// Everything else, including transport failures (empty code), is an
		// i/o failure from the pipeline's point of view.
		return errors.Join(ErrIO, err)
	}
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
