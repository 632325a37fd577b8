package upload

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/northlane/goalboard/internal/config"
)

var ErrStorageNotConfigured = errors.New("object storage is not configured")

// ObjectStorage is the binary artifact collaborator. Store writes the
// object and returns the storage key it can be fetched back with.
type ObjectStorage interface {
	Store(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
}

type minioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage builds the storage client from STORAGE_* env vars.
// Returns ErrStorageNotConfigured when no endpoint is set, which callers
// treat as "proof files unsupported" rather than a boot failure.
func NewMinioStorage() (ObjectStorage, error) {
	endpoint := os.Getenv("STORAGE_ENDPOINT")
	if endpoint == "" {
		return nil, ErrStorageNotConfigured
	}

	bucket := os.Getenv("STORAGE_BUCKET")
	if bucket == "" {
		bucket = "proof-uploads"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("STORAGE_ACCESS_KEY"), os.Getenv("STORAGE_SECRET_KEY"), ""),
		Secure: os.Getenv("STORAGE_USE_SSL") == "true",
	})
	if err != nil {
		return nil, err
	}

	return &minioStorage{client: client, bucket: bucket}, nil
}

func (s *minioStorage) Store(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	log := config.WithContext(ctx)

	info, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		log.WithError(err).WithField("object", objectName).Error("Failed to store proof artifact")
		return "", err
	}

	log.WithField("object", info.Key).Debug("Stored proof artifact")
	return info.Key, nil
}
