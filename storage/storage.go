package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrBlobNotFound is returned by Download when no blob exists under the name
var ErrBlobNotFound = errors.New("blob not found")

// Storage interface for blob storage operations. Blobs live in a flat
// namespace keyed by storage name.
type Storage interface {
	// Upload stores data under storageName
	Upload(ctx context.Context, storageName string, contentType string, data io.Reader) error

	// Download retrieves a blob by storage name
	Download(ctx context.Context, storageName string) (io.ReadCloser, error)

	// Delete removes a blob by storage name
	Delete(ctx context.Context, storageName string) error
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// DefaultLocalPath is the upload directory used when none is configured
const DefaultLocalPath = "uploads"

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg StorageConfig) (Storage, error) {
	switch cfg.Type {
	case StorageTypeLocal, "":
		if cfg.LocalPath == "" {
			cfg.LocalPath = DefaultLocalPath
		}
		return NewLocalStorage(cfg.LocalPath)
	case StorageTypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET is required for S3 storage")
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
