package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage implements Storage interface for local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	// Create base directory if it doesn't exist
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
	}, nil
}

// BasePath returns the directory blobs are written to
func (s *LocalStorage) BasePath() string {
	return s.basePath
}

func (s *LocalStorage) path(storageName string) (string, error) {
	if !validStorageName(storageName) {
		return "", fmt.Errorf("invalid storage name: %q", storageName)
	}
	return filepath.Join(s.basePath, storageName), nil
}

// Upload stores a file locally
func (s *LocalStorage) Upload(ctx context.Context, storageName string, contentType string, data io.Reader) error {
	fullPath, err := s.path(storageName)
	if err != nil {
		return err
	}

	// O_EXCL: a storage name is never reused
	file, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err = io.Copy(file, data); err != nil {
		file.Close()
		os.Remove(fullPath) // Clean up on error
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(fullPath)
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Download retrieves a file from local storage
func (s *LocalStorage) Download(ctx context.Context, storageName string) (io.ReadCloser, error) {
	fullPath, err := s.path(storageName)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, storageName)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Delete removes a file from local storage
func (s *LocalStorage) Delete(ctx context.Context, storageName string) error {
	fullPath, err := s.path(storageName)
	if err != nil {
		return err
	}

	err = os.Remove(fullPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
