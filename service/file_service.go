package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"filedrop-backend/models"
	"filedrop-backend/storage"

	"github.com/sirupsen/logrus"
)

// allowedExtensions is the fixed upload allow-list
var allowedExtensions = map[string]bool{
	"txt":  true,
	"pdf":  true,
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"doc":  true,
	"docx": true,
}

// MaxFilenameLength caps the client filename and its sanitized form, in bytes.
// The storage name adds a 37-byte uuid prefix and must fit filesystem and
// column limits of 255.
const MaxFilenameLength = 200

// AllowedExtensions returns the upload allow-list in sorted order
func AllowedExtensions() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// IsAllowedFile reports whether the lowercased text after the last dot of
// filename is in the allow-list. Names without a dot are rejected.
func IsAllowedFile(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[idx+1:])]
}

// FileService handles business logic for uploaded files
type FileService struct {
	fileRepo FileRepository
	storage  storage.Storage
	log      logrus.FieldLogger
}

// FileServiceOption is a functional option for FileService
type FileServiceOption func(*FileService)

// WithFileRepository sets the file repository
func WithFileRepository(repo FileRepository) FileServiceOption {
	return func(s *FileService) {
		s.fileRepo = repo
	}
}

// WithStorage sets the blob storage
func WithStorage(st storage.Storage) FileServiceOption {
	return func(s *FileService) {
		s.storage = st
	}
}

// FileWithLogger sets the logger
func FileWithLogger(log logrus.FieldLogger) FileServiceOption {
	return func(s *FileService) {
		s.log = log
	}
}

// NewFileService creates a new file service
func NewFileService(opts ...FileServiceOption) *FileService {
	s := &FileService{log: discardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UploadRequest represents a file to store
type UploadRequest struct {
	Filename string // As supplied by the client, unsanitized
	Size     int64
	Data     io.Reader
}

func (s *FileService) ready() error {
	if s.fileRepo == nil {
		return errors.New("file repository not set")
	}
	if s.storage == nil {
		return errors.New("storage not set")
	}
	return nil
}

// Upload validates and stores a file for user
func (s *FileService) Upload(ctx context.Context, user *models.User, req UploadRequest) (*models.File, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrUnauthenticated
	}
	if req.Filename == "" || req.Size <= 0 || req.Data == nil {
		return nil, models.ErrNoFileProvided
	}
	if !IsAllowedFile(req.Filename) {
		return nil, models.ErrDisallowedExtension
	}
	if len(req.Filename) > MaxFilenameLength || len(storage.SanitizeFilename(req.Filename)) > MaxFilenameLength {
		return nil, models.ErrFilenameTooLong
	}

	storageName := storage.GenerateStorageName(req.Filename)
	contentType := storage.ContentType(req.Filename)

	if err := s.storage.Upload(ctx, storageName, contentType, req.Data); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	file := &models.File{
		OwnerID:     user.ID,
		StorageName: storageName,
		DisplayName: req.Filename,
		ContentType: contentType,
		Size:        req.Size,
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		// Try to clean up stored blob
		if delErr := s.storage.Delete(ctx, storageName); delErr != nil {
			s.log.WithError(delErr).WithField("storage_name", storageName).Warn("failed to remove orphaned blob")
		}
		return nil, fmt.Errorf("failed to save file record: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id":      user.ID,
		"file_id":      file.ID,
		"storage_name": storageName,
		"size":         file.Size,
	}).Info("file uploaded")
	return file, nil
}

// ListFiles returns every file owned by user
func (s *FileService) ListFiles(ctx context.Context, user *models.User) ([]*models.File, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrUnauthenticated
	}

	files, err := s.fileRepo.ListByOwnerID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	if files == nil {
		files = []*models.File{}
	}
	return files, nil
}

// Download opens the blob of a file owned by user. The caller must close the
// returned reader.
func (s *FileService) Download(ctx context.Context, user *models.User, fileID int64) (io.ReadCloser, *models.File, error) {
	if err := s.ready(); err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, models.ErrUnauthenticated
	}

	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil, models.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to load file record: %w", err)
	}

	// Ownership is the only access boundary; ids are sequential and guessable
	if !file.OwnedBy(user) {
		s.log.WithFields(logrus.Fields{"user_id": user.ID, "file_id": file.ID}).Warn("download of foreign file refused")
		return nil, nil, models.ErrForbidden
	}

	reader, err := s.storage.Download(ctx, file.StorageName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	return reader, file, nil
}
