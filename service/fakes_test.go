package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"filedrop-backend/models"
	"filedrop-backend/storage"
)

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*models.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return models.ErrDuplicateUsername
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, models.ErrNotFound
}

type memFileRepo struct {
	mu        sync.Mutex
	nextID    int64
	files     map[int64]*models.File
	createErr error
}

func newMemFileRepo() *memFileRepo {
	return &memFileRepo{files: map[int64]*models.File{}}
}

func (r *memFileRepo) Create(ctx context.Context, file *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	file.ID = r.nextID
	file.CreatedAt = time.Now()
	stored := *file
	r.files[file.ID] = &stored
	return nil
}

func (r *memFileRepo) GetByID(ctx context.Context, id int64) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	out := *f
	return &out, nil
}

func (r *memFileRepo) ListByOwnerID(ctx context.Context, ownerID int64) ([]*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.File
	for id := int64(1); id <= r.nextID; id++ {
		if f, ok := r.files[id]; ok && f.OwnerID == ownerID {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memFileRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.files)
}

// spyStorage keeps blobs in memory and counts calls
type spyStorage struct {
	mu        sync.Mutex
	blobs     map[string][]byte
	downloads int
	deletes   int
}

func newSpyStorage() *spyStorage {
	return &spyStorage{blobs: map[string][]byte{}}
}

func (s *spyStorage) Upload(ctx context.Context, storageName string, contentType string, data io.Reader) error {
	b, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.blobs[storageName]; exists {
		return errors.New("blob exists")
	}
	s.blobs[storageName] = b
	return nil
}

func (s *spyStorage) Download(ctx context.Context, storageName string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.downloads++
	b, ok := s.blobs[storageName]
	if !ok {
		return nil, storage.ErrBlobNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *spyStorage) Delete(ctx context.Context, storageName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	delete(s.blobs, storageName)
	return nil
}

func (s *spyStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
