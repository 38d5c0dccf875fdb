package handlers

import (
	"context"
	"sync"

	"filedrop-backend/models"
)

type memUserRepo struct {
	mu    sync.Mutex
	users []*models.User
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return models.ErrDuplicateUsername
		}
	}
	user.ID = int64(len(r.users) + 1)
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id < 1 || id > int64(len(r.users)) {
		return nil, models.ErrNotFound
	}
	cp := *r.users[id-1]
	return &cp, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

type memFileRepo struct {
	mu    sync.Mutex
	files []*models.File
}

func (r *memFileRepo) Create(ctx context.Context, file *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	file.ID = int64(len(r.files) + 1)
	cp := *file
	r.files = append(r.files, &cp)
	return nil
}

func (r *memFileRepo) GetByID(ctx context.Context, id int64) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id < 1 || id > int64(len(r.files)) {
		return nil, models.ErrNotFound
	}
	cp := *r.files[id-1]
	return &cp, nil
}

func (r *memFileRepo) ListByOwnerID(ctx context.Context, ownerID int64) ([]*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.File
	for _, f := range r.files {
		if f.OwnerID == ownerID {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}
