package service

import (
	"context"

	"filedrop-backend/models"
)

// UserRepository is the identity store used by AuthService
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// FileRepository is the file registry used by FileService
type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id int64) (*models.File, error)
	ListByOwnerID(ctx context.Context, ownerID int64) ([]*models.File, error)
}
