package repository

import (
	"context"

	"filedrop-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FileRepository handles database operations for files
type FileRepository struct {
	db *pgxpool.Pool
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

// Create creates a new file record
func (r *FileRepository) Create(ctx context.Context, file *models.File) error {
	query := `
		INSERT INTO files (
			owner_id, storage_name, display_name, content_type, size
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		file.OwnerID,
		file.StorageName,
		file.DisplayName,
		file.ContentType,
		file.Size,
	).Scan(&file.ID, &file.CreatedAt)
}

// GetByID retrieves a file by ID
func (r *FileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	file := &models.File{}
	query := `
		SELECT id, owner_id, storage_name, display_name, content_type, size, created_at
		FROM files
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.OwnerID,
		&file.StorageName,
		&file.DisplayName,
		&file.ContentType,
		&file.Size,
		&file.CreatedAt,
	)
	if err != nil {
		return nil, mapNoRows(err)
	}

	return file, nil
}

// ListByOwnerID retrieves all files owned by a user
func (r *FileRepository) ListByOwnerID(ctx context.Context, ownerID int64) ([]*models.File, error) {
	query := `
		SELECT id, owner_id, storage_name, display_name, content_type, size, created_at
		FROM files
		WHERE owner_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*models.File
	for rows.Next() {
		file := &models.File{}
		err := rows.Scan(
			&file.ID,
			&file.OwnerID,
			&file.StorageName,
			&file.DisplayName,
			&file.ContentType,
			&file.Size,
			&file.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, rows.Err()
}
