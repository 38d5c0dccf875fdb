package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema statements are idempotent so they can run on every startup
var schemaStatements = []struct {
	name string
	sql  string
}{
	{
		name: "users table",
		sql: `CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    username VARCHAR(150) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT users_username_unique UNIQUE (username)
);`,
	},
	{
		name: "files table",
		sql: `CREATE TABLE IF NOT EXISTS files (
    id BIGSERIAL PRIMARY KEY,
    owner_id BIGINT NOT NULL REFERENCES users(id),
    storage_name VARCHAR(255) NOT NULL,
    display_name VARCHAR(255) NOT NULL,
    content_type VARCHAR(255) NOT NULL DEFAULT 'application/octet-stream',
    size BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT files_storage_name_unique UNIQUE (storage_name)
);`,
	},
	{
		name: "files owner index",
		sql:  "CREATE INDEX IF NOT EXISTS idx_files_owner_id ON files(owner_id);",
	},
}

// EnsureSchema creates the users and files tables if they do not exist
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt.sql); err != nil {
			return fmt.Errorf("failed to create %s: %w", stmt.name, err)
		}
	}
	return nil
}
