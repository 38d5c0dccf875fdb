package config

import (
	"os"
	"path/filepath"
	"testing"

	"filedrop-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "DATABASE_URL", "GIN_MODE", "LOG_LEVEL", "SESSION_SECRET",
		"REDIS_ADDR", "REDIS_PASSWORD", "MAX_UPLOAD_SIZE", "STORAGE_TYPE",
		"STORAGE_LOCAL_PATH", "AWS_S3_BUCKET", "AWS_REGION",
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(32<<20), cfg.MaxUploadSize)
	assert.Equal(t, storage.StorageTypeLocal, cfg.Storage.Type)
	assert.Equal(t, "uploads", cfg.Storage.LocalPath)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_UPLOAD_SIZE", "1024")
	t.Setenv("STORAGE_TYPE", "s3")
	t.Setenv("AWS_S3_BUCKET", "files")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, int64(1024), cfg.MaxUploadSize)
	assert.Equal(t, storage.StorageTypeS3, cfg.Storage.Type)
	assert.Equal(t, "files", cfg.Storage.S3Bucket)
	assert.Equal(t, "us-east-1", cfg.Storage.S3Region)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_UPLOAD_SIZE", "lots")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("STORAGE_TYPE", "s3")
	_, err = Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("STORAGE_TYPE", "ftp")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides a variable that is already set, even to ""
	require.NoError(t, os.Unsetenv("PORT"))
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7777\n"), 0600))

	assert.False(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
	assert.True(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), path))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7777", cfg.Port)
}
