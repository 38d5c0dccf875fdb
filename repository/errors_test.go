package repository

import (
	"errors"
	"fmt"
	"testing"

	"filedrop-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.False(t, isUniqueViolation(nil))
}

func TestMapNoRows(t *testing.T) {
	assert.ErrorIs(t, mapNoRows(pgx.ErrNoRows), models.ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapNoRows(other))
}

func TestSchemaStatementsAreIdempotent(t *testing.T) {
	for _, stmt := range schemaStatements {
		assert.Contains(t, stmt.sql, "IF NOT EXISTS", stmt.name)
	}
}
