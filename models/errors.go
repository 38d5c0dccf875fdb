package models

import "errors"

var (
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrUnknownUser         = errors.New("unknown username")
	ErrUnauthenticated     = errors.New("not logged in")
	ErrNoFileProvided      = errors.New("no file provided")
	ErrDisallowedExtension = errors.New("file extension not allowed")
	ErrFileTooLarge        = errors.New("file too large")
	ErrFilenameTooLong     = errors.New("filename too long")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("access to file denied")
)
