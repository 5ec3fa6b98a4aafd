package services

import "errors"

// Define common service errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict") // e.g., invalid reference, duplicate key
)
