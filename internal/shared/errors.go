package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrInvalidCredentials = fmt.Errorf("invalid username or password")
	ErrUnauthorized       = fmt.Errorf("login required")
	ErrTooManyAttempts    = fmt.Errorf("too many login attempts")

	// Storage errors
	ErrNotFound     = fmt.Errorf("not found")
	ErrNoMigrations = fmt.Errorf("no migrations to rollback")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrCancelled       = fmt.Errorf("cancelled by user")
)
