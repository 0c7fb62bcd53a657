// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// Profile-related errors
	ErrProviderNotFound     = errors.New("provider not found")
	ErrOrganizationNotFound = errors.New("organization not found")

	// Project-related errors
	ErrProjectNotFound      = errors.New("project not found")
	ErrPathNotFound         = errors.New("path not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrNoProvidersAvailable = errors.New("no providers available")

	// Translation-related errors
	ErrTranslationNotFound = errors.New("translation not found")

	// Extraction errors wrap the model-provider failure as their cause.
	ErrExtraction = errors.New("extraction failed")
)
