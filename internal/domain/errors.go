// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	// Auth-related errors
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidRefreshToken   = errors.New("invalid refresh token")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrStorageNotConfigured  = errors.New("object storage is not configured")
	ErrUnsupportedUploadType = errors.New("unsupported upload content type")

	// Entity lookups. All of them match ErrNotFound.
	ErrCompanyNotFound               = fmt.Errorf("company %w", ErrNotFound)
	ErrUserNotFound                  = fmt.Errorf("user %w", ErrNotFound)
	ErrAssetNotFound                 = fmt.Errorf("asset %w", ErrNotFound)
	ErrPartNotFound                  = fmt.Errorf("part %w", ErrNotFound)
	ErrPreventiveMaintenanceNotFound = fmt.Errorf("preventive maintenance %w", ErrNotFound)
	ErrWorkOrderNotFound             = fmt.Errorf("work order %w", ErrNotFound)
	ErrRefreshTokenNotFound          = fmt.Errorf("refresh token %w", ErrNotFound)
)

// ValidationError carries every failed rule of a request, in rule order.
type ValidationError struct {
	Errors []string
}

func NewValidationError(errs ...string) *ValidationError {
	return &ValidationError{Errors: errs}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
