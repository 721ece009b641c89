package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a mutate or delete target is absent.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on duplicate ids or when a delete would orphan rows.
	ErrConflict = errors.New("conflict")
	// ErrValidation is returned for missing or malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrUnsupportedMediaType is returned when an upload fails the allow-list.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrUploadFailed is returned when upload bytes could not be persisted.
	ErrUploadFailed = errors.New("upload failed")
	// ErrInvalidCredentials is returned on a login mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden is returned when the deployment disables an operation.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError names the field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
