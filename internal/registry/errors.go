package registry

import (
	"errors"
	"fmt"
)

// RegistryError is the base interface for all registry client errors.
type RegistryError interface {
	error
	IsRegistryError() bool
}

// Compile-time verification that all error types implement RegistryError.
var (
	_ RegistryError = (*UnavailableError)(nil)
	_ RegistryError = (*NotFoundError)(nil)
	_ RegistryError = (*DecodeError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrEmptySlug indicates a document fetch was attempted without a slug.
	ErrEmptySlug = errors.New("slug must not be empty")
)

// UnavailableError indicates the index endpoint answered with a
// non-success status.
type UnavailableError struct {
	Status int
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("registry unavailable: status %d", e.Status)
}

// IsRegistryError implements RegistryError.
func (e *UnavailableError) IsRegistryError() bool { return true }

// NotFoundError indicates the document endpoint answered with a
// non-success status for the given slug.
type NotFoundError struct {
	Slug   string
	Status int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document %q not found: status %d", e.Slug, e.Status)
}

// IsRegistryError implements RegistryError.
func (e *NotFoundError) IsRegistryError() bool { return true }

// DecodeError indicates the index endpoint returned a body that is not a
// valid index document.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode registry index: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsRegistryError implements RegistryError.
func (e *DecodeError) IsRegistryError() bool { return true }
