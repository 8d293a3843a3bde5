package assets

import (
	"errors"
	"fmt"
)

var (
	ErrNoAssetsFound = errors.New("no SVGs found")
	ErrConflictingID = errors.New("conflicting icon id")
	ErrWriteFailed   = errors.New("failed to write asset")
)

// ConflictError is returned by LoadAssets when two files resolve to the same id.
type ConflictError struct {
	ID string
	// Relative path of the file that claimed the id first
	Existing string
	// Relative path of the file that collided with it
	Conflicting string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting result from icon id function: '%s' - conflicting input files:\n  - %s\n  - %s",
		e.ID, e.Existing, e.Conflicting)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflictingID
}

// WriteError is returned by WriteAssets when a generated asset cannot be persisted.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write asset %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrWriteFailed, e.Err}
}
