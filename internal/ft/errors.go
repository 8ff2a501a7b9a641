package ft

import (
	"errors"
	"fmt"
	"os"
)

// Category classifies a failure for the front-end: flag mode reports any of
// them and exits non-zero, interactive mode re-prompts on NotFound and
// InvalidInput during input collection and abandons the current operation
// otherwise.
type Category string

const (
	CategoryNotFound     Category = "not_found"
	CategoryAccessDenied Category = "access_denied"
	CategoryInvalidInput Category = "invalid_input"
	CategoryOSFailure    Category = "os_failure"
)

// OpError is a failure tagged with its category and, where known, the path
// involved. The wrapped error carries the diagnostic text.
type OpError struct {
	Category Category
	Path     string
	Err      error
}

func (e *OpError) Error() string { return e.Err.Error() }

func (e *OpError) Unwrap() error { return e.Err }

// CategoryOf extracts the category from an error chain. Errors that carry
// no OpError are treated as OS failures.
func CategoryOf(err error) Category {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Category
	}
	return CategoryOSFailure
}

// Classify tags an OS-level failure on the given path with its category:
// missing paths map to NotFound, permission failures to AccessDenied, and
// anything else to OSFailure.
func Classify(path string, err error) *OpError {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return &OpError{
			Category: CategoryNotFound,
			Path:     path,
			Err:      fmt.Errorf("file '%s' does not exist", path),
		}
	case errors.Is(err, os.ErrPermission):
		return &OpError{Category: CategoryAccessDenied, Path: path, Err: err}
	default:
		return &OpError{Category: CategoryOSFailure, Path: path, Err: err}
	}
}
