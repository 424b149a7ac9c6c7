package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrModelNotFound   = errors.New("referenced model not found")
	ErrBrandNotFound   = errors.New("brand not found")
	ErrPlateTaken      = errors.New("plate already registered to another vehicle")
	// ErrVehicleGone marks a delete that affected zero rows after the
	// existence check passed (a concurrent delete won the race).
	ErrVehicleGone = errors.New("vehicle already deleted")
)

// StorageError wraps an unexpected backend fault (connectivity, constraint
// violation not caught by the pre-checks). It carries the cause internally but
// is rendered to callers as an opaque failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err in a StorageError for operation op.
func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
