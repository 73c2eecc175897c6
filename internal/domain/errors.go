package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrStorage           = errors.New("storage error")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrReferenceNotFound = errors.New("referenced record does not exist")
)

// StorageError reports a failure of the backing store: connectivity
// problems or a rejected write. Err is either a driver error or one of
// the constraint sentinels above.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError wraps err for the named operation.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, ErrStorage)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets callers match any StorageError with errors.Is(err, ErrStorage).
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
