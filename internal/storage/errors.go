// ABOUTME: Error taxonomy for the workout log store.
// ABOUTME: StorageError wraps driver failures; ErrWorkoutNotFound marks missing ids.
package storage

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrWorkoutNotFound is returned when an id addresses no workout entry.
var ErrWorkoutNotFound = errors.New("workout not found")

// StorageError reports that the backing database could not open, prepare or
// execute a statement. The operation had no effect.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageFailure reports whether err is, or wraps, a StorageError.
func IsStorageFailure(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// storageFailure logs the failure and wraps it for the caller.
func storageFailure(op string, err error) error {
	logrus.WithError(err).WithField("op", op).Error("storage failure")
	return &StorageError{Op: op, Err: err}
}
