package hiits

import (
	"errors"
	"fmt"

	"github.com/2beens/seefit/pkg"
)

var (
	ErrConstraintViolation = errors.New("constraint violation")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)

// storageErr wraps a db error with the operation name, and tags it with
// ErrConstraintViolation or ErrStorageUnavailable when it is one of those.
func storageErr(op string, err error) error {
	switch {
	case pkg.IsConstraintViolationError(err):
		return fmt.Errorf("%s: %w: %w", op, ErrConstraintViolation, err)
	case pkg.IsConnectionError(err):
		return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
