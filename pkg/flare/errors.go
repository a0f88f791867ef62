package flare

import (
	"errors"

	"github.com/slok/flare/internal/stack"
)

var (
	// ErrNotFound is returned when a resource (e.g. a stored crash report)
	// is not found.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when a resource already exists.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrNotValid is returned when a value is not valid.
	ErrNotValid = errors.New("not valid")
)

// StackFromError returns the stack trace recorded on err or any error it
// wraps, or an empty string when none carries one. It understands errors
// created with github.com/pkg/errors, so a trace recorded at the failure
// origin can be fed to [ErrorOpts.StackTrace]:
//
//	logger.Error("Sync failed", &flare.ErrorOpts{
//		Err:        err,
//		StackTrace: flare.StackFromError(err),
//	})
func StackFromError(err error) string {
	return stack.FromError(err)
}
