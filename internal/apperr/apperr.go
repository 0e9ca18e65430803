// Package apperr defines the error kinds shared by stores and flows.
package apperr

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrNotFound reports a mutation whose target row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAuthMismatch reports that no credential matches both fields.
	ErrAuthMismatch = errors.New("invalid username or password")
	// ErrWriteFailed reports a write that errored or affected zero rows.
	ErrWriteFailed = errors.New("write failed")
	// ErrNoTarget reports a delete attempted on an unsaved draft.
	ErrNoTarget = errors.New("no note to delete")
)

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}
