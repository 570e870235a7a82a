// services/errors.go - Error taxonomy shared by the service layer.
//
// Handlers translate these into status codes; anything else is a store
// failure and surfaces as a generic 500 after being logged.
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound marks a referenced entity that does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError marks a client-side input problem detected before any
// mutation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConflictError marks a refused mutation: deleting a parent that still owns
// children, or manually awarding an achievement the user already holds.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func conflictf(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// notFound converts gorm's record-not-found into the taxonomy sentinel and
// passes store failures through untouched.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
