package repository

import (
	"errors"
	"strings"
)

var (
	// ErrExpertNotFound indicates the id does not resolve to an active expert.
	ErrExpertNotFound = errors.New("expert not found")
	// ErrApplicationNotFound indicates the application id doesn't exist.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrAlreadyProcessed indicates the application is no longer pending.
	ErrAlreadyProcessed = errors.New("application already processed")
)

// ValidationError reports missing or out-of-range input. Fields lists the
// missing field names when the failure is a required-field check.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return e.Message + ": " + strings.Join(e.Fields, ", ")
	}
	return e.Message
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
