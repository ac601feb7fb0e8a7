package optimizer

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when a site's optimizer is used before
// Initialize has run. An empty recommendation list is a normal result and
// never produces this error.
var ErrNotInitialized = errors.New("table optimizer not initialized")

// ValidationError rejects a table registration or request at the call
// boundary, leaving the registry untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
