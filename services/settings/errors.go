package settings

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when a site's settings are read or patched
// before Initialize has run. Distinct from a validation failure.
var ErrNotInitialized = errors.New("settings not initialized")

// ValidationError rejects a configuration value at the mutating call.
// Prior state is left untouched.
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
