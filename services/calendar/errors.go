package calendar

import (
	"errors"
	"fmt"
)

// ErrDayNotInitialized is returned when a (site, date) ledger is used
// before Initialize has run. A day with no availability is a normal result
// and never produces this error.
var ErrDayNotInitialized = errors.New("calendar day not initialized")

// ValidationError rejects a malformed request at the call boundary.
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
