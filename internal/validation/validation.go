// Package validation holds the field checks shared by the request handlers
// and the tracker.
package validation

import (
	"strings"
	"time"
)

// FieldError is a user-correctable input error. Handlers map it to a 400
// rather than a 500.
type FieldError string

func (e FieldError) Error() string { return string(e) }

// ValidateRequired checks that a field is not blank.
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return FieldError(fieldName + " is required")
	}
	return nil
}

// ValidateEmail does a basic format check.
func ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return FieldError("email must have a valid format")
	}
	return nil
}

// ValidateDate checks that a date was supplied.
func ValidateDate(date *time.Time, fieldName string) error {
	if date == nil || date.IsZero() {
		return FieldError(fieldName + " is required")
	}
	return nil
}

// ValidateNonNegative rejects negative counts.
func ValidateNonNegative(value int, fieldName string) error {
	if value < 0 {
		return FieldError(fieldName + " cannot be negative")
	}
	return nil
}
