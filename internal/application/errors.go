package application

import "errors"

var (
	// ErrNotFound is returned when no activity with the requested name exists.
	ErrNotFound = errors.New("application: activity not found")
	// ErrAlreadyEnrolled is returned when the email is already on the
	// activity's roster.
	ErrAlreadyEnrolled = errors.New("application: student already signed up")
	// ErrActivityFull is returned when the activity has a positive capacity
	// and the roster has reached it.
	ErrActivityFull = errors.New("application: activity is full")
	// ErrNotEnrolled is returned when unregistering an email that is not on
	// the activity's roster.
	ErrNotEnrolled = errors.New("application: student not signed up")
)

// ValidationError captures field level validation issues that callers can
// surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}
