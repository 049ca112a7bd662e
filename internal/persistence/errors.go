package persistence

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("persistence: not found")
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint, such as two participants with the same email on one
	// activity's roster.
	ErrDuplicate = errors.New("persistence: duplicate record")
	// ErrConstraintViolation is returned when a record fails a schema-level
	// check, such as a blank identifier.
	ErrConstraintViolation = errors.New("persistence: constraint violation")
)
