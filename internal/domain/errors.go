package domain

import (
	"fmt"
)

// ValidationError reports a request that is missing a required field or
// carries a value of the wrong shape.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing target row or a foreign-key reference to a
// row that does not exist.
type NotFoundError struct {
	Resource string
	ID       interface{}
}

func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s with id %v not found", e.Resource, e.ID)
}

func NewNotFoundError(resource string, id interface{}) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError reports a uniqueness violation (email, rfid_code,
// serial_number) or a delete blocked by dependent rows. It is surfaced by the
// storage layer, never pre-checked.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func NewConflictError(format string, args ...interface{}) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}
