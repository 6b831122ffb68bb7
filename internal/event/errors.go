package event

import (
	"errors"
	"fmt"
)

// Error is the domain error returned by the store and the codec.
//
// Error kinds:
//   - Capacity exceeded: the store already holds its maximum number of events
//   - Not found: no event carries the requested id
//   - Invalid value: a date, time, priority or text field is out of range
//   - Malformed record: a persisted line did not parse (skipped on load)
//   - I/O: the data file could not be opened, read or written
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// ID is the event id involved, if any.
	ID int

	// Field names the offending field for invalid values.
	Field string

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes domain errors.
type ErrorCode string

const (
	// ErrCodeCapacityExceeded indicates the store is full.
	ErrCodeCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED"

	// ErrCodeNotFound indicates an unknown event id.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeInvalidValue indicates a field outside its allowed range.
	ErrCodeInvalidValue ErrorCode = "INVALID_VALUE"

	// ErrCodeMalformedRecord indicates a persisted record that does not parse.
	ErrCodeMalformedRecord ErrorCode = "MALFORMED_RECORD"

	// ErrCodeIO indicates a file open, read or write failure.
	ErrCodeIO ErrorCode = "IO_ERROR"
)

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	switch {
	case e.ID != 0 && e.Field != "":
		msg = fmt.Sprintf("%s (id=%d, field=%s)", msg, e.ID, e.Field)
	case e.ID != 0:
		msg = fmt.Sprintf("%s (id=%d)", msg, e.ID)
	case e.Field != "":
		msg = fmt.Sprintf("%s (field=%s)", msg, e.Field)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewCapacityExceeded creates an Error for a full store.
func NewCapacityExceeded(capacity int) *Error {
	return &Error{
		Code:    ErrCodeCapacityExceeded,
		Message: fmt.Sprintf("schedule is full (%d events)", capacity),
	}
}

// NewNotFound creates an Error for an unknown id.
func NewNotFound(id int) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: "event not found",
		ID:      id,
	}
}

// NewInvalidValue creates an Error for a field that failed validation.
func NewInvalidValue(field, message string) *Error {
	return &Error{
		Code:    ErrCodeInvalidValue,
		Message: message,
		Field:   field,
	}
}

// NewMalformedRecord creates an Error for a persisted record that did not parse.
func NewMalformedRecord(message string, err error) *Error {
	return &Error{
		Code:    ErrCodeMalformedRecord,
		Message: message,
		Err:     err,
	}
}

// NewIO wraps a file system failure.
func NewIO(message string, err error) *Error {
	return &Error{
		Code:    ErrCodeIO,
		Message: message,
		Err:     err,
	}
}

// HasCode reports whether err is, or wraps, an *Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsCapacityExceeded returns true if err reports a full store.
func IsCapacityExceeded(err error) bool { return HasCode(err, ErrCodeCapacityExceeded) }

// IsNotFound returns true if err reports an unknown id.
func IsNotFound(err error) bool { return HasCode(err, ErrCodeNotFound) }

// IsInvalidValue returns true if err reports a field validation failure.
func IsInvalidValue(err error) bool { return HasCode(err, ErrCodeInvalidValue) }

// IsMalformedRecord returns true if err reports an unparseable record.
func IsMalformedRecord(err error) bool { return HasCode(err, ErrCodeMalformedRecord) }

// IsIO returns true if err reports a file system failure.
func IsIO(err error) bool { return HasCode(err, ErrCodeIO) }
