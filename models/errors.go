package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure an engine operation can return. Nothing
// here is fatal: callers recover by retrying with corrected input.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "not_found"
	KindNoAvailability   ErrorKind = "no_availability"
	KindInvalidDateRange ErrorKind = "invalid_date_range"
	KindDuplicateKey     ErrorKind = "duplicate_key"
)

// Error carries the failure kind alongside a human-readable message.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf extracts the ErrorKind from err, if it carries one.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// NotFoundf reports an absent guest, room or booking identifier.
func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NoAvailabilityf reports that no room matches the requested type and dates.
func NoAvailabilityf(format string, args ...interface{}) error {
	return &Error{Kind: KindNoAvailability, Message: fmt.Sprintf(format, args...)}
}

// InvalidDateRangef reports a stay or operation outside its valid date window.
func InvalidDateRangef(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidDateRange, Message: fmt.Sprintf(format, args...)}
}

// DuplicateKeyf reports an identifier that is already present on add.
func DuplicateKeyf(format string, args ...interface{}) error {
	return &Error{Kind: KindDuplicateKey, Message: fmt.Sprintf(format, args...)}
}
