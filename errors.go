package fastbench

import (
	"errors"
	"fmt"
)

// Error represents a fastbench error with an error code
type Error struct {
	Code    ErrorCode
	Message string
	Err     error // wrapped error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fastbench: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("fastbench: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode classifies harness failures
type ErrorCode int

const (
	// Success indicates the operation completed successfully
	Success ErrorCode = 0

	// ErrInvalidConfig indicates a malformed run configuration
	// (tree size < 1, query count < 1). Recovered at the CLI surface
	// by falling back to defaults; fatal when reached programmatically.
	ErrInvalidConfig ErrorCode = -1

	// ErrConstruction indicates an engine failed to build its index.
	// Fatal for that engine's measurement; never retried.
	ErrConstruction ErrorCode = -2

	// ErrUnknownEngine indicates a method name with no registered builder
	ErrUnknownEngine ErrorCode = -3

	// ErrClosed indicates use of an engine after Close
	ErrClosed ErrorCode = -4
)

// Error descriptions
var errorMessages = map[ErrorCode]string{
	Success:          "success",
	ErrInvalidConfig: "invalid configuration",
	ErrConstruction:  "engine construction failed",
	ErrUnknownEngine: "unknown engine",
	ErrClosed:        "engine is closed",
}

// NewError creates a new Error with the given code
func NewError(code ErrorCode) *Error {
	msg, ok := errorMessages[code]
	if !ok {
		msg = fmt.Sprintf("unknown error code %d", code)
	}
	return &Error{Code: code, Message: msg}
}

// Errorf creates a new Error with the given code and a formatted detail
// appended to the code's base message.
func Errorf(code ErrorCode, format string, args ...interface{}) *Error {
	e := NewError(code)
	e.Message = fmt.Sprintf("%s: %s", e.Message, fmt.Sprintf(format, args...))
	return e
}

// WrapError creates a new Error wrapping another error
func WrapError(code ErrorCode, err error) *Error {
	e := NewError(code)
	e.Err = err
	return e
}

// IsCode reports whether err is (or wraps) a fastbench Error with the
// given code.
func IsCode(err error, code ErrorCode) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code == code
	}
	return false
}

// IsInvalidConfig reports whether err is an invalid-configuration error.
func IsInvalidConfig(err error) bool {
	return IsCode(err, ErrInvalidConfig)
}

// IsConstruction reports whether err is an engine construction failure.
func IsConstruction(err error) bool {
	return IsCode(err, ErrConstruction)
}
