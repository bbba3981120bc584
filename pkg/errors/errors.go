// Package errors provides structured error types for the easel layout engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: construction-time validation failures (box models, scenes)
//   - UNRESOLVED_* / CYCLIC_*: positioning failures during layout resolution
//   - INTERNAL_*: unexpected internal errors
//
// All layout errors are per-diagram construction errors: they are raised
// synchronously at the call that triggers resolution and are never fatal at
// the process level. There is no retry machinery; the caller fixes the
// construction (attach the target first, break the cycle) and resolves again.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidBoxModel, "negative padding: %g", v)
//	if errors.Is(err, errors.ErrCodeInvalidBoxModel) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidScene, origErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Construction-time validation errors
	ErrCodeInvalidBoxModel  Code = "INVALID_BOX_MODEL"
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION"
	ErrCodeInvalidScene     Code = "INVALID_SCENE"
	ErrCodeUnknownOption    Code = "UNKNOWN_OPTION"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"

	// Layout resolution errors
	ErrCodeUnresolvedTarget     Code = "UNRESOLVED_TARGET"
	ErrCodeCyclicPosition       Code = "CYCLIC_POSITION"
	ErrCodeDetachedElement      Code = "DETACHED_ELEMENT"
	ErrCodeUnmeasurableAutoSize Code = "UNMEASURABLE_AUTO_SIZE"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
//
// ErrCodeCyclicPosition is a specialization of ErrCodeUnresolvedTarget: a
// cyclic-position error also matches ErrCodeUnresolvedTarget, so callers that
// only care about "the target could not be resolved" need a single check.
func Is(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	if e.Code == code {
		return true
	}
	return code == ErrCodeUnresolvedTarget && e.Code == ErrCodeCyclicPosition
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
