// Package errors provides structured error types for pokequiz.
//
// This package defines error codes and types that enable:
//   - Consistent error handling between the data layer and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NOT_FOUND, MISSING_DATA: Resource or field absent
//   - FETCH_FAILED, NETWORK_*: Network-related errors
//   - INTERNAL_*: Unexpected internal errors
//
// # Taxonomy
//
// Two typed errors describe the data layer's terminal failures:
//
//   - [FetchError]: a resource could not be retrieved, either because the
//     attempt budget was exhausted on transient failures or because the
//     server answered with a status that is never retried.
//   - [MissingDataError]: a document was fetched but a field the caller
//     depends on is absent.
//
// Both implement Code() so that [GetCode] and [Is] work on them the same
// way they work on [Error].
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid species name: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	var fe *errors.FetchError
//	if stderrors.As(err, &fe) {
//	    fmt.Println(fe.URL, fe.Attempts)
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidName     Code = "INVALID_NAME"
	ErrCodeInvalidCategory Code = "INVALID_CATEGORY"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Resource errors
	ErrCodeNotFound    Code = "NOT_FOUND"
	ErrCodeMissingData Code = "MISSING_DATA"

	// Network errors
	ErrCodeFetchFailed Code = "FETCH_FAILED"
	ErrCodeNetwork     Code = "NETWORK_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// coded is implemented by every error type in this package.
type coded interface {
	error
	Code() Code
}

// Error is a structured error with a code and optional cause.
type Error struct {
	code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.Message)
}

// Code returns the error code.
func (e *Error) Code() Code { return e.code }

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for the outermost coded error.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	var c coded
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For coded errors, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.message()
	}
	var me *MissingDataError
	if errors.As(err, &me) {
		return me.message()
	}
	return err.Error()
}

// FetchError is the terminal failure of a resource fetch.
//
// Status is the last HTTP status observed, or 0 when the last attempt failed
// before a response was received. Err holds the last observed cause.
type FetchError struct {
	URL      string
	Status   int
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCodeFetchFailed, e.message())
}

func (e *FetchError) message() string {
	msg := fmt.Sprintf("fetch %s failed after %d attempt(s)", e.URL, e.Attempts)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Code returns [ErrCodeFetchFailed].
func (e *FetchError) Code() Code { return ErrCodeFetchFailed }

// Unwrap returns the last observed cause.
func (e *FetchError) Unwrap() error { return e.Err }

// MissingDataError reports a field absent from a successfully fetched document.
type MissingDataError struct {
	Resource string // e.g. "pokemon-species/mew"
	Field    string // e.g. "evolution_chain"
}

// Error implements the error interface.
func (e *MissingDataError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCodeMissingData, e.message())
}

func (e *MissingDataError) message() string {
	return fmt.Sprintf("%s has no %s", e.Resource, e.Field)
}

// Code returns [ErrCodeMissingData].
func (e *MissingDataError) Code() Code { return ErrCodeMissingData }
