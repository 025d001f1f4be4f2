// Package errors provides structured error types for graphvizier.
//
// Every failure a caller can act on carries a machine-readable [Code]
// alongside its human-readable message, so the CLI can branch on the
// category (reject the document, report a bad flag, surface a Graphviz
// failure) without string matching, while errors.Is/errors.As keep working
// through wrapped chains.
//
// # Error Codes
//
// The INVALID_* codes cover everything user input can get wrong: a DOT
// identifier violating the grammar (INVALID_ID), a malformed or
// inconsistent graph document (INVALID_DOCUMENT), a bad style sheet,
// output format, or policy flag. RENDER_ERROR covers failures inside the
// embedded Graphviz engine, and INTERNAL_ERROR is reserved for conditions
// valid input cannot produce.
//
// # Usage
//
// Construct a fresh error with a code:
//
//	return errors.New(errors.ErrCodeInvalidID,
//	    "invalid identifier %q: must match %s", s, grammar)
//
// Or annotate an underlying failure while assigning the category:
//
//	if err := dec.Decode(&doc); err != nil {
//	    return errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode %s", path)
//	}
//
// Callers branch with [Is] (by code, distinct from stdlib errors.Is) and
// extract display text with [UserMessage].
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
	ErrCodeInvalidID       Code = "INVALID_ID"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"
	ErrCodeInvalidStyle    Code = "INVALID_STYLE"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPolicy   Code = "INVALID_POLICY"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Rendering errors
	ErrCodeRender Code = "RENDER_ERROR"

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

// Is reports whether err carries the given error code, unwrapping the
// chain until an *Error is found. Unlike stdlib errors.Is this compares
// codes, not values, so a wrapped INVALID_DOCUMENT still matches.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
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

// UserMessage returns display text for the error: the message without the
// code prefix for *Error types, or the plain error string otherwise.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
