// Package errors defines the coded errors shared by the engine, the renderer
// and the CLI.
//
// Every failure a user can see carries a [Code]. Validation codes
// (INVALID_*, *_NOT_FOUND) mean the request was refused before any work
// started; [IsInvalidInput] groups them. GENERATION_BUSY and the failure
// codes are transient and reported by [IsRetryable].
//
//	if err := palette.Validate(); err != nil {
//	    return errors.Wrap(errors.ErrCodeInvalidPalette, err, "palette %q", name)
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
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidColor      Code = "INVALID_COLOR"
	ErrCodeInvalidPalette    Code = "INVALID_PALETTE"
	ErrCodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle      Code = "INVALID_STYLE"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	// Catalog lookups
	ErrCodeLayoutNotFound  Code = "LAYOUT_NOT_FOUND"
	ErrCodePaletteNotFound Code = "PALETTE_NOT_FOUND"

	// Generation errors
	ErrCodeGenerationBusy    Code = "GENERATION_BUSY"
	ErrCodeGenerationFailure Code = "GENERATION_FAILURE"

	// Export errors
	ErrCodeExportFailure Code = "EXPORT_FAILURE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// invalidInputCodes are the codes that mean "refuse and tell the user".
var invalidInputCodes = map[Code]bool{
	ErrCodeInvalidInput:      true,
	ErrCodeInvalidColor:      true,
	ErrCodeInvalidPalette:    true,
	ErrCodeInvalidDimensions: true,
	ErrCodeInvalidFormat:     true,
	ErrCodeInvalidStyle:      true,
	ErrCodeInvalidPath:       true,
	ErrCodeLayoutNotFound:    true,
	ErrCodePaletteNotFound:   true,
}

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
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsInvalidInput reports whether err is any validation or lookup failure.
func IsInvalidInput(err error) bool {
	return invalidInputCodes[GetCode(err)]
}

// IsRetryable reports whether the user can simply try the same action again.
// Busy and generation failures are transient; validation errors are not.
func IsRetryable(err error) bool {
	switch GetCode(err) {
	case ErrCodeGenerationBusy, ErrCodeGenerationFailure, ErrCodeExportFailure:
		return true
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
