// Package errors provides structured error types for nugraph.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The three domain failures each have their own code:
//   - MANIFEST_NOT_FOUND: the package archive holds no .nuspec entry
//   - MALFORMED_INPUT: the archive or the manifest XML is invalid
//   - EXTERNAL_TOOL: the graph layout tool failed or could not be started
//
// # Usage
//
//	err := errors.New(errors.ErrCodeManifestNotFound, "no %s entry in %s", ".nuspec", path)
//	if errors.Is(err, errors.ErrCodeManifestNotFound) {
//	    // Handle missing manifest
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedInput, zipErr, "read archive %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Domain errors
	ErrCodeManifestNotFound Code = "MANIFEST_NOT_FOUND"
	ErrCodeMalformedInput   Code = "MALFORMED_INPUT"
	ErrCodeExternalTool     Code = "EXTERNAL_TOOL"

	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidPackage Code = "INVALID_PACKAGE"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message followed by the cause, without the
// code prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// ToolError carries the details of a failed external tool invocation.
// It is used as the Cause of an ErrCodeExternalTool error.
type ToolError struct {
	Tool     string   // Executable that was run
	Args     []string // Arguments passed to the executable
	ExitCode int      // Process exit status, -1 if the process never ran
	Stderr   string   // Captured standard error, trimmed
	Err      error    // Error returned by os/exec
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
	if e.ExitCode < 0 {
		msg = fmt.Sprintf("%s: %v", e.Tool, e.Err)
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Unwrap returns the os/exec error.
func (e *ToolError) Unwrap() error {
	return e.Err
}
