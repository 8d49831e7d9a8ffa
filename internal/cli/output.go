package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/roster/internal/validation"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (employee not found, invalid input)
	ExitCommandError = 2 // Command error (bad flags, database cannot be opened, etc.)
)

// Error codes reported in CLI output.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeConfig       = "E002" // Config file unreadable or invalid
	ErrCodeDatabase     = "E003" // Database cannot be opened
	ErrCodeInvalidFlag  = "E004" // Flag value rejected
	ErrCodeNotFound     = "E005" // Employee not found
	ErrCodeInvalidInput = "E006" // Employee input failed validation
	ErrCodeWriteFailed  = "E007" // File write error
	ErrCodePhoto        = "E008" // Photo file unreadable or not an image
)

// ExitError represents an error with a specific exit code.
// Commands report the error through the OutputFormatter before returning
// it, so main only needs the code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for warnings and verbose output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status   string    `json:"status"`             // "ok" or "error"
	Data     any       `json:"data,omitempty"`     // success payload
	Error    *CLIError `json:"error,omitempty"`    // error details
	Warnings []string  `json:"warnings,omitempty"` // non-fatal problems, e.g. persistence failures
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E002", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
// In text mode data is printed with fmt; types that want a particular
// rendering implement fmt.Stringer.
func (f *OutputFormatter) Success(data any, warnings ...string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status:   "ok",
			Data:     data,
			Warnings: warnings,
		})
	}

	fmt.Fprintln(f.Writer, data)
	for _, w := range warnings {
		f.Warn("%s", w)
	}
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail reports an error and returns the matching ExitError. Validation
// failures carry their per-field messages as details.
func (f *OutputFormatter) Fail(exitCode int, code, message string, err error) error {
	var details any
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		details = verr.Fields
	case err != nil:
		details = err.Error()
	}
	shown := message
	if f.Format != "json" && err != nil {
		shown = fmt.Sprintf("%s: %v", message, err)
	}
	_ = f.Error(code, shown, details)
	return WrapExitError(exitCode, message, err)
}

// Warn writes a warning to ErrWriter regardless of verbosity.
func (f *OutputFormatter) Warn(format string, args ...any) {
	fmt.Fprintf(f.GetErrWriter(), "Warning: "+format+"\n", args...)
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
