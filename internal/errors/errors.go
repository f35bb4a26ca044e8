// Package errors provides structured error types and exit codes for cmakecheck.
package errors

import (
	"fmt"
)

// Exit codes. The CLI deliberately collapses every failure category into a
// single non-zero code so that wrapper scripts and CI only need to test
// success/failure.
const (
	ExitSuccess = 0 // Every configuration configured successfully
	ExitFailure = 1 // Any failure (config failed, nothing found, bad preconditions)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindEnvironment
)

// CheckError is the base error type for cmakecheck.
type CheckError struct {
	Kind    ErrorKind
	Message string
	Config  string // Configuration identifier if applicable
	Cause   error  // Underlying error
}

func (e *CheckError) Error() string {
	if e.Config != "" {
		return fmt.Sprintf("[%s] %s", e.Config, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CheckError) Unwrap() error {
	return e.Cause
}

// New creates a new runtime error.
func New(message string) *CheckError {
	return &CheckError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *CheckError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *CheckError {
	return &CheckError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *CheckError {
	return Config(fmt.Sprintf(format, args...))
}

// Environment creates a new environment error.
func Environment(message string) *CheckError {
	return &CheckError{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Environmentf creates a new environment error with formatting.
func Environmentf(format string, args ...interface{}) *CheckError {
	return Environment(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *CheckError {
	return &CheckError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
