package errors

import (
	"errors"
	"fmt"
)

// Exit codes for rrepo and rdev
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitRuntimeNotFound = 2
	ExitNotARepository  = 3
	ExitAlreadyRepo     = 4
	ExitBadTargetPath   = 5
)

// RkitError is the base error type for rrepo and rdev
type RkitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *RkitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RkitError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *RkitError) ExitCode() int {
	return e.Code
}

// New creates a new RkitError
func New(code int, message string) *RkitError {
	return &RkitError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a RkitError
func Wrap(code int, message string, cause error) *RkitError {
	return &RkitError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// RuntimeNotFound returns an error for a missing R interpreter
func RuntimeNotFound(cause error) *RkitError {
	return Wrap(ExitRuntimeNotFound, "Rscript not found; is R installed and on PATH?", cause)
}

// NotARepository returns an error for a path lacking the repository marker
func NotARepository(path string) *RkitError {
	return New(ExitNotARepository, fmt.Sprintf("%s is not a package repository (no PACKAGES index)", path))
}

// AlreadyRepository returns an error for a path that already carries the marker
func AlreadyRepository(path string) *RkitError {
	return New(ExitAlreadyRepo, fmt.Sprintf("%s is already a package repository", path))
}

// BadTargetPath returns an error for an unusable repository target
func BadTargetPath(path, reason string) *RkitError {
	return New(ExitBadTargetPath, fmt.Sprintf("cannot use %s: %s", path, reason))
}

// ExternalFailure returns an error carrying a subprocess exit code verbatim
func ExternalFailure(code int, script string) *RkitError {
	return New(code, fmt.Sprintf("R exited with status %d running %s", code, script))
}

// SpawnFailed returns an error for a subprocess that could not be started
func SpawnFailed(cause error) *RkitError {
	return Wrap(ExitGeneralError, "failed to start Rscript", cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *RkitError {
	return Wrap(ExitGeneralError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *RkitError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var rkitErr *RkitError
	if errors.As(err, &rkitErr) {
		return rkitErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
