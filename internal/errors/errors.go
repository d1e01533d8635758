// Package errors provides sentinel errors and custom error types for git-branch-name.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotFound indicates that no ancestor directory contains a .git entry
	ErrNotFound = errors.New("not a git repository")

	// ErrIO indicates that a filesystem primitive failed unexpectedly
	ErrIO = errors.New("i/o error")

	// ErrFormat indicates that a .git file or HEAD file has an unrecognized format
	ErrFormat = errors.New("invalid format")

	// ErrUsage indicates invalid command line usage
	ErrUsage = errors.New("invalid usage")
)

// IOError represents a failed filesystem operation on a path
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrIO
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError creates a new IOError
func NewIOError(op, path string, err error) *IOError {
	return &IOError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// FormatError represents a file whose content is not in a recognized format
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

// Is returns true if the target error is ErrFormat
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// NewFormatError creates a new FormatError
func NewFormatError(path, reason string) *FormatError {
	return &FormatError{
		Path:   path,
		Reason: reason,
	}
}

// UsageError represents a command line parsing failure
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrUsage
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// NewUsageError creates a new UsageError
func NewUsageError(err error) *UsageError {
	return &UsageError{Err: err}
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	default:
		return 1
	}
}

// IsSilent reports whether err should exit without a diagnostic line.
func IsSilent(err error) bool {
	return errors.Is(err, ErrNotFound)
}
