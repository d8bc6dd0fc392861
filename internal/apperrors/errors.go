// Package apperrors collects the sentinel error values and wrapping helpers
// shared by the reverse-tail core and its HTTP front end.
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the core's terminal outcomes (see spec §7).
var (
	// ErrPathEscape is returned when a requested file resolves outside the
	// configured logs root.
	ErrPathEscape = errors.New("resolved path escapes logs directory")

	// ErrFileNotFound is returned when the requested file does not exist
	// or cannot be opened for reading.
	ErrFileNotFound = errors.New("log file not found or unreadable")

	// ErrInvalidRequest is returned for malformed request parameters
	// (negative/non-integer total, empty file name, and so on).
	ErrInvalidRequest = errors.New("invalid search request")

	// ErrLineOverflow is returned when a line (or an accumulating suffix)
	// would exceed the configured maximum line length.
	ErrLineOverflow = errors.New("line exceeds maximum line length")

	// ErrIO wraps an underlying, non-EOF read failure.
	ErrIO = errors.New("i/o error reading log file")
)

// Wrap wraps an error with additional context, returning nil if err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with formatted context, returning nil if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether err matches target anywhere in its chain.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain assignable to target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// MultiError accumulates independent failures from a batch operation (the
// fixture generator uses this to report per-file failures without aborting
// the whole batch).
type MultiError struct {
	errors []error
}

// NewMultiError creates an empty MultiError.
func NewMultiError() *MultiError {
	return &MultiError{}
}

// Add records err, ignoring nil.
func (m *MultiError) Add(err error) {
	if err != nil {
		m.errors = append(m.errors, err)
	}
}

// HasErrors reports whether any error was added.
func (m *MultiError) HasErrors() bool {
	return len(m.errors) > 0
}

// Error implements the error interface.
func (m *MultiError) Error() string {
	switch len(m.errors) {
	case 0:
		return ""
	case 1:
		return m.errors[0].Error()
	default:
		return fmt.Sprintf("%d errors occurred: %v", len(m.errors), m.errors)
	}
}

// Errors returns all collected errors.
func (m *MultiError) Errors() []error {
	return m.errors
}

// ErrorOrNil returns nil if no errors were collected, otherwise m.
func (m *MultiError) ErrorOrNil() error {
	if m.HasErrors() {
		return m
	}
	return nil
}
