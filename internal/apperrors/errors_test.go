package apperrors

import (
	"errors"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		msg      string
		expected string
	}{
		{
			name:     "wrap with message",
			err:      ErrFileNotFound,
			msg:      "opening access.log",
			expected: "opening access.log: log file not found or unreadable",
		},
		{
			name: "wrap nil error",
			err:  nil,
			msg:  "should return nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.msg)
			if tt.err == nil && result != nil {
				t.Errorf("expected nil, got %v", result)
			}
			if tt.err != nil && result.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result.Error())
			}
		})
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrIO, "reading %s at offset %d", "access.log", 4096)
	expected := "reading access.log at offset 4096: i/o error reading log file"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestIs(t *testing.T) {
	wrapped := Wrap(ErrPathEscape, "resolving ../../etc/passwd")
	if !Is(wrapped, ErrPathEscape) {
		t.Error("expected Is to return true for wrapped error")
	}
	if Is(wrapped, ErrFileNotFound) {
		t.Error("expected Is to return false for an unrelated sentinel")
	}
}

func TestMultiError(t *testing.T) {
	multi := NewMultiError()

	if multi.HasErrors() {
		t.Error("new MultiError should not have errors")
	}
	if multi.ErrorOrNil() != nil {
		t.Error("ErrorOrNil should return nil for an empty MultiError")
	}

	multi.Add(ErrIO)
	multi.Add(nil)
	multi.Add(ErrLineOverflow)

	if !multi.HasErrors() {
		t.Error("MultiError should have errors after adding")
	}
	if len(multi.Errors()) != 2 {
		t.Errorf("expected 2 errors, got %d", len(multi.Errors()))
	}
	if !strings.Contains(multi.Error(), "errors occurred") {
		t.Errorf("unexpected error message: %s", multi.Error())
	}

	single := NewMultiError()
	single.Add(ErrInvalidRequest)
	if single.Error() != "invalid search request" {
		t.Errorf("single error message incorrect: %s", single.Error())
	}
}

func TestErrorUnwrapping(t *testing.T) {
	base := errors.New("base error")
	wrapped := Wrap(base, "context")
	if errors.Unwrap(wrapped) != base {
		t.Error("Unwrap did not return base error")
	}
}
