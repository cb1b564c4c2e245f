package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// TestNewConfigError verifies message formatting and type identity.
func TestNewConfigError(t *testing.T) {
	t.Parallel()

	err := NewConfigError("invalid worker count: %d", 0)
	if err.Error() != "invalid worker count: 0" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigError, got %T", err)
	}
}

// TestMismatchError verifies the formatted message includes all fields.
func TestMismatchError(t *testing.T) {
	t.Parallel()

	err := MismatchError{Strategy: "Atomic-based", Got: 41, Want: 42}
	want := `strategy "Atomic-based" produced sum 41, baseline is 42`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// TestWrapError verifies %w wrapping and nil passthrough.
func TestWrapError(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")
	wrapped := WrapError(base, "running %s", "Lock-based")
	if !errors.Is(wrapped, base) {
		t.Errorf("wrapped error should match base via errors.Is")
	}
	if wrapped.Error() != "running Lock-based: boom" {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}

	if WrapError(nil, "ignored") != nil {
		t.Errorf("WrapError(nil) should return nil")
	}
}

// TestIsContextError covers both context sentinel errors and an unrelated error.
func TestIsContextError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("run: %w", context.Canceled), true},
		{"other", errors.New("other"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestExitCodeForError verifies the error-to-exit-code mapping.
func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"timeout", context.DeadlineExceeded, ExitErrorTimeout},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"mismatch", MismatchError{Strategy: "x"}, ExitErrorMismatch},
		{"wrapped mismatch", WrapError(MismatchError{Strategy: "x"}, "driver"), ExitErrorMismatch},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
