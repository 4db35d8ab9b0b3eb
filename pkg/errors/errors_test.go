package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "basic error without underlying",
			err:      &Error{Code: ExitCodeGeneral, Message: "test error"},
			expected: "test error",
		},
		{
			name:     "error with underlying",
			err:      &Error{Code: ExitCodeConfig, Message: "config error", Underlying: errors.New("file not found")},
			expected: "config error: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{
		Code:       ExitCodeClipboard,
		Message:    "test error",
		Underlying: underlying,
	}

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
}

func TestNew(t *testing.T) {
	err := New(ExitCodeConfig, "configuration error")

	if err.Code != ExitCodeConfig {
		t.Errorf("Code = %d, want %d", err.Code, ExitCodeConfig)
	}
	if err.Message != "configuration error" {
		t.Errorf("Message = %q, want %q", err.Message, "configuration error")
	}
	if err.Underlying != nil {
		t.Errorf("Underlying = %v, want nil", err.Underlying)
	}
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := New(ExitCodeClipboard, "write rejected")
	wrapped := Wrap(inner, "copy failed")

	if wrapped.Code != ExitCodeClipboard {
		t.Errorf("Code = %d, want %d", wrapped.Code, ExitCodeClipboard)
	}
	if wrapped.Message != "copy failed: write rejected" {
		t.Errorf("Message = %q", wrapped.Message)
	}
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) != nil")
	}
}

func TestIsExitCode(t *testing.T) {
	err := ClipboardWriteError(errors.New("denied"))

	if !IsExitCode(err, ExitCodeClipboard) {
		t.Error("IsExitCode() = false for matching code")
	}
	if IsExitCode(err, ExitCodeConfig) {
		t.Error("IsExitCode() = true for non-matching code")
	}
	if IsExitCode(errors.New("plain"), ExitCodeGeneral) {
		t.Error("IsExitCode() = true for non-Error type")
	}
}

func TestClipboardWriteError(t *testing.T) {
	err := ClipboardWriteError(errors.New("permission denied"))
	if err.Code != ExitCodeClipboard {
		t.Errorf("Code = %d, want %d", err.Code, ExitCodeClipboard)
	}
	if err.Suggestion == "" {
		t.Error("Suggestion is empty")
	}
}

func TestClipboardReadError(t *testing.T) {
	underlying := errors.New("no selection owner")
	err := ClipboardReadError(underlying)

	if !IsExitCode(err, ExitCodeClipboard) {
		t.Errorf("Code = %d, want %d", err.Code, ExitCodeClipboard)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is() lost the underlying error")
	}
}
