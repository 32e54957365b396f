package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidShape, "unknown shape: %s", "pyramid")

	if err.Code != ErrCodeInvalidShape {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidShape)
	}
	if err.Message != "unknown shape: pyramid" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Error("New should not set a cause")
	}

	want := "INVALID_SHAPE: unknown shape: pyramid"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := Wrap(ErrCodeMalformedDocument, cause, "decode %s", "layout.json")

	if err.Cause != cause {
		t.Error("Wrap should preserve the cause")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeDocumentNotFound, "no layout with id %s", "abc")

	if !Is(err, ErrCodeDocumentNotFound) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(errors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match non-structured errors")
	}
	if Is(nil, ErrCodeInternal) {
		t.Error("Is should not match nil")
	}

	// Codes survive fmt.Errorf wrapping.
	wrapped := fmt.Errorf("read config: %w", err)
	if !Is(wrapped, ErrCodeDocumentNotFound) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeStoreUnavailable, "redis down")); got != ErrCodeStoreUnavailable {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeStoreUnavailable)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := Wrap(ErrCodeMalformedDocument, errors.New("boom"), "layout document is not valid JSON")
	if got := UserMessage(err); got != "layout document is not valid JSON" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := errors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
