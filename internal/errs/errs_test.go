package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	err := New(CodeTimeout)
	if CodeOf(err) != CodeTimeout {
		t.Errorf("Expected CodeTimeout, got %s", CodeOf(err))
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if CodeOf(wrapped) != CodeTimeout {
		t.Errorf("Expected CodeTimeout through wrapping, got %s", CodeOf(wrapped))
	}

	if CodeOf(errors.New("plain")) != "" {
		t.Error("Expected empty code for untyped error")
	}
}

func TestUserMessage(t *testing.T) {
	if msg := UserMessage(New(CodeDuplicateEntry)); msg != "该生词已存在" {
		t.Errorf("Unexpected message: %s", msg)
	}

	// Untyped errors must not leak raw text to users.
	if msg := UserMessage(errors.New("dial tcp: connection refused")); msg != genericMessage {
		t.Errorf("Expected generic message, got: %s", msg)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("engine exploded")
	err := Wrap(CodeTranslationFailed, cause)

	if !errors.Is(err, cause) {
		t.Error("Wrapped error should match its cause via errors.Is")
	}
	if CodeOf(err) != CodeTranslationFailed {
		t.Errorf("Expected CodeTranslationFailed, got %s", CodeOf(err))
	}
}

func TestWrapNil(t *testing.T) {
	// Assigned through the error interface: a typed nil here would
	// read as non-nil at every call site.
	var err error = Wrap(CodeSaveFailed, nil)
	if err != nil {
		t.Errorf("Wrap(nil) should be a nil error, got %v", err)
	}
}

func TestWrapSameCodeDoesNotStack(t *testing.T) {
	inner := Wrapf(CodeTimeout, "no response after 30s")
	outer := Wrap(CodeTimeout, inner)
	if outer != inner {
		t.Error("Re-wrapping with the same code should return the inner error")
	}
}

func TestErrorsIsByCode(t *testing.T) {
	err := Wrapf(CodeTransportFailed, "broken pipe")
	if !errors.Is(err, New(CodeTransportFailed)) {
		t.Error("errors.Is should match typed errors by code")
	}
	if errors.Is(err, New(CodeTimeout)) {
		t.Error("errors.Is should not match a different code")
	}
}
