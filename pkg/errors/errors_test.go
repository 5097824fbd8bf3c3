package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		publicMsg string
		retryable bool
	}{
		{code: CodeValidation, publicMsg: "validation failed"},
		{code: CodeUnauthorized, publicMsg: "authentication required"},
		{code: CodeNotFound, publicMsg: "resource not found"},
		{code: CodeRemote, publicMsg: "the store could not process the request", retryable: true},
		{code: CodeNetwork, publicMsg: "network error occurred", retryable: true},
		{code: CodeInternal, publicMsg: "internal error"},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.PublicMessage != "internal error" {
		t.Fatalf("expected internal fallback, got %q", meta.PublicMessage)
	}
}

func TestCodeForStatus(t *testing.T) {
	tests := []struct {
		status int
		code   Code
	}{
		{http.StatusBadRequest, CodeValidation},
		{http.StatusUnprocessableEntity, CodeValidation},
		{http.StatusUnauthorized, CodeUnauthorized},
		{http.StatusForbidden, CodeUnauthorized},
		{http.StatusNotFound, CodeNotFound},
		{http.StatusConflict, CodeRemote},
		{http.StatusInternalServerError, CodeRemote},
		{http.StatusServiceUnavailable, CodeRemote},
	}
	for _, tt := range tests {
		if got := CodeForStatus(tt.status); got != tt.code {
			t.Fatalf("status %d expected %s got %s", tt.status, tt.code, got)
		}
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := Wrap(CodeNetwork, cause, "")
	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if UserMessage(err) != "network error occurred" {
		t.Fatalf("expected network fallback, got %q", UserMessage(err))
	}
}

func TestUserMessagePrefersTypedMessage(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeValidation, "email already registered"))
	if UserMessage(err) != "email already registered" {
		t.Fatalf("expected server message, got %q", UserMessage(err))
	}
	if !IsCode(err, CodeValidation) {
		t.Fatal("expected validation code through wrapping")
	}
}

func TestUserMessageUntypedError(t *testing.T) {
	if UserMessage(stdErrors.New("boom")) != "internal error" {
		t.Fatal("untyped errors must not leak raw messages to the UI")
	}
}
