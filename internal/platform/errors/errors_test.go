package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	sentinel := New(CodeUnknownOption, "unknown option")
	err := WithMetadata(CodeUnknownOption, "frequency names unknown option", map[string]string{"option": "Ghost"})

	if !stderrors.Is(err, sentinel) {
		t.Fatal("expected errors.Is to match by code")
	}
	if stderrors.Is(err, New(CodeMalformedSource, "malformed")) {
		t.Fatal("expected different codes not to match")
	}
}

func TestErrorIsThroughFmtWrap(t *testing.T) {
	sentinel := New(CodeMalformedSource, "malformed source")
	err := fmt.Errorf("source 2: %w", Wrap(CodeMalformedSource, "decode yaml", stderrors.New("bad indent")))

	if !stderrors.Is(err, sentinel) {
		t.Fatal("expected wrapped domain error to match sentinel")
	}
	if got := CodeOf(err); got != CodeMalformedSource {
		t.Fatalf("CodeOf = %s, want %s", got, CodeMalformedSource)
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Wrap(CodeMalformedSource, "decode yaml", stderrors.New("bad indent"))
	if got := err.Error(); got != "decode yaml: bad indent" {
		t.Fatalf("unexpected message %q", got)
	}
	if stderrors.Unwrap(err) == nil {
		t.Fatal("expected cause to unwrap")
	}
}

func TestCodeOfUnknown(t *testing.T) {
	if got := CodeOf(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("CodeOf = %s, want %s", got, CodeUnknown)
	}
	if got := CodeOf(nil); got != CodeUnknown {
		t.Fatalf("CodeOf(nil) = %s, want %s", got, CodeUnknown)
	}
}
