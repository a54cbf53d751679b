package cliutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "merged %d schemas into %s", 12, "generated/m3-total.schema.json")
	want := "merged 12 schemas into generated/m3-total.schema.json"
	if got := buf.String(); got != want {
		t.Errorf("Writef() = %q, want %q", got, want)
	}
}

func TestWritef_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "plain message")
	if got := buf.String(); got != "plain message" {
		t.Errorf("Writef() = %q, want %q", got, "plain message")
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func TestWritef_WriteError(t *testing.T) {
	// Writef must handle write errors gracefully by logging to stderr
	// rather than panicking.
	Writef(errorWriter{}, "this will fail")
}
