package commands

import (
	"flag"
	"strings"
	"testing"
)

// HandleMCP with no arguments would block serving stdio, so only the
// non-blocking paths are tested here. The server itself is covered by the
// mcpserver package's in-memory transport tests.

func TestHandleMCP_Help(t *testing.T) {
	err := HandleMCP([]string{"--help"})
	if err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleMCP_UnexpectedArgs(t *testing.T) {
	err := HandleMCP([]string{"extra"})
	if err == nil {
		t.Fatal("expected error for unexpected arguments")
	}
	if !strings.Contains(err.Error(), "takes no arguments") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestSetupMCPFlags_NoFlags(t *testing.T) {
	// Configuration is environment-based; the command must not grow flags
	// that shadow the SCHEMATOOLS_* variables.
	fs := SetupMCPFlags()

	count := 0
	fs.VisitAll(func(_ *flag.Flag) { count++ })
	if count != 0 {
		t.Errorf("expected no registered flags, got %d", count)
	}
}
