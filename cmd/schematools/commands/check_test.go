package commands

import (
	"strings"
	"testing"

	"github.com/erraggy/schematools/internal/testutil"
)

func TestSetupCheckFlags(t *testing.T) {
	fs, flags := SetupCheckFlags()

	t.Run("default values", func(t *testing.T) {
		if flags.FailOnCollision {
			t.Error("expected FailOnCollision to be false by default")
		}
		if flags.Quiet {
			t.Error("expected Quiet to be false by default")
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--fail-on-collision", "-q", "my-schemas"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		if !flags.FailOnCollision {
			t.Error("expected FailOnCollision to be true")
		}
		if !flags.Quiet {
			t.Error("expected Quiet to be true")
		}
		if fs.NArg() != 1 || fs.Arg(0) != "my-schemas" {
			t.Errorf("expected one positional arg 'my-schemas', got %v", fs.Args())
		}
	})
}

func TestHandleCheck_Help(t *testing.T) {
	err := HandleCheck([]string{"--help"})
	if err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleCheck_TooManyArgs(t *testing.T) {
	err := HandleCheck([]string{"dir-one", "dir-two"})
	if err == nil {
		t.Fatal("expected error for extra positional arguments")
	}
	if !strings.Contains(err.Error(), "at most one schema directory") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestHandleCheck_CleanCorpus(t *testing.T) {
	dir := testutil.CorpusDir(t, testutil.MinimalCorpus)

	if err := HandleCheck([]string{"-q", dir}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHandleCheck_MissingDir(t *testing.T) {
	err := HandleCheck([]string{"-q", "/definitely/not/a/real/dir"})
	if err == nil {
		t.Fatal("expected error for missing schema directory")
	}
	if !strings.Contains(err.Error(), "checking corpus") {
		t.Errorf("unexpected error message: %v", err)
	}
}
