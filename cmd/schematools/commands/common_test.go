package commands

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/schematools/corpus"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]string{"test": "value"}

	t.Run("invalid format", func(t *testing.T) {
		err := OutputStructured(data, "invalid")
		if err == nil {
			t.Error("expected error for invalid format")
		}
	})

	t.Run("text is not structured", func(t *testing.T) {
		err := OutputStructured(data, FormatText)
		if err == nil {
			t.Error("expected error for text format")
		}
	})
}

func TestCorpusDirFromArgs(t *testing.T) {
	t.Run("positional argument wins", func(t *testing.T) {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		if err := fs.Parse([]string{"some/dir"}); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		dir, err := CorpusDirFromArgs(fs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir != "some/dir" {
			t.Errorf("expected 'some/dir', got %q", dir)
		}
	})

	t.Run("env override used when no argument", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv(corpus.EnvSchemaDir, tmpDir)

		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		if err := fs.Parse(nil); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		dir, err := CorpusDirFromArgs(fs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir != tmpDir {
			t.Errorf("expected %q, got %q", tmpDir, dir)
		}
	})

	t.Run("invalid env override is an error", func(t *testing.T) {
		t.Setenv(corpus.EnvSchemaDir, "/definitely/not/a/real/dir")

		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		if err := fs.Parse(nil); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		if _, err := CorpusDirFromArgs(fs); err == nil {
			t.Error("expected error for missing override directory")
		}
	})
}

func TestValidateOutputPath(t *testing.T) {
	t.Run("output distinct from inputs", func(t *testing.T) {
		tmpDir := t.TempDir()
		err := ValidateOutputPath(
			filepath.Join(tmpDir, "out.json"),
			[]string{filepath.Join(tmpDir, "m3-item.schema.json")},
		)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("output overwrites input", func(t *testing.T) {
		tmpDir := t.TempDir()
		input := filepath.Join(tmpDir, "m3-item.schema.json")
		err := ValidateOutputPath(input, []string{input})
		if err == nil {
			t.Fatal("expected error when output would overwrite input")
		}
	})

	t.Run("existing output warns but does not error", func(t *testing.T) {
		tmpDir := t.TempDir()
		existing := filepath.Join(tmpDir, "out.json")
		if err := os.WriteFile(existing, []byte("{}"), 0600); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
		if err := ValidateOutputPath(existing, nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestRejectSymlinkOutput(t *testing.T) {
	t.Run("missing path is fine", func(t *testing.T) {
		if err := RejectSymlinkOutput(filepath.Join(t.TempDir(), "nope.json")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("regular file is fine", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
		if err := RejectSymlinkOutput(path); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("symlink is rejected", func(t *testing.T) {
		tmpDir := t.TempDir()
		target := filepath.Join(tmpDir, "target.json")
		if err := os.WriteFile(target, []byte("{}"), 0600); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
		link := filepath.Join(tmpDir, "link.json")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}
		if err := RejectSymlinkOutput(link); err == nil {
			t.Error("expected error for symlink output path")
		}
	})
}
