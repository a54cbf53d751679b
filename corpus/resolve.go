package corpus

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvSchemaDir is the environment variable that overrides the corpus
	// directory location.
	EnvSchemaDir = "SCHEMATOOLS_SCHEMA_DIR"
	// DefaultSchemaDir is the corpus location used when EnvSchemaDir is
	// not set.
	DefaultSchemaDir = "sm-json-data/schema"
)

// ResolveDir returns the canonical schema corpus directory: the
// EnvSchemaDir override when set, the fixed default otherwise. The chosen
// path must exist and be a directory; anything else is an error, so a bad
// override never falls back silently.
func ResolveDir() (string, error) {
	if override := os.Getenv(EnvSchemaDir); override != "" {
		resolved, err := CanonicalDir(override)
		if err != nil {
			return "", fmt.Errorf("corpus: invalid schema directory in %s: %w", EnvSchemaDir, err)
		}
		return resolved, nil
	}

	resolved, err := CanonicalDir(DefaultSchemaDir)
	if err != nil {
		return "", fmt.Errorf("corpus: default schema directory unavailable (set %s to point at your corpus): %w", EnvSchemaDir, err)
	}
	return resolved, nil
}

// CanonicalDir resolves dir to an absolute path and verifies that it
// exists and is a directory. The underlying error is returned unwrapped
// so callers can add their own context.
func CanonicalDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}
