// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// MinimalCorpus is a txtar archive describing a two-file corpus with one
// bare cross-file reference and one extractable definition. Tests that just
// need a valid corpus can pass it to CorpusDir directly.
const MinimalCorpus = `Minimal schema corpus fixture.
-- m3-enemy.schema.json --
{
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "drop": {"$ref": "m3-drop.schema.json"}
  }
}
-- m3-drop.schema.json --
{
  "type": "object",
  "properties": {
    "chance": {"$ref": "#/definitions/percent"}
  },
  "definitions": {
    "percent": {"type": "integer", "minimum": 0, "maximum": 100}
  }
}
`

// CorpusDir extracts a txtar archive into a fresh temporary directory and
// returns the directory path. Archive file names may contain subdirectories.
// The directory is automatically cleaned up when the test completes
// (via t.TempDir).
func CorpusDir(t *testing.T, archive string) string {
	t.Helper()

	dir := t.TempDir()
	for _, f := range txtar.Parse([]byte(archive)).Files {
		path := filepath.Join(dir, f.Name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create fixture directory for %s: %v", f.Name, err)
		}
		if err := os.WriteFile(path, f.Data, 0o600); err != nil {
			t.Fatalf("Failed to write fixture file %s: %v", f.Name, err)
		}
	}
	return dir
}

// WriteSchemaJSON marshals a document to pretty-printed JSON and writes it
// into dir under filename. Returns the full path of the written file.
func WriteSchemaJSON(t *testing.T, dir, filename string, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("Failed to write schema file %s: %v", filename, err)
	}
	return path
}
