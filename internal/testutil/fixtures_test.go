package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCorpusDir verifies that every archive file lands in the returned
// directory with its content intact.
func TestCorpusDir(t *testing.T) {
	dir := CorpusDir(t, MinimalCorpus)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "Archive should yield two corpus files")

	data, err := os.ReadFile(filepath.Join(dir, "m3-drop.schema.json"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc), "Fixture file should parse as JSON")
	assert.Contains(t, doc, "definitions")
}

// TestCorpusDir_Subdirectories verifies that archive file names with path
// separators create the needed directories.
func TestCorpusDir_Subdirectories(t *testing.T) {
	archive := `Nested fixture.
-- nested/m3-a.schema.json --
{"type": "object"}
`
	dir := CorpusDir(t, archive)

	data, err := os.ReadFile(filepath.Join(dir, "nested", "m3-a.schema.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "object"}`, string(data))
}

// TestWriteSchemaJSON verifies the document round-trips through the written
// file.
func TestWriteSchemaJSON(t *testing.T) {
	doc := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
	}

	path := WriteSchemaJSON(t, t.TempDir(), "m3-test.schema.json", doc)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, doc, got)
}
