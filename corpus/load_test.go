package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m3-room.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"type": "object",
		"properties": {"id": {"type": "integer"}},
		"required": ["id"]
	}`), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)

	obj, ok := doc.(map[string]any)
	require.True(t, ok, "expected a JSON object")
	assert.Equal(t, "object", obj["type"])

	props, ok := obj["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "id")

	required, ok := obj["required"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"id"}, required)
}

func TestLoadFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m3-room.schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: object\nproperties:\n  id:\n    type: integer\n"), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)

	obj, ok := doc.(map[string]any)
	require.True(t, ok, "expected a YAML mapping")
	assert.Equal(t, "object", obj["type"])
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m3-broken.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "object",`), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	// Decoder errors don't carry the source, so the wrapper must.
	assert.Contains(t, err.Error(), path)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "m3-gone.schema.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corpus: failed to read schema file")
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    Format
	}{
		{name: "json extension", path: "m3-a.schema.json", want: FormatJSON},
		{name: "yaml extension", path: "m3-a.schema.yaml", want: FormatYAML},
		{name: "yml extension", path: "m3-a.schema.yml", want: FormatYAML},
		{name: "unknown extension json content", path: "m3-a.schema", content: "  {\"a\":1}", want: FormatJSON},
		{name: "unknown extension array content", path: "m3-a.schema", content: "[1,2]", want: FormatJSON},
		{name: "unknown extension yaml content", path: "m3-a.schema", content: "a: 1", want: FormatYAML},
		{name: "unknown extension empty content", path: "m3-a.schema", content: "", want: FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFormatFromPath(tt.path)
			if got == FormatUnknown {
				got = detectFormatFromContent([]byte(tt.content))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}
