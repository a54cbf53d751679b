package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "m3-room-state.schema.json", `{"type":"object"}`)
	writeFile(t, dir, "m3-items.schema.json", `{"type":"array"}`)
	writeFile(t, dir, "notes.txt", "not a schema")
	writeFile(t, dir, "m3-wrong-suffix.json", `{}`)
	writeFile(t, dir, "other-room.schema.json", `{}`)
	// Directories never match, even with a conventional name.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "m3-nested.schema.json"), 0o755))

	c, err := Scan(dir, DefaultConvention())
	require.NoError(t, err)

	require.Len(t, c.Files, 2)
	// os.ReadDir sorts entries, so file order is lexical.
	assert.Equal(t, "m3-items.schema.json", c.Files[0].Name)
	assert.Equal(t, "ItemsSchema", c.Files[0].TypeName)
	assert.Equal(t, filepath.Join(dir, "m3-items.schema.json"), c.Files[0].Path)
	assert.Equal(t, "m3-room-state.schema.json", c.Files[1].Name)
	assert.Equal(t, "RoomStateSchema", c.Files[1].TypeName)

	assert.Equal(t, NameTable{
		"m3-items.schema.json":      "ItemsSchema",
		"m3-room-state.schema.json": "RoomStateSchema",
	}, c.Names)
	assert.Equal(t, dir, c.Dir)
}

func TestScanEmptyDir(t *testing.T) {
	c, err := Scan(t.TempDir(), DefaultConvention())
	require.NoError(t, err)
	assert.Empty(t, c.Files)
	assert.Empty(t, c.Names)
}

func TestScanMissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "no-such-dir"), DefaultConvention())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corpus: failed to read schema directory")
}

func TestScanCustomConvention(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "api-user.yaml", "type: object")
	writeFile(t, dir, "m3-user.schema.json", `{}`)

	c, err := Scan(dir, Convention{FilePrefix: "api-", FileSuffix: ".yaml", NameSuffix: "Model"})
	require.NoError(t, err)
	require.Len(t, c.Files, 1)
	assert.Equal(t, "UserModel", c.Files[0].TypeName)
}
