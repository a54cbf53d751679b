package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParent(t *testing.T) {
	t.Run("creates missing nested directories", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "generated", "nested", "out.schema.json")

		require.NoError(t, EnsureParent(path))

		info, err := os.Stat(filepath.Dir(path))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("existing directory is fine", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, EnsureParent(filepath.Join(dir, "out.schema.json")))
	})

	t.Run("bare filename is a no-op", func(t *testing.T) {
		assert.NoError(t, EnsureParent("out.schema.json"))
	})
}
