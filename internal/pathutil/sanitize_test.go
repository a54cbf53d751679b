// Copyright 2026 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeOutputPath(t *testing.T) {
	t.Run("new file in existing directory", func(t *testing.T) {
		dir := t.TempDir()
		got, err := SanitizeOutputPath(filepath.Join(dir, "out.schema.json"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "out.schema.json"), got)
	})

	t.Run("existing regular file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.schema.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

		got, err := SanitizeOutputPath(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("cleans dot-dot components", func(t *testing.T) {
		dir := t.TempDir()
		messy := filepath.Join(dir, "sub", "..", "out.schema.json")
		got, err := SanitizeOutputPath(messy)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "out.schema.json"), got)
	})

	t.Run("rejects symlink target", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlink creation requires privileges on windows")
		}
		dir := t.TempDir()
		target := filepath.Join(dir, "real.json")
		require.NoError(t, os.WriteFile(target, []byte("{}"), 0o644))
		link := filepath.Join(dir, "link.json")
		require.NoError(t, os.Symlink(target, link))

		_, err := SanitizeOutputPath(link)
		assert.ErrorContains(t, err, "symlink")
	})
}
