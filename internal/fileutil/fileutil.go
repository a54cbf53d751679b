// Package fileutil provides shared file permission constants and helpers.
package fileutil

import (
	"os"
	"path/filepath"
)

// OwnerReadWrite is the file permission mode for files written on behalf
// of a remote caller, such as MCP tool output (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for generated schema
// artifacts intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// dirMode is the permission mode for directories created for output files.
const dirMode os.FileMode = 0o755

// EnsureParent creates the parent directory of path if it does not exist.
// A path with no directory component is a no-op.
func EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, dirMode)
}
