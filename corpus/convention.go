package corpus

import (
	"strings"

	"github.com/erraggy/schematools/internal/naming"
)

// Default filename convention and name derivation values.
const (
	// DefaultFilePrefix is the filename prefix schema files must carry.
	DefaultFilePrefix = "m3-"
	// DefaultFileSuffix is the filename suffix schema files must carry.
	DefaultFileSuffix = ".schema.json"
	// DefaultNameSuffix is appended to every derived definition name.
	DefaultNameSuffix = "Schema"
)

// Convention describes the filename pattern of a corpus and how definition
// names are derived from it.
type Convention struct {
	// FilePrefix is the fixed filename prefix (e.g. "m3-").
	FilePrefix string
	// FileSuffix is the fixed filename suffix (e.g. ".schema.json").
	FileSuffix string
	// NameSuffix is appended to each derived name (e.g. "Schema").
	NameSuffix string
}

// DefaultConvention returns the convention for the default corpus layout:
// "m3-<base>.schema.json" deriving "<Base>Schema" names.
func DefaultConvention() Convention {
	return Convention{
		FilePrefix: DefaultFilePrefix,
		FileSuffix: DefaultFileSuffix,
		NameSuffix: DefaultNameSuffix,
	}
}

// Match reports whether filename follows the convention, returning the
// base name between prefix and suffix. Matching is exact and
// case-sensitive; a filename equal to prefix+suffix yields an empty base
// and still matches.
func (c Convention) Match(filename string) (string, bool) {
	base, ok := strings.CutPrefix(filename, c.FilePrefix)
	if !ok {
		return "", false
	}
	base, ok = strings.CutSuffix(base, c.FileSuffix)
	if !ok {
		return "", false
	}
	return base, true
}

// TypeName derives the definition name for filename, or ok=false when the
// filename does not match the convention.
//
// The base name is split on hyphens, each segment is capitalized with its
// remaining characters preserved, the segments are concatenated, and the
// name suffix is appended:
//
//	"m3-room-state.schema.json" -> "RoomStateSchema"
//	"m3-foo--bar.schema.json"   -> "FooBarSchema"
func (c Convention) TypeName(filename string) (string, bool) {
	base, ok := c.Match(filename)
	if !ok {
		return "", false
	}
	return naming.CapitalizeSegments(base, "-") + c.NameSuffix, true
}

// NameTable maps source filenames to their derived definition names, e.g.
// "m3-room-state.schema.json" -> "RoomStateSchema". Bare cross-file
// references are resolved against it.
type NameTable map[string]string

// Lookup returns the definition name for a source filename.
func (t NameTable) Lookup(filename string) (string, bool) {
	name, ok := t[filename]
	return name, ok
}
