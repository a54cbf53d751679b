// Package corpus discovers and loads the JSON Schema source files that
// make up a schema corpus.
//
// A corpus is a flat directory of schema documents whose filenames follow
// a naming convention: a fixed prefix, a hyphenated base name, and a fixed
// suffix (for example "m3-room-state.schema.json"). Files that do not
// match the convention are ignored. Each matching file contributes one
// definition to a merged document, named by a deterministic derivation
// from its base name:
//
//	m3-room-state.schema.json -> RoomStateSchema
//	m3-items.schema.json      -> ItemsSchema
//
// Use [Scan] to enumerate a corpus directory and build the [NameTable]
// that maps source filenames to derived definition names, and [LoadFile]
// to parse an individual schema file into generic JSON values
// (map[string]any, []any, and scalars).
//
// The corpus directory itself is resolved by [ResolveDir]: the
// SCHEMATOOLS_SCHEMA_DIR environment variable wins when set, otherwise
// the fixed default applies.
package corpus
