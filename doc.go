// Package schematools provides tools for working with JSON Schema corpora:
// directories of schema files that follow a shared filename convention and
// reference each other by filename.
//
// schematools merges such a corpus into a single self-contained draft-07
// document in which every schema and every schema-local definition lives
// under top-level "definitions", and every $ref points inside the merged
// document.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - corpus: Discover, name, and load the schema files of a corpus
//   - merger: Merge a corpus into a single draft-07 document
//
// A corpus is a flat directory of files named by a convention, by default
//
//	m3-<base>.schema.json
//
// Each file's definition name is derived from its base name: hyphen-separated
// segments are capitalized, concatenated, and suffixed, so
// "m3-room-state.schema.json" becomes "RoomStateSchema". Files refer to each
// other bare by filename ({"$ref": "m3-room.schema.json"}), and the merger
// rewrites those references to point at the merged definitions.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/schematools
//
// # Quick Start
//
// Merge a schema corpus:
//
//	import "github.com/erraggy/schematools/merger"
//
//	m := merger.New(merger.DefaultConfig())
//	result, err := m.Merge("sm-json-data/schema")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = m.WriteResult(result, "generated/m3-total.schema.json")
//
// Or with functional options:
//
//	result, err := merger.MergeWithOptions(
//		merger.WithSchemaDir("sm-json-data/schema"),
//		merger.WithCollisionStrategy(merger.StrategyFail),
//	)
//
// With no input option, the corpus directory comes from the
// SCHEMATOOLS_SCHEMA_DIR environment variable, falling back to the built-in
// default "sm-json-data/schema".
//
// # Corpus Package
//
// The corpus package discovers and loads schema files. It provides the
// filename convention, the derived-name table, and format-aware loading
// (JSON or YAML) of individual files.
//
// Example:
//
//	c, err := corpus.Scan("sm-json-data/schema", corpus.DefaultConvention())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range c.Files {
//		fmt.Printf("%s -> %s\n", f.Name, f.TypeName)
//	}
//
// # Merger Package
//
// The merger package implements the merge pipeline. For every corpus file,
// in lexical filename order, it:
//
//  1. Strips conditional subschemas: any object carrying both "if" and
//     "then" is removed from its parent container.
//  2. Rewrites $refs to point inside the merged document. Local
//     "#/properties/..." pointers are relocated under the schema's own
//     definition entry; bare filename references are resolved through the
//     name table; cross-file pointers keep their fragment.
//  3. Extracts the file's own top-level "definitions" entries into the
//     shared definitions accumulator.
//
// After every file is processed, each schema itself is filed under its
// derived name, and the result is wrapped as a draft-07 document. Duplicate
// definition names follow the configured collision strategy: keep the most
// recent value and record a warning (default), or fail the merge.
//
// The first failure aborts the whole merge and nothing is written: an
// unresolved bare reference, an unreadable file, or a parse error surfaces
// immediately rather than producing a document with dangling references.
//
// Example:
//
//	cfg := merger.DefaultConfig()
//	cfg.OnCollision = merger.StrategyFail
//
//	m := merger.New(cfg)
//	result, err := m.Merge("sm-json-data/schema")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Merged %d schemas into %d definitions\n",
//		result.SchemaCount, result.DefinitionCount)
//	for _, w := range result.Warnings {
//		fmt.Println(w)
//	}
//
// # Error Handling
//
// The packages follow consistent error handling patterns:
//
//   - File I/O and parse errors: Returned with the offending path in the message
//   - Unresolved bare references: Returned as *merger.UnresolvedReferenceError
//   - Definition collisions under StrategyFail: Returned as *merger.DefinitionCollisionError
//   - Non-fatal issues (collisions under accept-last, empty corpora):
//     Collected in Result.Warnings, not returned as errors
//
// Always check both the error return value and Result.Warnings.
//
// # Command-Line Interface
//
// In addition to the library packages, schematools provides a command-line
// interface:
//
//	# Merge the default corpus into generated/m3-total.schema.json
//	schematools merge
//
//	# Merge an explicit directory to an explicit output
//	schematools merge -dir sm-json-data/schema -o build/total.schema.json
//
//	# Preview derived definition names
//	schematools names -dir sm-json-data/schema
//
//	# Inspect cross-file references before merging
//	schematools refs -dir sm-json-data/schema -bare
//
//	# Check that a corpus merges cleanly without writing output
//	schematools check -dir sm-json-data/schema
//
// Install the CLI:
//
//	go install github.com/erraggy/schematools/cmd/schematools@latest
//
// # MCP Server
//
// schematools also ships an MCP (Model Context Protocol) server exposing the
// merge, name derivation, and reference walking tools over stdio:
//
//	schematools mcp
//
// Defaults are configurable via SCHEMATOOLS_* environment variables; see the
// mcp command's help output.
//
// # Additional Resources
//
//   - JSON Schema Specification: https://json-schema.org
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/schematools
//
// # License
//
// This library is released under the MIT License.
package schematools
