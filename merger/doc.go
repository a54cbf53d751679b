// Package merger combines a corpus of JSON Schema files into a single
// self-contained draft-07 document.
//
// Every schema file that matches the corpus filename convention becomes
// one entry under the merged document's "definitions", named by the
// derivation in the corpus package. Before a file is merged, three
// transformations run in order:
//
//  1. Conditional subschemas (objects carrying both "if" and "then") are
//     stripped, wherever they appear.
//  2. Every $ref is rewritten to an intra-document pointer: local
//     "#/properties/..." pointers are relocated under the schema's own
//     definitions entry, cross-file pointers keep only their fragment,
//     and bare filename references resolve through the corpus name table.
//  3. The file's own "definitions" entries are lifted into the shared
//     accumulator.
//
// After all files are processed, each processed schema tree is filed
// under its derived name and the accumulator is wrapped in a document
// declaring the draft-07 dialect.
//
// # Usage
//
//	m := merger.New(merger.DefaultConfig())
//	result, err := m.Merge("sm-json-data/schema")
//	if err != nil {
//	    return err
//	}
//	if err := m.WriteResult(result, merger.DefaultOutputPath); err != nil {
//	    return err
//	}
//
// Or with functional options:
//
//	result, err := merger.MergeWithOptions(
//	    merger.WithSchemaDir("sm-json-data/schema"),
//	    merger.WithCollisionStrategy(merger.StrategyFail),
//	)
//
// Merging is single-threaded and aborts on the first error; no output is
// produced for a corpus that fails to merge. Duplicate definition names
// are resolved by the configured [CollisionStrategy] (most recent wins by
// default) and reported as structured warnings.
package merger
