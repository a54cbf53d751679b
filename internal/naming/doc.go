// Package naming provides shared capitalization utilities for schematools packages.
//
// This internal package contains the segment capitalization used by the
// corpus package when deriving definition names from schema filenames.
// Capitalization uses golang.org/x/text/cases for correct Unicode title
// casing while preserving the remainder of each segment.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
