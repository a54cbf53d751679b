// Copyright 2026 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides JSON Pointer and reference utilities for
// JSON Schema document traversal.
//
// The primary type is [PointerBuilder], which uses push/pop semantics to
// build JSON Pointers incrementally without allocating intermediate
// strings. This suits recursive traversal where pointers are built on
// each recursive call but only materialized when a site is reported.
//
// # PointerBuilder Usage
//
// Use [Get] to obtain a pooled PointerBuilder, and [Put] to return it:
//
//	ptr := pathutil.Get()
//	defer pathutil.Put(ptr)
//
//	ptr.Push("definitions")
//	ptr.Push(defName)
//	// ... recurse ...
//	ptr.Pop()
//	ptr.Pop()
//
//	// Only call String() when the pointer is needed
//	site := ptr.String() // "/definitions/Room"
//
// Array indices are supported via [PointerBuilder.PushIndex]:
//
//	ptr.Push("allOf")
//	ptr.PushIndex(0) // produces "/allOf/0"
//
// Tokens are escaped per RFC 6901 ("~" -> "~0", "/" -> "~1").
//
// # Reference Builders
//
// The package also provides constants and builders for intra-document
// schema references:
//
//	ref := pathutil.DefinitionRef("RoomSchema") // "#/definitions/RoomSchema"
//
// These use simple string concatenation which Go optimizes well for two
// operands, avoiding the overhead of fmt.Sprintf.
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths. It
// resolves ".." components and rejects symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err // path traversal or symlink detected
//	}
package pathutil
