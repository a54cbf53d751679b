// Copyright 2026 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

// RefKey is the JSON Schema reference key.
const RefKey = "$ref"

// Intra-document reference prefixes (draft-07).
const (
	RefPrefixDefinitions = "#/definitions/"
	RefPrefixProperties  = "#/properties/"
)

// DefinitionRef builds "#/definitions/{name}".
func DefinitionRef(name string) string {
	return RefPrefixDefinitions + name
}
