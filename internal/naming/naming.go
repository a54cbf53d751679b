package naming

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser capitalizes with proper Unicode title casing. cases.NoLower
// keeps the rest of the input untouched, so "fooBar" becomes "FooBar"
// rather than "Foobar".
var titleCaser = cases.Title(language.English, cases.NoLower)

// Capitalize uppercases the first letter of s and preserves the rest.
//
// Examples:
//
//	"room" -> "Room"
//	"fooBar" -> "FooBar"
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	// Only the first rune goes through the title caser; everything after
	// it is kept verbatim.
	_, size := utf8.DecodeRuneInString(s)
	return titleCaser.String(s[:size]) + s[size:]
}

// CapitalizeSegments splits s on sep, capitalizes each segment, and
// concatenates the results. Empty segments contribute nothing, so
// repeated separators collapse.
//
// Examples:
//
//	CapitalizeSegments("room-state", "-") -> "RoomState"
//	CapitalizeSegments("foo--bar", "-")   -> "FooBar"
func CapitalizeSegments(s, sep string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, segment := range strings.Split(s, sep) {
		result.WriteString(Capitalize(segment))
	}
	return result.String()
}
