// Package maputil provides shared utilities for working with maps across packages.
package maputil

import "sort"

// SortedKeys returns the keys of m in sorted order.
// The result is never nil, so callers can range over it or marshal it
// without a nil check. Works with any map value type.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
