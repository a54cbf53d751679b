package merger

import (
	"sort"

	"github.com/erraggy/schematools/internal/pathutil"
)

// RefSite is a single $ref occurrence inside a schema document.
type RefSite struct {
	// Pointer is the JSON Pointer to the $ref member.
	Pointer string
	// Ref is the reference string found there.
	Ref string
}

// maxRefCollectionDepth bounds ref collection recursion. Documents nested
// deeper than this stop contributing sites rather than risking a stack
// overflow on hostile input.
const maxRefCollectionDepth = 100

// CollectRefs gathers every string-valued $ref in doc together with its
// JSON Pointer, sorted by pointer. The document is not modified; this is
// the diagnostic counterpart of the rewrite pass.
func CollectRefs(doc any) []RefSite {
	ptr := pathutil.Get()
	defer pathutil.Put(ptr)

	var sites []RefSite
	collectRefs(doc, ptr, 0, &sites)
	sort.Slice(sites, func(i, j int) bool {
		return sites[i].Pointer < sites[j].Pointer
	})
	return sites
}

func collectRefs(doc any, ptr *pathutil.PointerBuilder, depth int, sites *[]RefSite) {
	if depth > maxRefCollectionDepth {
		return
	}
	switch node := doc.(type) {
	case map[string]any:
		for key, value := range node {
			ptr.Push(key)
			if ref, ok := value.(string); ok && key == pathutil.RefKey {
				*sites = append(*sites, RefSite{Pointer: ptr.String(), Ref: ref})
			} else {
				collectRefs(value, ptr, depth+1, sites)
			}
			ptr.Pop()
		}
	case []any:
		for i, item := range node {
			ptr.PushIndex(i)
			collectRefs(item, ptr, depth+1, sites)
			ptr.Pop()
		}
	}
}
