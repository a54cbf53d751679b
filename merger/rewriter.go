package merger

import (
	"strings"

	"github.com/erraggy/schematools/corpus"
	"github.com/erraggy/schematools/internal/pathutil"
)

// rewriteRefs rewrites every string-valued $ref in doc, in place, so that
// it points inside the merged document. schemaName is the derived
// definition name of the file being processed; names resolves bare
// cross-file references.
func (m *Merger) rewriteRefs(doc any, schemaName string, names corpus.NameTable) error {
	switch node := doc.(type) {
	case map[string]any:
		for key, value := range node {
			if key == pathutil.RefKey {
				if ref, ok := value.(string); ok {
					rewritten, err := m.rewriteRef(ref, schemaName, names)
					if err != nil {
						return err
					}
					node[key] = rewritten
					continue
				}
			}
			if err := m.rewriteRefs(value, schemaName, names); err != nil {
				return err
			}
		}
	case []any:
		for _, item := range node {
			if err := m.rewriteRefs(item, schemaName, names); err != nil {
				return err
			}
		}
	}
	return nil
}

// rewriteRef applies the reference relocation rules in order and returns
// the rewritten reference.
func (m *Merger) rewriteRef(ref, schemaName string, names corpus.NameTable) (string, error) {
	// A local properties pointer moves with its schema: the whole file
	// lands under definitions/<schemaName>, so only the leading "#" is
	// replaced and the rest of the pointer survives.
	if strings.HasPrefix(ref, pathutil.RefPrefixProperties) {
		return pathutil.DefinitionRef(schemaName) + ref[1:], nil
	}

	if idx := strings.Index(ref, "#"); idx > 0 {
		// A cross-file pointer keeps only its fragment. Every file's
		// definitions land in the shared accumulator, so the fragment
		// alone addresses the merged document.
		return ref[idx:], nil
	} else if idx < 0 {
		// A bare reference names a whole corpus file.
		name, ok := names.Lookup(ref)
		if !ok {
			return "", &UnresolvedReferenceError{Ref: ref, SchemaName: schemaName}
		}
		return pathutil.DefinitionRef(name), nil
	}

	// Everything else already points inside the document.
	return ref, nil
}

// IsBareRef reports whether ref names a corpus file rather than a JSON
// Pointer target: it contains no "#" at all.
func IsBareRef(ref string) bool {
	return !strings.Contains(ref, "#")
}
