package merger

import "github.com/erraggy/schematools/internal/maputil"

// extractDefinitions lifts a schema file's own "definitions" entries into
// the shared accumulator and removes the key from the tree.
//
// Only the root of the tree is inspected, and only when the key's value
// is itself an object; a non-object "definitions" value is left in place.
// Entries are merged in sorted name order so collision resolution is
// deterministic.
func (m *Merger) extractDefinitions(definitions map[string]any, sources map[string]string, doc any, sourceFile string, result *Result) error {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	nested, ok := obj[definitionsKey].(map[string]any)
	if !ok {
		return nil
	}
	delete(obj, definitionsKey)

	for _, name := range maputil.SortedKeys(nested) {
		if err := m.fileDefinition(definitions, sources, name, nested[name], sourceFile, WarnDefinitionCollision, result); err != nil {
			return err
		}
	}
	return nil
}
