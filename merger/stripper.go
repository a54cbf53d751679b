package merger

// Conditional subschema keys.
const (
	ifKey   = "if"
	thenKey = "then"
)

// StripConditionals returns a copy of doc with every conditional subschema
// removed. A node is conditional when it is an object carrying both "if"
// and "then" keys, whatever their values. Conditional nodes are dropped
// wherever they appear as object member values or array elements; the
// root itself is never dropped. Scalars pass through unchanged.
//
// The transformation is idempotent: stripping a stripped tree is a no-op.
func StripConditionals(doc any) any {
	switch node := doc.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for key, value := range node {
			if isConditional(value) {
				continue
			}
			out[key] = StripConditionals(value)
		}
		return out
	case []any:
		out := make([]any, 0, len(node))
		for _, item := range node {
			if isConditional(item) {
				continue
			}
			out = append(out, StripConditionals(item))
		}
		return out
	default:
		return doc
	}
}

// isConditional reports whether value is an object with both "if" and
// "then" keys. An object with only one of the two is kept.
func isConditional(value any) bool {
	obj, ok := value.(map[string]any)
	if !ok {
		return false
	}
	_, hasIf := obj[ifKey]
	_, hasThen := obj[thenKey]
	return hasIf && hasThen
}
