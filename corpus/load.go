package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// LoadFile reads and parses a single schema file into generic JSON values:
// map[string]any for objects, []any for arrays, and scalars otherwise.
//
// The format is chosen by file extension (".json" vs ".yaml"/".yml") with
// a content sniff as fallback. JSON documents go through encoding/json;
// YAML documents go through yaml.Unmarshal, which accepts JSON as well.
func LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: failed to read schema file: %w", err)
	}
	return parseBytes(path, data)
}

// parseBytes decodes schema file content, reporting the source path on
// failure since decoder errors do not carry it.
func parseBytes(path string, data []byte) (any, error) {
	format := detectFormatFromPath(path)
	if format == FormatUnknown {
		format = detectFormatFromContent(data)
	}

	var doc any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("corpus: failed to parse %s: %w", path, err)
		}
	default:
		// YAML is a superset of JSON, so it also covers content we could
		// not classify.
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("corpus: failed to parse %s: %w", path, err)
		}
	}
	return doc, nil
}
