// Package yamljson re-serializes a YAML document as pretty-printed JSON.
// The conversion is a structural round-trip: no keys are added, removed, or
// reinterpreted.
package yamljson

import (
	"encoding/json"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// Convert parses YAML text and renders it as JSON with two-space indentation
// and a trailing newline.
func Convert(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out, err := json.MarshalIndent(normalize(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(out, '\n'), nil
}

// normalize rewrites any map[any]any nodes (produced for YAML mappings with
// non-string keys) into string-keyed maps that encoding/json accepts.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
