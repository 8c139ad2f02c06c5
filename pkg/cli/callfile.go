package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CallFile describes one prepared call: the method's argument types (alias
// names allowed; they are resolved against the -d grammar) and the raw
// caller-supplied values. Either `args` (structured values, for build) or
// `json` (a raw JSON text blob, for check) is used depending on the
// subcommand.
type CallFile struct {
	// Method is informational; it labels output only.
	Method string `yaml:"method,omitempty" json:"method,omitempty"`

	// Types lists the argument type expressions, in signature order.
	Types []string `yaml:"types" json:"types"`

	// Args holds one raw value per type. Strings that look like JSON
	// literals are pre-parsed by the converter.
	Args []any `yaml:"args,omitempty" json:"args,omitempty"`

	// JSON is the raw argument text to validate, verbatim.
	JSON string `yaml:"json,omitempty" json:"json,omitempty"`
}

// loadCallFile reads a YAML or JSON call file. Extension decides the
// decoder; .json gets encoding/json, everything else yaml.v3 (which also
// accepts JSON, being a superset).
func loadCallFile(path string) (*CallFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cf CallFile
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if len(cf.Types) == 0 {
		return nil, fmt.Errorf("%s: call file declares no argument types", path)
	}
	return &cf, nil
}

// normalizeYAML rewrites yaml.v3's decoded shapes into the converter's
// expected JSON shapes: map keys to strings, nested values recursively.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprintf("%v", k)] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return v
	}
}
