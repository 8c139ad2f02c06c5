package compose

import (
	"strconv"
	"strings"

	"github.com/didargs/didargs/internal/typesystem"
)

// Args joins trimmed, non-empty raw values into a parenthesized argument
// list: ("a", 1) or () when every input is blank. This is the minimal
// fallback for call sites that supply positional textual arguments
// without going through JSON.
func Args(raws []string) string {
	parts := make([]string, 0, len(raws))
	for _, raw := range raws {
		v := strings.TrimSpace(raw)
		if v != "" {
			parts = append(parts, v)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// RecordLiteral assembles a textual record literal from per-field raw
// strings: record { name = value : type; ... }. Text fields are quoted if
// not already; numeric-looking values pass through as typed literals.
func RecordLiteral(fields []typesystem.Field, values map[string]string) string {
	if len(fields) == 0 {
		return "record {}"
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Name + " = " + fieldLiteral(f.Type, values[f.Name]) + " : " + f.Type.String()
	}
	return "record { " + strings.Join(parts, "; ") + " }"
}

// WrapArgs parenthesizes a single composed literal, the call shape of a
// method taking one record parameter.
func WrapArgs(literal string) string {
	return "(" + literal + ")"
}

func fieldLiteral(t typesystem.Type, raw string) string {
	v := strings.TrimSpace(raw)
	if s, ok := t.(typesystem.Scalar); ok && s.Name == "text" {
		if strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) && len(v) >= 2 {
			return v
		}
		return strconv.Quote(v)
	}
	return v
}
