package form

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/didargs/didargs/internal/config"
	"github.com/didargs/didargs/internal/parser"
	"github.com/didargs/didargs/internal/typesystem"
)

// BuildArgs converts one raw value per resolved argument type into
// canonical wire-ready values. A single-argument signature yields the bare
// value; anything else yields an ordered slice. The type and value lists
// must have equal length.
func BuildArgs(resolvedTypes []string, raws []any) (any, error) {
	if len(resolvedTypes) != len(raws) {
		return nil, errf("", "argument count mismatch: %d types, %d values",
			len(resolvedTypes), len(raws))
	}
	if len(resolvedTypes) == 1 {
		return Build(resolvedTypes[0], raws[0])
	}
	out := make([]any, len(resolvedTypes))
	for i := range resolvedTypes {
		v, err := Build(resolvedTypes[i], raws[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Build converts one raw caller-supplied value into the canonical shape of
// the resolved type. Raw text that looks like an embedded JSON literal is
// parsed first, so callers can type either plain text or structured
// literals into the same input slot.
func Build(resolvedType string, raw any) (any, error) {
	return build(parser.Parse(resolvedType), preparse(raw), "")
}

// preparse opportunistically decodes JSON-looking text. Parse failures are
// not errors: the input stays plain text.
func preparse(raw any) any {
	s, ok := raw.(string)
	if !ok {
		return raw
	}
	t := strings.TrimSpace(s)
	looksStructured := strings.HasPrefix(t, "{") || strings.HasPrefix(t, "[") ||
		t == "null" || t == "true" || t == "false"
	if !looksStructured {
		return raw
	}
	dec := json.NewDecoder(strings.NewReader(t))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return raw
	}
	return v
}

func build(t typesystem.Type, raw any, path string) (any, error) {
	switch typ := t.(type) {
	case typesystem.Scalar:
		return buildScalar(typ.Name, raw, path)

	case typesystem.Opt:
		if raw == nil {
			return nil, nil
		}
		return build(typ.Inner, raw, path)

	case typesystem.Vec:
		seq, ok := raw.([]any)
		if !ok {
			return nil, errf(path, "expected sequence, got %s", describe(raw))
		}
		out := make([]any, len(seq))
		for i, el := range seq {
			v, err := build(typ.Elem, el, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case typesystem.Record:
		return buildRecord(typ, raw, path)

	case typesystem.Variant:
		return buildVariant(typ, raw, path)

	default:
		// Unknown (unresolved alias, func, service): pass through unchanged.
		return raw, nil
	}
}

func buildRecord(rec typesystem.Record, raw any, path string) (any, error) {
	out := NewObject()

	switch v := raw.(type) {
	case map[string]any:
		for _, f := range rec.Fields {
			fv, ok := v[f.Name]
			if !ok {
				return nil, errf(path, "missing field %q", f.Name)
			}
			built, err := build(f.Type, fv, path+"."+f.Name)
			if err != nil {
				return nil, err
			}
			out.Set(f.Name, built)
		}
		return out, nil

	case []any:
		if len(v) != len(rec.Fields) {
			return nil, errf(path, "record expects %d fields, got %d values",
				len(rec.Fields), len(v))
		}
		for i, f := range rec.Fields {
			built, err := build(f.Type, v[i], path+"."+f.Name)
			if err != nil {
				return nil, err
			}
			out.Set(f.Name, built)
		}
		return out, nil

	default:
		return nil, errf(path, "expected record value, got %s", describe(raw))
	}
}

// buildVariant converts a single-key keyed structure when the key names a
// declared case. Everything else passes through unchanged, preserving the
// permissive behavior callers rely on for unresolved fragments.
func buildVariant(v typesystem.Variant, raw any, path string) (any, error) {
	m, ok := raw.(map[string]any)
	if !ok || len(m) != 1 {
		return raw, nil
	}
	for key, payload := range m {
		for _, c := range v.Cases {
			if c.Name != key {
				continue
			}
			out := NewObject()
			if c.Type == nil {
				out.Set(key, nil)
				return out, nil
			}
			built, err := build(c.Type, payload, path+"."+key)
			if err != nil {
				return nil, err
			}
			out.Set(key, built)
			return out, nil
		}
	}
	return raw, nil
}

func buildScalar(name string, raw any, path string) (any, error) {
	switch name {
	case "text":
		return buildText(raw), nil
	case "bool":
		return buildBool(raw, path)
	case "float32", "float64":
		return buildFloat(raw, path)
	case "principal":
		return raw, nil
	case "nat", "int":
		return buildBigInt(name, raw), nil
	default:
		return buildFixedInt(name, raw, path)
	}
}

func buildText(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func buildBool(raw any, path string) (any, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return nil, errf(path, "invalid boolean value %v", raw)
}

func buildFloat(raw any, path string) (any, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err == nil {
			return f, nil
		}
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			return f, nil
		}
	}
	return nil, errf(path, "invalid float value %v", raw)
}

// buildBigInt handles unbounded nat/int. Digit strings wider than a 64-bit
// range stay decimal strings so no precision is lost; narrower ones become
// native integers. Non-digit input passes through unchanged (it is assumed
// to already be a valid literal).
func buildBigInt(name string, raw any) any {
	switch v := raw.(type) {
	case string:
		return bigIntFromDigits(name, strings.TrimSpace(v), v)
	case json.Number:
		return bigIntFromDigits(name, v.String(), v.String())
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64, uint64:
		return v
	default:
		return raw
	}
}

func bigIntFromDigits(name, s, original string) any {
	if !isDigitString(s, name == "int") {
		return original
	}
	if magnitudeDigits(s) > config.Int64Digits {
		return s
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if name == "nat" {
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return u
		}
	}
	// Within the digit budget but outside 64-bit range: keep the string.
	return s
}

// buildFixedInt handles the fixed-width kinds (nat8..nat64, int8..int64).
// These always become native integers; width range-checking belongs to the
// wire encoder, not this layer.
func buildFixedInt(name string, raw any, path string) (any, error) {
	switch v := raw.(type) {
	case float64:
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		return v, nil
	case json.Number:
		if n, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return n, nil
		}
		if name == "nat64" {
			if u, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
				return u, nil
			}
		}
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		if name == "nat64" {
			if u, err := strconv.ParseUint(s, 10, 64); err == nil {
				return u, nil
			}
		}
	}
	return nil, errf(path, "invalid %s value %v", name, raw)
}

func isDigitString(s string, allowNegative bool) bool {
	if allowNegative && strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func magnitudeDigits(s string) int {
	return len(strings.TrimPrefix(s, "-"))
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64, uint64, json.Number:
		return "number"
	case []any:
		return "sequence"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
