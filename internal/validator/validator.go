package validator

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/didargs/didargs/internal/parser"
	"github.com/didargs/didargs/internal/typesystem"
)

// Options tunes validation strictness. The zero value reproduces the
// historical lenient behavior.
type Options struct {
	// StrictVariants also checks a variant's key against the declared case
	// names (and walks the matching payload). Off by default: the lenient
	// shape-only check is the stable behavior callers expect.
	StrictVariants bool
}

// Validator walks parsed JSON against resolved argument types. It never
// fails: every violation found during the full recursive walk is collected
// as a human-readable, path-qualified message. An empty result is success.
type Validator struct {
	opts Options
}

func New(opts Options) *Validator {
	return &Validator{opts: opts}
}

// Validate checks jsonText against resolvedTypes with default options.
func Validate(resolvedTypes []string, jsonText string) []string {
	return New(Options{}).Validate(resolvedTypes, jsonText)
}

func (v *Validator) Validate(resolvedTypes []string, jsonText string) []string {
	if len(resolvedTypes) == 0 && strings.TrimSpace(jsonText) == "" {
		return nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return []string{"Invalid JSON: " + err.Error()}
	}

	var errs []string

	switch len(resolvedTypes) {
	case 0:
		if seq, ok := parsed.([]any); !ok || len(seq) != 0 {
			errs = append(errs, "expected 0 arguments")
		}
	case 1:
		v.check(parser.Parse(resolvedTypes[0]), parsed, "", &errs)
	default:
		seq, ok := parsed.([]any)
		if !ok {
			return []string{fmt.Sprintf("(root) expected an array of %d arguments", len(resolvedTypes))}
		}
		if len(seq) != len(resolvedTypes) {
			return []string{fmt.Sprintf("expected %d arguments, got %d", len(resolvedTypes), len(seq))}
		}
		for i, expr := range resolvedTypes {
			v.check(parser.Parse(expr), seq[i], "["+strconv.Itoa(i)+"]", &errs)
		}
	}
	return errs
}

func (v *Validator) check(t typesystem.Type, val any, path string, errs *[]string) {
	switch typ := t.(type) {
	case typesystem.Scalar:
		v.checkScalar(typ.Name, val, path, errs)

	case typesystem.Opt:
		if val == nil {
			return
		}
		v.check(typ.Inner, val, path, errs)

	case typesystem.Vec:
		seq, ok := val.([]any)
		if !ok {
			add(errs, path, "expected array")
			return
		}
		for i, el := range seq {
			v.check(typ.Elem, el, path+"["+strconv.Itoa(i)+"]", errs)
		}

	case typesystem.Record:
		v.checkRecord(typ, val, path, errs)

	case typesystem.Variant:
		v.checkVariant(typ, val, path, errs)

	default:
		// Unknown: no checks possible, pass through.
	}
}

func (v *Validator) checkScalar(name string, val any, path string, errs *[]string) {
	switch name {
	case "text", "principal":
		if _, ok := val.(string); !ok {
			add(errs, path, "expected string")
		}
	case "bool":
		if _, ok := val.(bool); ok {
			return
		}
		// mirror the converter, which also takes "true"/"false" strings
		if s, ok := val.(string); ok {
			switch strings.ToLower(strings.TrimSpace(s)) {
			case "true", "false":
				return
			}
		}
		add(errs, path, "expected boolean")
	case "float32", "float64":
		if _, ok := val.(float64); !ok {
			add(errs, path, "expected number")
		}
	case "nat", "int":
		if _, ok := val.(float64); ok {
			return
		}
		if s, ok := val.(string); ok && isDigitString(s, name == "int") {
			return
		}
		add(errs, path, "expected number or decimal string")
	default:
		// fixed-width integer kinds accept numbers and numeric strings,
		// mirroring the converter's dispatch
		if _, ok := val.(float64); ok {
			return
		}
		if s, ok := val.(string); ok {
			if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
				return
			}
			if _, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64); err == nil {
				return
			}
		}
		add(errs, path, "expected number")
	}
}

func (v *Validator) checkRecord(rec typesystem.Record, val any, path string, errs *[]string) {
	switch m := val.(type) {
	case map[string]any:
		for _, f := range rec.Fields {
			fv, ok := m[f.Name]
			if !ok {
				// omitting an optional field is fine
				if !typesystem.IsOpt(f.Type) {
					add(errs, path, fmt.Sprintf("missing field %q", f.Name))
				}
				continue
			}
			v.check(f.Type, fv, path+"."+f.Name, errs)
		}
	case []any:
		if len(m) != len(rec.Fields) {
			add(errs, path, fmt.Sprintf("record expects %d fields, got %d", len(rec.Fields), len(m)))
			return
		}
		for i, f := range rec.Fields {
			v.check(f.Type, m[i], path+"."+f.Name, errs)
		}
	default:
		add(errs, path, "expected object")
	}
}

func (v *Validator) checkVariant(variant typesystem.Variant, val any, path string, errs *[]string) {
	m, ok := val.(map[string]any)
	if !ok || len(m) != 1 {
		add(errs, path, "expected object with exactly one variant case")
		return
	}
	if !v.opts.StrictVariants {
		// lenient default: shape only, case membership deliberately unchecked
		return
	}
	for key, payload := range m {
		for _, c := range variant.Cases {
			if c.Name != key {
				continue
			}
			if c.Type != nil {
				v.check(c.Type, payload, path+"."+key, errs)
			}
			return
		}
		add(errs, path, fmt.Sprintf("unknown variant case %q", key))
	}
}

func add(errs *[]string, path, msg string) {
	if path == "" {
		path = "(root)"
	}
	*errs = append(*errs, path+" "+msg)
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
