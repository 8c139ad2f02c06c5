package example

import (
	"encoding/json"

	"github.com/didargs/didargs/internal/config"
	"github.com/didargs/didargs/internal/form"
	"github.com/didargs/didargs/internal/parser"
	"github.com/didargs/didargs/internal/typesystem"
)

// Value synthesizes a representative literal for one resolved type
// expression, pretty-printed for direct display and editing. It is an
// advisory preview path: anything it cannot scaffold renders as null.
func Value(resolvedType string) string {
	return render(placeholder(parser.Parse(resolvedType)))
}

// Args synthesizes a literal for a full argument list: the bare value for
// a single argument, a bracketed list otherwise.
func Args(resolvedTypes []string) string {
	if len(resolvedTypes) == 1 {
		return Value(resolvedTypes[0])
	}
	vals := make([]any, len(resolvedTypes))
	for i, expr := range resolvedTypes {
		vals[i] = placeholder(parser.Parse(expr))
	}
	return render(vals)
}

func placeholder(t typesystem.Type) any {
	switch typ := t.(type) {
	case typesystem.Scalar:
		return scalarPlaceholder(typ.Name)

	case typesystem.Opt:
		// opt short-circuits: null regardless of the inner type
		return nil

	case typesystem.Vec:
		return []any{placeholder(typ.Elem)}

	case typesystem.Record:
		obj := form.NewObject()
		for _, f := range typ.Fields {
			obj.Set(f.Name, placeholder(f.Type))
		}
		return obj

	case typesystem.Variant:
		obj := form.NewObject()
		if len(typ.Cases) > 0 {
			first := typ.Cases[0]
			if first.Type == nil {
				obj.Set(first.Name, nil)
			} else {
				obj.Set(first.Name, placeholder(first.Type))
			}
		}
		return obj

	default:
		return nil
	}
}

func scalarPlaceholder(name string) any {
	switch name {
	case "text":
		return config.TextExample
	case "bool":
		return true
	case "float32", "float64":
		return config.FloatExample
	case "principal":
		return config.PrincipalExample
	case "nat":
		// digit strings demonstrate the string-for-big-integers convention
		return config.NatExample
	case "int":
		return config.IntExample
	case "nat8", "nat16", "nat32", "nat64":
		return 0
	default:
		return -1
	}
}

func render(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "null"
	}
	return string(b)
}
