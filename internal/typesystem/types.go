package typesystem

import (
	"strings"

	"github.com/didargs/didargs/internal/config"
)

// Type is the interface for all nodes of the type grammar. The surface
// grammar is a Candid subset: scalars, opt, vec, record, variant, plus
// named aliases. A name that is neither a scalar keyword nor a declared
// alias stays an Unknown node, so callers can decide their own policy
// (the converter and validator pass Unknown values through untouched).
type Type interface {
	String() string
	typeNode()
}

// Scalar is a builtin scalar type (text, bool, nat64, ...). Name is
// always stored lowercase.
type Scalar struct {
	Name string
}

func (s Scalar) typeNode()      {}
func (s Scalar) String() string { return s.Name }

// Opt wraps an optional type: opt T.
type Opt struct {
	Inner Type
}

func (o Opt) typeNode()      {}
func (o Opt) String() string { return "opt " + o.Inner.String() }

// Vec is a homogeneous sequence: vec T.
type Vec struct {
	Elem Type
}

func (v Vec) typeNode()      {}
func (v Vec) String() string { return "vec " + v.Elem.String() }

// Field is one named record field. Declaration order is significant: it
// drives positional input matching and canonical output order.
type Field struct {
	Name string
	Type Type
}

// Record is an ordered field list: record { name : T; ... }.
type Record struct {
	Fields []Field
}

func (r Record) typeNode() {}

func (r Record) String() string {
	if len(r.Fields) == 0 {
		return "record {}"
	}
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.Name + " : " + f.Type.String()
	}
	return "record { " + strings.Join(parts, "; ") + " }"
}

// Case is one variant alternative. Type is nil for payload-less cases.
type Case struct {
	Name string
	Type Type
}

// Variant is an ordered case list: variant { name : T; bare; ... }.
type Variant struct {
	Cases []Case
}

func (v Variant) typeNode() {}

func (v Variant) String() string {
	if len(v.Cases) == 0 {
		return "variant {}"
	}
	parts := make([]string, len(v.Cases))
	for i, c := range v.Cases {
		if c.Type == nil {
			parts[i] = c.Name
		} else {
			parts[i] = c.Name + " : " + c.Type.String()
		}
	}
	return "variant { " + strings.Join(parts, "; ") + " }"
}

// Unknown is a name (or raw fragment) the parser could not interpret:
// an undeclared alias, a func/service type, or malformed input. It is
// preserved verbatim and passes through every downstream component.
type Unknown struct {
	Name string
}

func (u Unknown) typeNode()      {}
func (u Unknown) String() string { return u.Name }

// IsScalarName reports whether name (any case) is a builtin scalar keyword.
func IsScalarName(name string) bool {
	return config.ScalarNames[strings.ToLower(name)]
}

// IsOpt reports whether t is an opt type; used by the validator to allow
// omission of optional record fields.
func IsOpt(t Type) bool {
	_, ok := t.(Opt)
	return ok
}
