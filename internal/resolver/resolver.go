package resolver

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/didargs/didargs/internal/config"
	"github.com/didargs/didargs/internal/lexer"
	"github.com/didargs/didargs/internal/parser"
	"github.com/didargs/didargs/internal/typesystem"
)

// Table maps alias names to their defining type expressions, exactly as
// declared (unresolved). It is built once per grammar source and consulted
// whenever a bare name is not a builtin scalar or compound keyword.
type Table map[string]string

// CyclicAliasError reports an alias that expands through itself, e.g.
// `type A = B; type B = A;`.
type CyclicAliasError struct {
	Name string
}

func (e *CyclicAliasError) Error() string {
	return fmt.Sprintf("cyclic type alias: %s", e.Name)
}

// ExtractAliases scans grammar source for `type Name = <expr>;`
// declarations. Comments are stripped first; `type` must appear as a
// standalone token; the defining expression extends to the first `;` at
// zero brace/paren/angle/bracket nesting depth. Malformed declarations
// (missing name, missing '=', unterminated expression) are skipped
// silently — extraction is best-effort by design.
func ExtractAliases(source string) Table {
	table := Table{}
	src := lexer.StripComments(source)

	i := 0
	for i < len(src) {
		kw := strings.Index(src[i:], "type")
		if kw < 0 {
			break
		}
		kw += i
		i = kw + len("type")

		// standalone token check
		if kw > 0 && isIdentByte(src[kw-1]) {
			continue
		}
		if i < len(src) && isIdentByte(src[i]) {
			continue
		}

		j := skipSpaces(src, i)
		name, j := readIdent(src, j)
		if name == "" {
			continue
		}

		j = skipSpaces(src, j)
		if j >= len(src) || src[j] != '=' {
			continue
		}
		j++

		expr, end, ok := readToTopLevelSemicolon(src, j)
		if !ok {
			continue
		}
		table[name] = strings.TrimSpace(expr)
		i = end + 1
	}
	return table
}

func isIdentByte(b byte) bool {
	return b == '_' || unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}

func skipSpaces(s string, i int) int {
	for i < len(s) && unicode.IsSpace(rune(s[i])) {
		i++
	}
	return i
}

func readIdent(s string, i int) (string, int) {
	start := i
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	return s[start:i], i
}

// readToTopLevelSemicolon collects src[start:] up to the first ';' outside
// any {}, (), <> or [] nesting. The four depth counters are independent;
// mismatched closers just go negative and never mask the semicolon.
func readToTopLevelSemicolon(src string, start int) (string, int, bool) {
	braces, parens, angles, brackets := 0, 0, 0, 0
	for i := start; i < len(src); i++ {
		switch src[i] {
		case '{':
			braces++
		case '}':
			braces--
		case '(':
			parens++
		case ')':
			parens--
		case '<':
			angles++
		case '>':
			angles--
		case '[':
			brackets++
		case ']':
			brackets--
		case ';':
			if braces == 0 && parens == 0 && angles == 0 && brackets == 0 {
				return src[start:i], i, true
			}
		}
	}
	return "", len(src), false
}

// Resolve expands every alias reachable from t until no alias names
// remain. Names absent from the table stay Unknown and pass through;
// cyclic aliases fail with *CyclicAliasError.
func Resolve(t typesystem.Type, table Table) (typesystem.Type, error) {
	return resolve(t, table, map[string]bool{}, 0)
}

func resolve(t typesystem.Type, table Table, visiting map[string]bool, depth int) (typesystem.Type, error) {
	if depth > config.MaxResolveDepth {
		return nil, fmt.Errorf("type nesting exceeds %d levels", config.MaxResolveDepth)
	}

	switch typ := t.(type) {
	case typesystem.Scalar:
		return typ, nil

	case typesystem.Opt:
		inner, err := resolve(typ.Inner, table, visiting, depth+1)
		if err != nil {
			return nil, err
		}
		return typesystem.Opt{Inner: inner}, nil

	case typesystem.Vec:
		elem, err := resolve(typ.Elem, table, visiting, depth+1)
		if err != nil {
			return nil, err
		}
		return typesystem.Vec{Elem: elem}, nil

	case typesystem.Record:
		fields := make([]typesystem.Field, len(typ.Fields))
		for i, f := range typ.Fields {
			ft, err := resolve(f.Type, table, visiting, depth+1)
			if err != nil {
				return nil, err
			}
			fields[i] = typesystem.Field{Name: f.Name, Type: ft}
		}
		return typesystem.Record{Fields: fields}, nil

	case typesystem.Variant:
		cases := make([]typesystem.Case, len(typ.Cases))
		for i, c := range typ.Cases {
			cases[i] = typesystem.Case{Name: c.Name}
			if c.Type != nil {
				ct, err := resolve(c.Type, table, visiting, depth+1)
				if err != nil {
					return nil, err
				}
				cases[i].Type = ct
			}
		}
		return typesystem.Variant{Cases: cases}, nil

	case typesystem.Unknown:
		expr, ok := table[typ.Name]
		if !ok {
			return typ, nil
		}
		if visiting[typ.Name] {
			return nil, &CyclicAliasError{Name: typ.Name}
		}
		visiting[typ.Name] = true
		resolved, err := resolve(parser.Parse(expr), table, visiting, depth+1)
		delete(visiting, typ.Name)
		return resolved, err

	default:
		return t, nil
	}
}

// ResolveExpr resolves a type expression string and re-serializes it in
// canonical surface form.
func ResolveExpr(expr string, table Table) (string, error) {
	t, err := Resolve(parser.Parse(expr), table)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// ResolveAll resolves an ordered argument type list in place order.
func ResolveAll(exprs []string, table Table) ([]string, error) {
	out := make([]string, len(exprs))
	for i, expr := range exprs {
		r, err := ResolveExpr(expr, table)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
