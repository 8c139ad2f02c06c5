package parser

import (
	"strings"

	"github.com/didargs/didargs/internal/lexer"
	"github.com/didargs/didargs/internal/token"
	"github.com/didargs/didargs/internal/typesystem"
)

// Parser is a recursive-descent parser over the type grammar. It is
// deliberately permissive: structural failures are not reported, the
// package-level Parse falls back to an Unknown node carrying the raw text.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	failed    bool
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.failed = true
	return false
}

// Parse interprets expr as a single type expression. It never fails:
// anything that does not parse cleanly (including trailing garbage)
// degrades to an Unknown node preserving the trimmed input verbatim,
// which downstream components treat as pass-through.
func Parse(expr string) typesystem.Type {
	trimmed := strings.TrimSpace(expr)
	p := New(lexer.New(trimmed))
	t := p.ParseType()
	if t == nil || p.failed || !p.peekTokenIs(token.EOF) {
		return typesystem.Unknown{Name: trimmed}
	}
	return t
}

// ParseType parses the type starting at the current token. Returns nil on
// structural failure; curToken is left on the last token of the type.
func (p *Parser) ParseType() typesystem.Type {
	if !p.curTokenIs(token.IDENT) && !p.curTokenIs(token.TYPE) {
		p.failed = true
		return nil
	}

	lit := p.curToken.Literal
	switch strings.ToLower(lit) {
	case "opt":
		inner := p.parseInner()
		if inner == nil {
			return nil
		}
		return typesystem.Opt{Inner: inner}
	case "vec":
		elem := p.parseInner()
		if elem == nil {
			return nil
		}
		return typesystem.Vec{Elem: elem}
	case "record":
		return p.parseRecord()
	case "variant":
		return p.parseVariant()
	default:
		if typesystem.IsScalarName(lit) {
			return typesystem.Scalar{Name: strings.ToLower(lit)}
		}
		return typesystem.Unknown{Name: lit}
	}
}

// parseInner reads the payload of an opt/vec wrapper. Both surface
// spellings are accepted: `opt T` and `opt<T>`.
func (p *Parser) parseInner() typesystem.Type {
	if p.peekTokenIs(token.LANGLE) {
		p.nextToken() // '<'
		p.nextToken() // first token of the inner type
		inner := p.ParseType()
		if inner == nil || !p.expectPeek(token.RANGLE) {
			return nil
		}
		return inner
	}
	p.nextToken()
	return p.ParseType()
}

func (p *Parser) parseRecord() typesystem.Type {
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	fields := []typesystem.Field{}
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if p.curTokenIs(token.SEMICOLON) {
			continue
		}
		if !p.curTokenIs(token.IDENT) && !p.curTokenIs(token.TYPE) {
			p.failed = true
			return nil
		}
		name := p.curToken.Literal
		if p.peekTokenIs(token.COLON) {
			p.nextToken() // ':'
			p.nextToken() // start of the field type
			ft := p.ParseType()
			if ft == nil {
				return nil
			}
			fields = append(fields, typesystem.Field{Name: name, Type: ft})
		}
		// A label with no ':' is dropped here; only variants keep bare cases.
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return typesystem.Record{Fields: fields}
}

func (p *Parser) parseVariant() typesystem.Type {
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	cases := []typesystem.Case{}
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if p.curTokenIs(token.SEMICOLON) {
			continue
		}
		if !p.curTokenIs(token.IDENT) && !p.curTokenIs(token.TYPE) {
			p.failed = true
			return nil
		}
		c := typesystem.Case{Name: p.curToken.Literal}
		if p.peekTokenIs(token.COLON) {
			p.nextToken() // ':'
			p.nextToken() // start of the payload type
			ct := p.ParseType()
			if ct == nil {
				return nil
			}
			c.Type = ct
		}
		cases = append(cases, c)
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return typesystem.Variant{Cases: cases}
}

// RecordFields returns the ordered field list of a record type expression,
// or nil when expr is not record-shaped. Nested braces inside field types
// are handled by the parser itself, so fields whose types contain their
// own ';' separators split correctly.
func RecordFields(expr string) []typesystem.Field {
	if rec, ok := Parse(expr).(typesystem.Record); ok {
		return rec.Fields
	}
	return nil
}

// VariantCases returns the ordered case list of a variant type expression,
// or nil when expr is not variant-shaped. Cases without a payload type are
// kept, with a nil Type.
func VariantCases(expr string) []typesystem.Case {
	if v, ok := Parse(expr).(typesystem.Variant); ok {
		return v.Cases
	}
	return nil
}
