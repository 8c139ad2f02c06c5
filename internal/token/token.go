package token

import "strings"

// TokenType identifies the lexical class of a token.
type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers: type names, alias names, field and case labels
	IDENT = "IDENT"

	// Keywords
	TYPE = "TYPE" // the 'type' declaration keyword

	// Delimiters
	ASSIGN    = "="
	SEMICOLON = ";"
	COLON     = ":"
	COMMA     = ","
	LBRACE    = "{"
	RBRACE    = "}"
	LANGLE    = "<"
	RANGLE    = ">"
	LPAREN    = "("
	RPAREN    = ")"
)

// Token is a single lexical unit of the interface-description grammar.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// LookupIdent returns TYPE for the declaration keyword (matched
// case-insensitively, as the grammar treats keywords) and IDENT otherwise.
// Compound keywords (opt, vec, record, variant) stay IDENT — the parser
// decides their meaning from position, since they are legal field labels.
func LookupIdent(ident string) TokenType {
	if strings.EqualFold(ident, "type") {
		return TYPE
	}
	return IDENT
}
