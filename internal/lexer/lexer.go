package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/didargs/didargs/internal/token"
)

// Lexer tokenizes interface-description source. Comments (// and /* */)
// are consumed as whitespace and never surface as tokens.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int
	column       int
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	tok := token.Token{Line: l.line, Column: l.column}

	switch l.ch {
	case '=':
		tok.Type, tok.Literal = token.ASSIGN, "="
	case ';':
		tok.Type, tok.Literal = token.SEMICOLON, ";"
	case ':':
		tok.Type, tok.Literal = token.COLON, ":"
	case ',':
		tok.Type, tok.Literal = token.COMMA, ","
	case '{':
		tok.Type, tok.Literal = token.LBRACE, "{"
	case '}':
		tok.Type, tok.Literal = token.RBRACE, "}"
	case '<':
		tok.Type, tok.Literal = token.LANGLE, "<"
	case '>':
		tok.Type, tok.Literal = token.RANGLE, ">"
	case '(':
		tok.Type, tok.Literal = token.LPAREN, "("
	case ')':
		tok.Type, tok.Literal = token.RPAREN, ")"
	case 0:
		tok.Type, tok.Literal = token.EOF, ""
	default:
		if isIdentRune(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			return tok // readIdentifier already advanced
		}
		tok.Type, tok.Literal = token.ILLEGAL, string(l.ch)
	}

	l.readChar()
	return tok
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentRune(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar() // '/'
			l.readChar() // '*'
			for l.ch != 0 && !(l.ch == '*' && l.peekChar() == '/') {
				l.readChar()
			}
			if l.ch != 0 {
				l.readChar() // '*'
				l.readChar() // '/'
			}
			continue
		}
		return
	}
}

// isIdentRune reports whether r may appear in an identifier or builtin
// type name. Digits are allowed anywhere; names like nat64 depend on it.
func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// StripComments removes // and /* */ comments from source, preserving all
// other text so rune offsets stay meaningful for declaration scanning.
func StripComments(source string) string {
	var out strings.Builder
	out.Grow(len(source))

	i := 0
	for i < len(source) {
		if strings.HasPrefix(source[i:], "//") {
			for i < len(source) && source[i] != '\n' {
				i++
			}
			continue
		}
		if strings.HasPrefix(source[i:], "/*") {
			end := strings.Index(source[i+2:], "*/")
			if end < 0 {
				break // unterminated block comment swallows the rest
			}
			i += 2 + end + 2
			continue
		}
		out.WriteByte(source[i])
		i++
	}
	return out.String()
}
