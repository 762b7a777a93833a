// Package lexer turns Scheme source text into the token stream the parser
// consumes (spec §6). It is an external collaborator by the spec's own
// framing (§1) and is kept deliberately thin: no incremental/streaming
// design, just enough scanning to produce a correct stream.
package lexer

import (
	"strconv"
	"strings"

	"goscheme/internal/scmerr"
	"goscheme/internal/token"
)

// Lexer scans a fixed source string into tokens.
type Lexer struct {
	src  string
	pos  int
	line int
}

// New creates a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Tokenize scans the entire source and returns every token in order.
// It does not append an explicit EOF token; callers detect end of stream
// by exhausting the returned slice.
func Tokenize(src string) ([]token.Token, error) {
	l := New(src)
	var out []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return out, nil
		}
		out = append(out, *tok)
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
	}
	return c
}

func isDelimiter(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\n', '\r', '(', ')', '\'', '`', ',', '"', ';':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// next scans and returns the next token, or nil at end of input.
func (l *Lexer) next() (*token.Token, error) {
	for {
		c := l.peek()
		if c == 0 {
			return nil, nil
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			l.advance()
			continue
		}
		if c == ';' {
			for l.peek() != 0 && l.peek() != '\n' {
				l.advance()
			}
			continue
		}
		break
	}

	line := l.line
	c := l.peek()

	switch c {
	case '(':
		l.advance()
		return &token.Token{Kind: token.LeftParen, Text: "(", Line: line}, nil
	case ')':
		l.advance()
		return &token.Token{Kind: token.RightParen, Text: ")", Line: line}, nil
	case '\'':
		l.advance()
		return &token.Token{Kind: token.Quote, Text: "'", Line: line}, nil
	case '`':
		l.advance()
		return &token.Token{Kind: token.Quasiquote, Text: "`", Line: line}, nil
	case ',':
		l.advance()
		return &token.Token{Kind: token.Unquote, Text: ",", Line: line}, nil
	case '"':
		return l.scanString(line)
	}

	if c == '.' && (l.pos+1 >= len(l.src) || isDelimiter(l.src[l.pos+1])) {
		l.advance()
		return &token.Token{Kind: token.Dot, Text: ".", Line: line}, nil
	}

	if c == '#' && l.pos+1 < len(l.src) && (l.src[l.pos+1] == 't' || l.src[l.pos+1] == 'f') &&
		(l.pos+2 >= len(l.src) || isDelimiter(l.src[l.pos+2])) {
		l.advance()
		b := l.advance()
		return &token.Token{Kind: token.Boolean, Text: "#" + string(b), Line: line}, nil
	}

	if isDigit(c) || (c == '-' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1])) {
		return l.scanNumber(line)
	}

	return l.scanIdentifier(line)
}

func (l *Lexer) scanString(line int) (*token.Token, error) {
	l.advance() // opening quote
	var b strings.Builder
	for {
		if l.peek() == 0 {
			return nil, scmerr.Syntax("unterminated string literal starting on line %d", line)
		}
		c := l.advance()
		if c == '"' {
			return &token.Token{Kind: token.StringLit, Text: b.String(), Line: line}, nil
		}
		if c == '\\' {
			if l.peek() == 0 {
				return nil, scmerr.Syntax("unterminated escape sequence in string starting on line %d", line)
			}
			esc := l.advance()
			switch esc {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte('\\')
				b.WriteByte(esc)
			}
			continue
		}
		b.WriteByte(c)
	}
}

func (l *Lexer) scanNumber(line int) (*token.Token, error) {
	start := l.pos
	if l.peek() == '-' {
		l.advance()
	}
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	text := l.src[start:l.pos]
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, scmerr.Syntax("malformed numeric literal %q on line %d", text, line)
	}
	return &token.Token{Kind: token.Numeric, Text: text, Number: n, Line: line}, nil
}

func (l *Lexer) scanIdentifier(line int) (*token.Token, error) {
	start := l.pos
	for !isDelimiter(l.peek()) {
		l.advance()
	}
	if l.pos == start {
		return nil, scmerr.Syntax("unexpected character %q on line %d", l.peek(), line)
	}
	return &token.Token{Kind: token.Identifier, Text: l.src[start:l.pos], Line: line}, nil
}
