// Package parser builds the Value tree from a token stream (spec §4.1).
package parser

import (
	"goscheme/internal/scmerr"
	"goscheme/internal/token"
	"goscheme/internal/value"
)

// Parser consumes a fixed token slice, one top-level expression per call
// to Parse.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser over tokens.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Done reports whether every token has been consumed.
func (p *Parser) Done() bool { return p.pos >= len(p.tokens) }

func (p *Parser) peek() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) advance() token.Token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

// Parse reads one top-level expression. Repeated calls consume successive
// expressions until the stream is empty.
func (p *Parser) Parse() (*value.Value, error) {
	if p.Done() {
		return nil, scmerr.Syntax("unexpected end of input")
	}
	return p.parseExpr()
}

var readerMacro = map[token.Kind]string{
	token.Quote:      "quote",
	token.Quasiquote: "quasiquote",
	token.Unquote:    "unquote",
}

func (p *Parser) parseExpr() (*value.Value, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, scmerr.Syntax("unexpected end of input, expected an expression")
	}

	if sym, isMacro := readerMacro[tok.Kind]; isMacro {
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return value.SliceToList([]*value.Value{value.NewSymbol(sym), inner}), nil
	}

	switch tok.Kind {
	case token.LeftParen:
		p.advance()
		return p.parseList()
	case token.RightParen:
		return nil, scmerr.Syntax("unexpected ')'")
	case token.Dot:
		return nil, scmerr.Syntax("unexpected '.'")
	case token.Boolean:
		p.advance()
		return value.NewBoolean(tok.Text == "#t"), nil
	case token.Numeric:
		p.advance()
		return value.NewNumber(tok.Number), nil
	case token.StringLit:
		p.advance()
		return value.NewString(tok.Text), nil
	case token.Identifier:
		p.advance()
		return value.NewSymbol(tok.Text), nil
	default:
		return nil, scmerr.Syntax("unexpected token %s", tok.Kind)
	}
}

// parseList reads expressions until a closing paren, optionally with a
// dotted tail, having already consumed the opening paren.
func (p *Parser) parseList() (*value.Value, error) {
	var elems []*value.Value
	tail := value.NewNil()

	for {
		tok, ok := p.peek()
		if !ok {
			return nil, scmerr.Syntax("unbalanced parentheses: missing ')'")
		}
		if tok.Kind == token.RightParen {
			p.advance()
			break
		}
		if tok.Kind == token.Dot {
			p.advance()
			dotted, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			tail = dotted
			closeTok, ok := p.peek()
			if !ok || closeTok.Kind != token.RightParen {
				return nil, scmerr.Syntax("'.' must be followed by exactly one expression and ')'")
			}
			p.advance()
			break
		}
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = value.Cons(elems[i], result)
	}
	return result, nil
}
