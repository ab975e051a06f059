// Copyright (C) 2026 Akifumi Sato. All Rights Reserved.

package jsonc

import (
	"fmt"

	"github.com/AkifumiSato/jsonc-go/ast"
)

// Parse scans src and parses it as a single JSONC document, returning its
// value tree. A failure is reported as a *LexError or a *ParseError.
func Parse(src string) (ast.Value, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}

// ParseTokens parses a token sequence as a single JSONC document.
// Whitespace, line break, and comment tokens are skipped transparently;
// the remaining tokens must form exactly one value. The parse is all or
// nothing: on error no partial tree is returned.
func ParseTokens(tokens []Token) (ast.Value, error) {
	p := &parser{toks: tokens}
	tok, ok := p.next()
	if !ok {
		return nil, &ParseError{Kind: NotFoundToken, Message: "no value in input"}
	}
	v, err := p.parseValue(tok)
	if err != nil {
		return nil, err
	}
	if extra, ok := p.next(); ok {
		return nil, &ParseError{
			Kind:    UnexpectedToken,
			Message: fmt.Sprintf("input contains multiple values, got %v", extra.Kind),
			Span:    extra.Span,
		}
	}
	return v, nil
}

// A parser is a cursor over a token sequence that dispenses grammar
// tokens and records the last one handed out for error attribution.
type parser struct {
	toks []Token
	pos  int
	last Token
}

// next returns the next grammar token, skipping trivia. It reports false
// when the sequence is exhausted.
func (p *parser) next() (Token, bool) {
	for p.pos < len(p.toks) {
		tok := p.toks[p.pos]
		p.pos++
		if tok.Kind.IsTrivia() {
			continue
		}
		p.last = tok
		return tok, true
	}
	return Token{}, false
}

// parseValue consumes a single value beginning at tok.
func (p *parser) parseValue(tok Token) (ast.Value, error) {
	switch tok.Kind {
	case String:
		return ast.String(tok.Text), nil
	case Number:
		return ast.Number(tok.Text), nil
	case True, False:
		return ast.Bool(tok.Kind == True), nil
	case Null:
		return ast.Null{}, nil
	case LBrace:
		return p.parseObject(tok)
	case LSquare:
		return p.parseArray(tok)
	}
	return nil, p.unexpected(tok, "expected a value, got %v", tok.Kind)
}

// needValue consumes a required value, reporting the end of the sequence
// as UnexpectedConsumedUpToken.
func (p *parser) needValue() (ast.Value, error) {
	tok, ok := p.next()
	if !ok {
		return nil, p.consumedUp()
	}
	return p.parseValue(tok)
}

// parseObject consumes the members of an object. A comma is required
// between members and permitted after the last one; duplicate keys keep
// their first position and the last value written.
// Precondition: open is the object's LBrace.
func (p *parser) parseObject(open Token) (ast.Value, error) {
	var members ast.Object
	for {
		tok, ok := p.next()
		if !ok {
			return nil, p.unclosed(open, "object")
		}
		if tok.Kind == RBrace {
			return members, nil
		}
		if tok.Kind == Comma {
			if len(members) == 0 {
				return nil, p.unexpected(tok, "expected %v or string, got %v", RBrace, Comma)
			}
			next, ok := p.next()
			if !ok {
				return nil, p.unclosed(open, "object")
			}
			if next.Kind == RBrace {
				return members, nil // trailing comma
			}
			tok = next
		} else if len(members) != 0 {
			return nil, p.unexpected(tok, "expected %v or %v, got %v", Comma, RBrace, tok.Kind)
		}

		if tok.Kind != String {
			return nil, p.unexpected(tok, "expected string for object key, got %v", tok.Kind)
		}
		key := tok.Text

		colon, ok := p.next()
		if !ok {
			return nil, p.unclosed(open, "object")
		}
		if colon.Kind != Colon {
			return nil, p.unexpected(colon, "expected %v, got %v", Colon, colon.Kind)
		}

		val, err := p.needValue()
		if err != nil {
			return nil, err
		}
		if m := members.Find(key); m != nil {
			m.Value = val
		} else {
			members = append(members, &ast.Member{Key: key, Value: val})
		}
	}
}

// parseArray consumes the elements of an array. A comma is required
// between elements and permitted after the last one.
// Precondition: open is the array's LSquare.
func (p *parser) parseArray(open Token) (ast.Value, error) {
	var elts ast.Array
	for {
		tok, ok := p.next()
		if !ok {
			return nil, p.unclosed(open, "array")
		}
		if tok.Kind == RSquare {
			return elts, nil
		}
		if tok.Kind == Comma {
			if len(elts) == 0 {
				return nil, p.unexpected(tok, "expected %v or a value, got %v", RSquare, Comma)
			}
			next, ok := p.next()
			if !ok {
				return nil, p.unclosed(open, "array")
			}
			if next.Kind == RSquare {
				return elts, nil // trailing comma
			}
			tok = next
		} else if len(elts) != 0 {
			return nil, p.unexpected(tok, "expected %v or %v, got %v", Comma, RSquare, tok.Kind)
		}

		v, err := p.parseValue(tok)
		if err != nil {
			return nil, err
		}
		elts = append(elts, v)
	}
}

func (p *parser) unexpected(tok Token, msg string, args ...any) *ParseError {
	return &ParseError{
		Kind:    UnexpectedToken,
		Message: fmt.Sprintf(msg, args...),
		Span:    tok.Span,
	}
}

// unclosed reports an object or array whose closing bracket never
// arrived. The span runs from the opening bracket through the last
// grammar token consumed.
func (p *parser) unclosed(open Token, what string) *ParseError {
	return &ParseError{
		Kind:    UnClosedToken,
		Message: "unclosed " + what,
		Span:    open.Span.Union(p.last.Span),
	}
}

// consumedUp reports a token sequence that ended where a value was
// required. The span is zero-width after the last grammar token.
func (p *parser) consumedUp() *ParseError {
	end := p.last.Span.End
	return &ParseError{
		Kind:    UnexpectedConsumedUpToken,
		Message: "input ended where a value was required",
		Span:    Span{Pos: end, End: end},
	}
}

// ParseErrorKind enumerates the classes of parse error.
type ParseErrorKind byte

// Constants defining the valid ParseErrorKind values.
const (
	NotFoundToken             ParseErrorKind = iota // no value in the input at all
	UnexpectedToken                                 // a token the grammar does not allow here
	UnexpectedConsumedUpToken                       // the sequence ended where a value was required
	UnClosedToken                                   // an object or array was never closed
)

var parseErrStr = [...]string{
	NotFoundToken:             "no token found",
	UnexpectedToken:           "unexpected token",
	UnexpectedConsumedUpToken: "input ended early",
	UnClosedToken:             "unclosed token",
}

func (k ParseErrorKind) String() string {
	v := int(k)
	if v >= len(parseErrStr) {
		return "unknown error"
	}
	return parseErrStr[v]
}

// A ParseError reports a syntax error found while parsing a token
// sequence. Span locates the offending token where one exists; it is zero
// when the error has no position, and for an unclosed object or array it
// covers everything from the opening bracket to the last token consumed.
type ParseError struct {
	Kind    ParseErrorKind
	Message string
	Span    Span
}

func (e *ParseError) Error() string {
	if e.Span.IsZero() {
		return e.Message
	}
	return fmt.Sprintf("at %v: %s", e.Span, e.Message)
}
