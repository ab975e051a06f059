// Copyright (C) 2026 Akifumi Sato. All Rights Reserved.

package jsonc

import (
	"fmt"
	"strings"
	"unicode"
)

// A Scanner reads lexical tokens from JSONC source text. Each call to Next
// advances the scanner to the next token, or reports an error.
type Scanner struct {
	src []rune
	pos int
	tok Token
	err error
}

// NewScanner constructs a scanner that reads tokens from input. The input
// is decoded up front so that span offsets count Unicode scalar values.
func NewScanner(input string) *Scanner {
	return &Scanner{src: []rune(input)}
}

// Tokenize scans input and returns its complete token sequence. The scan is
// all or nothing: on error no tokens are returned, only a *LexError
// describing the failure.
func Tokenize(input string) ([]Token, error) {
	s := NewScanner(input)
	var toks []Token
	for s.Next() {
		toks = append(toks, s.Token())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return toks, nil
}

// Next advances s to the next token of the input. It reports false when the
// input is exhausted or a scan error occurs; the two cases are distinguished
// by Err.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	for s.pos < len(s.src) {
		start := s.pos
		ch := s.src[s.pos]
		s.pos++

		// Handle punctuation.
		if t, ok := selfDelim(ch); ok {
			return s.emit(t, string(ch), start)
		}

		switch {
		case ch == '"':
			return s.scanString()
		case isNumberChar(ch):
			return s.scanNumber(start)
		case ch == 't':
			return s.scanWord(start, "true", True)
		case ch == 'f':
			return s.scanWord(start, "false", False)
		case ch == 'n':
			return s.scanWord(start, "null", Null)
		case ch == '/':
			return s.scanComment(start)
		case ch == ' ':
			return s.scanSpaces(start)
		case ch == '\n':
			return s.emit(Newline, "\n", start)
		}

		// Anything else, tabs and carriage returns included, scans to no
		// token at all.
	}
	return false
}

// Token returns the current token. Its value is valid after a call to Next
// that reported true.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the error that stopped the scan, or nil if the input was
// exhausted without error.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) emit(kind Kind, text string, start int) bool {
	s.tok = Token{Kind: kind, Text: text, Span: Span{Pos: start, End: s.pos}}
	return true
}

// scanString scans the body of a string whose opening quote has been
// consumed. Escape sequences are checked but kept verbatim in the token
// text; the token span covers the body between the quotes.
func (s *Scanner) scanString() bool {
	start := s.pos
	var sb strings.Builder
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		s.pos++
		switch ch {
		case '"':
			s.tok = Token{Kind: String, Text: sb.String(), Span: Span{Pos: start, End: s.pos - 1}}
			return true
		case '\\':
			if s.pos == len(s.src) {
				return s.unterminated()
			}
			esc := s.src[s.pos]
			s.pos++
			switch esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				sb.WriteRune('\\')
				sb.WriteRune(esc)
			case 'u':
				// A \u escape takes exactly the next four characters
				// verbatim. Hex validity is not checked here.
				if len(s.src)-s.pos < 4 {
					return s.unterminated()
				}
				sb.WriteString(`\u`)
				sb.WriteString(string(s.src[s.pos : s.pos+4]))
				s.pos += 4
			default:
				return s.fail(&LexError{
					Kind: NotEscapeString,
					Text: `\` + string(esc),
					Span: Span{Pos: s.pos - 2, End: s.pos},
				})
			}
		default:
			sb.WriteRune(ch)
		}
	}
	return s.unterminated()
}

// scanNumber scans the remainder of a number whose first character is at
// start. The scan is greedy over the number character class and does no
// shape checking; end of input terminates the number cleanly.
func (s *Scanner) scanNumber(start int) bool {
	for s.pos < len(s.src) && isNumberChar(s.src[s.pos]) {
		s.pos++
	}
	return s.emit(Number, string(s.src[start:s.pos]), start)
}

// scanWord matches the constant want beginning at start, or fails with
// InvalidChars carrying the characters actually present.
func (s *Scanner) scanWord(start int, want string, kind Kind) bool {
	end := start + len(want)
	if end > len(s.src) {
		end = len(s.src)
	}
	got := string(s.src[start:end])
	s.pos = end
	if got != want {
		return s.fail(&LexError{Kind: InvalidChars, Text: got, Span: Span{Pos: start, End: end}})
	}
	return s.emit(kind, want, start)
}

func (s *Scanner) scanComment(start int) bool {
	if s.pos == len(s.src) {
		return s.unterminated()
	}
	ch := s.src[s.pos]
	s.pos++
	switch ch {
	case '/': // line comment to LF
		body := s.pos
		for s.pos < len(s.src) {
			if s.src[s.pos] == '\n' {
				return s.emit(LineComment, string(s.src[body:s.pos]), body)
			}
			s.pos++
		}
		return s.unterminated()

	case '*': // block comment
		body := s.pos
		run := -1 // start of the pending asterisk run, or -1 when none
		for s.pos < len(s.src) {
			ch := s.src[s.pos]
			s.pos++
			switch {
			case ch == '*':
				if run < 0 {
					run = s.pos - 1
				}
			case ch == '/' && run >= 0:
				// The final asterisk run belongs to the terminator.
				// Earlier runs were already part of the body.
				s.tok = Token{
					Kind: BlockComment,
					Text: string(s.src[body:run]),
					Span: Span{Pos: body, End: run},
				}
				return true
			default:
				run = -1
			}
		}
		return s.unterminated()

	default:
		return s.fail(&LexError{
			Kind: InvalidChars,
			Text: "/" + string(ch),
			Span: Span{Pos: start, End: s.pos},
		})
	}
}

func (s *Scanner) scanSpaces(start int) bool {
	for s.pos < len(s.src) && s.src[s.pos] == ' ' {
		s.pos++
	}
	return s.emit(Whitespace, string(s.src[start:s.pos]), start)
}

// LexErrorKind enumerates the classes of lexical error.
type LexErrorKind byte

// Constants defining the valid LexErrorKind values.
const (
	InvalidChars           LexErrorKind = iota // characters that form no valid token
	NotExistTerminalSymbol                     // input ended before a required terminator
	NotEscapeString                            // unrecognized escape sequence in a string
)

var lexErrStr = [...]string{
	InvalidChars:           "invalid characters",
	NotExistTerminalSymbol: "missing terminal symbol",
	NotEscapeString:        "invalid escape sequence",
}

func (k LexErrorKind) String() string {
	v := int(k)
	if v >= len(lexErrStr) {
		return "unknown error"
	}
	return lexErrStr[v]
}

// A LexError reports a lexical error and its location in the input. Text
// holds the offending characters when they are known. For an error reported
// at the end of the input the span is zero-width.
type LexError struct {
	Kind LexErrorKind
	Text string
	Span Span
}

func (e *LexError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("at %v: %v %q", e.Span, e.Kind, e.Text)
	}
	return fmt.Sprintf("at %v: %v", e.Span, e.Kind)
}

func (s *Scanner) fail(err *LexError) bool {
	s.err = err
	return false
}

// unterminated reports that the input ended inside a token that requires a
// closing delimiter.
func (s *Scanner) unterminated() bool {
	n := len(s.src)
	return s.fail(&LexError{Kind: NotExistTerminalSymbol, Span: Span{Pos: n, End: n}})
}

// isNumberChar reports whether ch can appear in a number literal. The class
// is deliberately loose: any Unicode number character plus the punctuation
// of signs, fractions, and exponents. No shape checking happens at scan
// time, so text like "--1..2ee3" scans as a single Number token.
func isNumberChar(ch rune) bool {
	return unicode.IsNumber(ch) || ch == '.' || ch == '-' || ch == 'e' || ch == 'E'
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
