// Copyright (C) 2026 Akifumi Sato. All Rights Reserved.

package jsonc

// Kind is the type of a lexical token in the JSONC grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	String              // quoted string
	Number              // number literal
	True                // constant: true
	False               // constant: false
	Null                // constant: null

	BlockComment // comment: /* ... */
	LineComment  // comment: // ... <LF>
	Whitespace   // a run of space characters
	Newline      // line break "\n"
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	String:  "string",
	Number:  "number",
	True:    "true",
	False:   "false",
	Null:    "null",

	BlockComment: "block comment",
	LineComment:  "line comment",
	Whitespace:   "whitespace",
	Newline:      "line break",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// IsTrivia reports whether k is one of the kinds the parser skips over:
// whitespace, line breaks, and comments.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, Newline, LineComment, BlockComment:
		return true
	}
	return false
}

// A Token is a single lexical token together with its source location.
//
// Text holds the token's source text. For String, LineComment, and
// BlockComment tokens it is the body between the delimiters, with any
// escape sequences left exactly as written; for a Whitespace token its
// length is the length of the run. Span covers the region Text was read
// from, so its width equals the length of Text in Unicode scalar values.
// A zero-width span marks an empty string or comment body.
//
// Tokens are plain values; the slices returned by Tokenize are not
// retained by the scanner.
type Token struct {
	Kind Kind
	Text string
	Span Span
}
