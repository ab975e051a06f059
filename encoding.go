// Copyright (C) 2026 Akifumi Sato. All Rights Reserved.

package jsonc

import (
	"github.com/AkifumiSato/jsonc-go/internal/escape"

	"go4.org/mem"
)

// Escape encodes plain text as the body of a JSON string, the form carried
// by a String token or an ast.String. No quotation marks are added.
func Escape(src string) string { return string(escape.Quote(mem.S(src))) }

// Unescape decodes the body of a JSON string, replacing escape sequences
// with the text they denote. UTF-16 surrogate pairs written as consecutive
// \u escapes decode to a single rune; invalid escapes decode to the Unicode
// replacement rune. Unescape reports an error for an escape sequence cut
// off by the end of the input.
func Unescape(src string) (string, error) {
	dec, err := escape.Unquote(mem.S(src))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
