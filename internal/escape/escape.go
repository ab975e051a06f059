// Copyright (C) 2026 Akifumi Sato. All Rights Reserved.

// Package escape converts between plain text and the escaped body form of
// JSON strings, without the enclosing quotation marks.
package escape

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var shortEsc = [32]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

const hexDigit = "0123456789abcdef"

// Quote encodes plain text as the body of a JSON string. Quotation marks,
// backslashes, control characters, and the JavaScript line and paragraph
// separators are escaped; everything else passes through as UTF-8.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if n <= 0 {
			n = 1
		}
		src = src.SliceFrom(n)
		switch {
		case r == '"' || r == '\\':
			buf = append(buf, '\\', byte(r))
		case r == '\u2028':
			buf = append(buf, `\u2028`...)
		case r == '\u2029':
			buf = append(buf, `\u2029`...)
		case r == utf8.RuneError:
			buf = append(buf, `\ufffd`...)
		case r < ' ':
			if e := shortEsc[r]; e != 0 {
				buf = append(buf, '\\', e)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return buf
}

// Unquote decodes the body of a JSON string into plain UTF-8. The input
// must have the enclosing quotation marks already removed.
//
// Recognized escape sequences are replaced by the text they denote. A
// \uXXXX escape whose value is a UTF-16 high surrogate joins with an
// immediately following \uXXXX low surrogate; an unpaired half or invalid
// hex digits decode to the Unicode replacement rune. Unquote reports an
// error only for an escape sequence cut off by the end of the input.
func Unquote(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}
	dec := make([]byte, 0, src.Len())
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		b := src.At(0)
		src = src.SliceFrom(1)
		switch b {
		case '"', '\\', '/':
			dec = append(dec, b)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, rest, err := decodeHexRune(src)
			if err != nil {
				return nil, err
			}
			dec = utf8.AppendRune(dec, r)
			src = rest
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			return dec, nil
		}
	}
}

// decodeHexRune decodes the four hex digits of a \u escape, joining a
// surrogate pair when a matching second escape follows immediately.
func decodeHexRune(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, errors.New("incomplete Unicode escape")
	}
	r, ok := parseHex(src.SliceTo(4))
	rest := src.SliceFrom(4)
	if !ok {
		return utf8.RuneError, rest, nil
	}
	if !utf16.IsSurrogate(r) {
		return r, rest, nil
	}
	if rest.Len() >= 6 && rest.At(0) == '\\' && rest.At(1) == 'u' {
		if w, ok := parseHex(rest.SliceFrom(2).SliceTo(4)); ok {
			if c := utf16.DecodeRune(r, w); c != utf8.RuneError {
				return c, rest.SliceFrom(6), nil
			}
		}
	}
	return utf8.RuneError, rest, nil
}

func parseHex(data mem.RO) (rune, bool) {
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += rune(b - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}
