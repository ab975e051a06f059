// Copyright (C) 2026 Akifumi Sato. All Rights Reserved.

package jsonc_test

import (
	"errors"
	"testing"

	jsonc "github.com/AkifumiSato/jsonc-go"
	"github.com/AkifumiSato/jsonc-go/ast"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Value
	}{
		// Scalars
		{`""`, ast.String("")},
		{`"sato"`, ast.String("sato")},
		{`20`, ast.Number("20")},
		{`999.990000`, ast.Number("999.990000")},
		{`true`, ast.Bool(true)},
		{`false`, ast.Bool(false)},
		{`null`, ast.Null{}},

		// Escape sequences stay exactly as written; raw multibyte
		// runes pass through untouched.
		{`"a\tb"`, ast.String(`a\tb`)},
		{`"\ud83d\ude00"`, ast.String(`\ud83d\ude00`)},
		{`"\u3042\u3044\u3046abc"`, ast.String(`\u3042\u3044\u3046abc`)},
		{`"😀"`, ast.String(`😀`)},

		// Trivia around a value is skipped.
		{" \n true // tail\n", ast.Bool(true)},
		{"/* a */ 42 /* b */", ast.Number("42")},

		// Objects
		{`{}`, ast.Object{}},
		{`{"name": "sato", "age": 20}`, ast.Object{
			{Key: "name", Value: ast.String("sato")},
			{Key: "age", Value: ast.Number("20")},
		}},
		{`{"a": 1,}`, ast.Object{{Key: "a", Value: ast.Number("1")}}},

		// A repeated key keeps its first position but the last value.
		{`{"a":1, "b":2, "a":3}`, ast.Object{
			{Key: "a", Value: ast.Number("3")},
			{Key: "b", Value: ast.Number("2")},
		}},

		// Arrays
		{`[]`, ast.Array{}},
		{`[1, 2,]`, ast.Array{ast.Number("1"), ast.Number("2")}},
		{`["first", 2, false, null]`, ast.Array{
			ast.String("first"), ast.Number("2"), ast.Bool(false), ast.Null{},
		}},

		// Nesting
		{`{"a": {"b": [true, null]}}`, ast.Object{
			{Key: "a", Value: ast.Object{
				{Key: "b", Value: ast.Array{ast.Bool(true), ast.Null{}}},
			}},
		}},

		// Comments may appear between any two tokens.
		{`{ // c1
  "a" /* c2 */: /* c3 */ 1, // c4
}`, ast.Object{{Key: "a", Value: ast.Number("1")}}},
	}

	opt := cmpopts.EquateEmpty()
	for _, test := range tests {
		got, err := jsonc.Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got, opt); diff != "" {
			t.Errorf("Parse(%#q): (-want, +got)\n%s", test.input, diff)
		}
	}
}

// ParseTokens does not need source locations or punctuation text; a token
// sequence assembled by hand parses like scanned input.
func TestParseTokens(t *testing.T) {
	toks := []jsonc.Token{
		{Kind: jsonc.LBrace},
		{Kind: jsonc.Whitespace, Text: "  "},
		{Kind: jsonc.String, Text: "a"},
		{Kind: jsonc.Colon},
		{Kind: jsonc.LineComment, Text: " note"},
		{Kind: jsonc.Number, Text: "1"},
		{Kind: jsonc.RBrace},
	}
	want := ast.Object{{Key: "a", Value: ast.Number("1")}}

	got, err := jsonc.ParseTokens(toks)
	if err != nil {
		t.Fatalf("ParseTokens: unexpected error: %v", err)
	}
	if diff := cmp.Diff(ast.Value(want), got); diff != "" {
		t.Errorf("ParseTokens: (-want, +got)\n%s", diff)
	}

	if v, err := jsonc.ParseTokens(nil); err == nil {
		t.Errorf("ParseTokens(nil): got %v, want error", v)
	}
	if v, err := jsonc.ParseTokens([]jsonc.Token{{Kind: jsonc.Newline}}); err == nil {
		t.Errorf("ParseTokens(newline only): got %v, want error", v)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  jsonc.ParseErrorKind
	}{
		{"", jsonc.NotFoundToken},
		{"  \n ", jsonc.NotFoundToken},
		{"// comment only\n", jsonc.NotFoundToken},
		{"/* nothing here */", jsonc.NotFoundToken},

		{`{,"a":1}`, jsonc.UnexpectedToken},
		{`[,1]`, jsonc.UnexpectedToken},
		{`{"a": 1 "b": 2}`, jsonc.UnexpectedToken},
		{`[1 2]`, jsonc.UnexpectedToken},
		{`{"a" 1}`, jsonc.UnexpectedToken},
		{`{1: 2}`, jsonc.UnexpectedToken},
		{`{"a":}`, jsonc.UnexpectedToken},
		{`:`, jsonc.UnexpectedToken},
		{`true false`, jsonc.UnexpectedToken},
		{`{"a":1} 2`, jsonc.UnexpectedToken},

		{`{"a":`, jsonc.UnexpectedConsumedUpToken},
		{`{"a": /* pending */`, jsonc.UnexpectedConsumedUpToken},
		{`{"a":1,"b":`, jsonc.UnexpectedConsumedUpToken},

		{`{`, jsonc.UnClosedToken},
		{`{"a"`, jsonc.UnClosedToken},
		{`{"a":1`, jsonc.UnClosedToken},
		{`{"a":1,`, jsonc.UnClosedToken},
		{`[`, jsonc.UnClosedToken},
		{`[1,`, jsonc.UnClosedToken},
		{`[[1]`, jsonc.UnClosedToken},
	}

	for _, test := range tests {
		v, err := jsonc.Parse(test.input)
		if err == nil {
			t.Errorf("Parse(%#q): got %v, want error", test.input, v)
			continue
		}
		var perr *jsonc.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%#q): got error %v, want *ParseError", test.input, err)
		} else if perr.Kind != test.kind {
			t.Errorf("Parse(%#q): got %v, want %v", test.input, perr.Kind, test.kind)
		}
	}
}

func TestParseErrorMessages(t *testing.T) {
	tests := []struct {
		input string
		estr  string
	}{
		{"", "no value in input"},
		{"// comment only\n", "no value in input"},
		{`{,"a":1}`, `at 1-2: expected "}" or string, got ","`},
		{`[,1]`, `at 1-2: expected "]" or a value, got ","`},
		{`{"a": 1 "b": 2}`, `at 9-10: expected "," or "}", got string`},
		{`[1 2]`, `at 3-4: expected "," or "]", got number`},
		{`{"a" 1}`, `at 5-6: expected ":", got number`},
		{`{1: 2}`, `at 1-2: expected string for object key, got number`},
		{`{"a":}`, `at 5-6: expected a value, got "}"`},
		{`:`, `at 0-1: expected a value, got ":"`},
		{`true false`, `at 5-10: input contains multiple values, got false`},
		{`{"a":`, `at 5-5: input ended where a value was required`},
		{`{`, `at 0-1: unclosed object`},
		{`{"a"`, `at 0-3: unclosed object`},
		{`{"a":1`, `at 0-6: unclosed object`},
		{`["x"`, `at 0-3: unclosed array`},
		{`[1,`, `at 0-3: unclosed array`},
	}

	for _, test := range tests {
		_, err := jsonc.Parse(test.input)
		if err == nil {
			t.Errorf("Parse(%#q): got nil, want error %q", test.input, test.estr)
		} else if got := err.Error(); got != test.estr {
			t.Errorf("Parse(%#q): got error %q, want %q", test.input, got, test.estr)
		}
	}
}
