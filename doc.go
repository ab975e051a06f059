// Copyright (C) 2026 Akifumi Sato. All Rights Reserved.

// Package jsonc implements a scanner and parser for JSON with comments
// (JSONC), and a serializer from the parsed tree back to compact standard
// JSON.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSONC. Construct a
// scanner from the source text and call its Next method to iterate over
// the tokens. Next advances to the next token and reports true, or false
// at the end of the input or on a lexical error; the two cases are told
// apart by Err:
//
//	s := jsonc.NewScanner(input)
//	for s.Next() {
//		log.Printf("Next token: %v", s.Token())
//	}
//	if err := s.Err(); err != nil {
//		log.Fatalf("Scanning failed: %v", err)
//	}
//
// The Tokenize function drives a scanner over the whole input and returns
// the complete token sequence, or a *LexError if any of it fails to scan.
// Unlike a standard JSON scanner, the token stream reports comments,
// whitespace runs, and line breaks. Every token carries a Span locating it
// in the input; offsets count Unicode scalar values, and the spans of
// string and comment tokens cover the body between the delimiters.
//
// String and number tokens keep their source text exactly as written:
// escape sequences are validated but not decoded, and no numeric value is
// ever computed. Number scanning is deliberately permissive and defers
// shape checking entirely; text like "--1..2ee3" scans as a single token.
//
// # Parsing
//
// Parse (from source text) and ParseTokens (from a scanned token
// sequence) parse a single JSONC document into an ast.Value tree.
// Comments, whitespace, and line breaks may appear between any two
// tokens; a trailing comma is permitted before a closing "}" or "]"; a
// duplicate object key keeps its first position and the last value
// written. Parsing is all or nothing, and errors have concrete type
// *LexError or *ParseError.
//
// # Minimizing
//
// Minimize composes the pipeline: it parses src and renders the value
// tree as compact standard JSON, dropping comments and formatting while
// preserving string and number text byte for byte:
//
//	out, err := jsonc.Minimize(src)
//	if err != nil {
//		log.Fatalf("Minimize failed: %v", err)
//	}
//
// The output is deterministic: object members keep their source order,
// and minimizing already-minimal standard JSON returns it unchanged.
package jsonc
