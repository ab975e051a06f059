// Copyright (C) 2026 Akifumi Sato. All Rights Reserved.

package jsonc

// Minimize parses src as a JSONC document and renders it as compact
// standard JSON: comments, whitespace, and trailing commas are removed,
// string and number text is preserved byte for byte, and object members
// keep their source order. Minimizing already-minimal standard JSON
// returns it unchanged.
func Minimize(src string) (string, error) {
	v, err := Parse(src)
	if err != nil {
		return "", err
	}
	return v.JSON(), nil
}
