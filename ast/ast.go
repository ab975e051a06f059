// Copyright (C) 2026 Akifumi Sato. All Rights Reserved.

// Package ast defines the value tree for JSON documents parsed from JSONC
// source, and a serializer from the tree back to compact standard JSON.
package ast

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/AkifumiSato/jsonc-go/internal/escape"

	"go4.org/mem"
)

// A Value is a single JSON value. The concrete types are String, Number,
// Bool, Null, Object, and Array; the set is closed.
type Value interface {
	// JSON renders the value as compact standard JSON.
	JSON() string

	isValue()
}

// A String is a string value. It holds the raw body of the string as
// written in source: escape sequences are preserved and the quotation
// marks are not included. Use Text to construct a String from plain text.
type String string

func (String) isValue() {}

// JSON wraps the stored body in quotation marks. The body is emitted
// verbatim, so escape sequences round-trip unchanged.
func (s String) JSON() string { return `"` + string(s) + `"` }

// Unescape returns the plain text the string denotes, decoding any escape
// sequences in the stored body.
func (s String) Unescape() (string, error) {
	dec, err := escape.Unquote(mem.S(string(s)))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// A Number is a number value. It holds the literal text as written in
// source and is never reinterpreted numerically, so formatting such as
// trailing zeroes survives a round trip.
type Number string

func (Number) isValue() {}

func (n Number) JSON() string { return string(n) }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) isValue() {}

func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// Null represents the null constant.
type Null struct{}

func (Null) isValue() {}

func (Null) JSON() string { return "null" }

// A Member is a single key-value pair belonging to an Object. Key holds
// the raw body of the key string, in the same form as String.
type Member struct {
	Key   string
	Value Value
}

func (m Member) JSON() string { return `"` + m.Key + `":` + m.Value.JSON() }

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// An Object is a collection of key-value members. Members keep the order
// of their first appearance in source, and keys are unique.
type Object []*Member

func (Object) isValue() {}

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

func (o Object) Len() int { return len(o) }

// Sort sorts the members of o in ascending order by key.
func (o Object) Sort() {
	slices.SortFunc(o, func(a, b *Member) int { return strings.Compare(a.Key, b.Key) })
}

func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(o[0].JSON())
	for _, m := range o[1:] {
		sb.WriteByte(',')
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// An Array is a sequence of values.
type Array []Value

func (Array) isValue() {}

func (a Array) Len() int { return len(a) }

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a[0].JSON())
	for _, v := range a[1:] {
		sb.WriteByte(',')
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// Text constructs a String from plain text, escaping it as needed so that
// the result serializes to valid JSON.
func Text(s string) String { return String(escape.Quote(mem.S(s))) }

// Int constructs a Number from an integer.
func Int(z int64) Number { return Number(strconv.FormatInt(z, 10)) }

// Float constructs a Number from a floating-point value.
func Float(f float64) Number { return Number(strconv.FormatFloat(f, 'g', -1, 64)) }

// ToValue converts a string, int, int64, float64, bool, nil, or Value into
// a Value. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return Text(t)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case bool:
		return Bool(t)
	case nil:
		return Null{}
	}
	panic(fmt.Sprintf("invalid value %T", v))
}

// Field constructs an object member with the given key and value. The
// value must be a string, int, int64, float64, bool, nil, or Value; Field
// panics otherwise.
func Field(key string, value any) *Member {
	return &Member{Key: string(Text(key)), Value: ToValue(value)}
}

// ArrayOf constructs an Array from the given values, converting each with
// ToValue.
func ArrayOf[T any](vs ...T) Array {
	out := make(Array, len(vs))
	for i, v := range vs {
		out[i] = ToValue(v)
	}
	return out
}
