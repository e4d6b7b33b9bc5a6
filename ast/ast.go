// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree of JSON values, and a parser that constructs
// value trees from JSON source.
//
// A Value is a sum type: its concrete type is exactly one of Null, Bool,
// Number, String, *Array, or *Object. Callers recover the payload of a value
// with a type switch, so that reading a field of the wrong variant is a
// compile-time or explicit type-assertion failure rather than a silent misread.
//
// Arrays and objects exclusively own their elements. The Set functions and
// the constructors NewArray and NewObject copy their arguments deeply; Free
// releases a value and everything it contains.
package ast

import (
	"fmt"
	"strconv"
)

// A Value is an arbitrary JSON value.
// The concrete type is one of Null, Bool, Number, String, *Array, or *Object.
type Value interface {
	// Kind reports which of the JSON value kinds this value holds.
	Kind() Kind

	isValue()
}

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota
	FalseKind
	TrueKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindStr = [...]string{
	NullKind:   "null",
	FalseKind:  "false",
	TrueKind:   "true",
	NumberKind: "number",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindStr[k]
}

// KindOf reports the kind of v. A nil Value is treated as null.
func KindOf(v Value) Kind {
	if v == nil {
		return NullKind
	}
	return v.Kind()
}

// Null represents the null constant.
type Null struct{}

func (Null) Kind() Kind     { return NullKind }
func (Null) String() string { return "null" }
func (Null) isValue()       {}

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind reports TrueKind or FalseKind according to the value of b.
func (b Bool) Kind() Kind {
	if b {
		return TrueKind
	}
	return FalseKind
}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
func (Bool) isValue()         {}

// A Number is a floating-point value.
type Number float64

func (Number) Kind() Kind { return NumberKind }

// Float64 returns the value of n.
func (n Number) Float64() float64 { return float64(n) }

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }
func (Number) isValue()         {}

// A String is a string value. Its length is explicit and its contents may
// include any byte, including NUL.
type String []byte

// NewString returns a String holding a copy of s.
func NewString(s string) String { return String(s) }

// NewStringBytes returns a String holding a copy of b.
func NewStringBytes(b []byte) String {
	out := make(String, len(b))
	copy(out, b)
	return out
}

func (String) Kind() Kind { return StringKind }

// Len reports the length of s in bytes.
func (s String) Len() int { return len(s) }

// Bytes returns the contents of s. The result shares storage with s.
func (s String) Bytes() []byte { return []byte(s) }

// String returns a copy of the contents of s as a Go string.
func (s String) String() string { return string(s) }

func (String) isValue() {}

// ToValue converts a string, []byte, int, int64, float64, bool, nil, or
// Value into a Value. Strings and byte slices are copied. It panics if v does
// not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case string:
		return NewString(t)
	case []byte:
		return NewStringBytes(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case float64:
		return Number(t)
	case bool:
		return Bool(t)
	default:
		panic(fmt.Sprintf("cannot convert %T to a Value", v))
	}
}

// As reports whether v has concrete type T, and if so returns it.
func As[T Value](v Value) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// orNull returns v, or Null if v == nil.
func orNull(v Value) Value {
	if v == nil {
		return Null{}
	}
	return v
}
