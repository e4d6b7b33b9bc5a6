// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import "math"

// Free releases the contents of *v and leaves it holding Null.
// Freeing an array or object frees every element and member recursively.
// Free is idempotent, and a nil pointer is ignored.
func Free(v *Value) {
	if v == nil {
		return
	}
	switch t := (*v).(type) {
	case *Array:
		for i := range t.elts {
			Free(&t.elts[i])
		}
		t.elts = nil
	case *Object:
		for i := range t.members {
			Free(&t.members[i].Value)
			t.members[i].Key = nil
		}
		t.members = nil
	}
	*v = Null{}
}

// SetNull releases the contents of *v and sets it to null.
func SetNull(v *Value) { Free(v) }

// SetBool releases the contents of *v and sets it to b.
func SetBool(v *Value, b bool) { Free(v); *v = Bool(b) }

// SetNumber releases the contents of *v and sets it to n.
func SetNumber(v *Value, n float64) { Free(v); *v = Number(n) }

// SetString releases the contents of *v and sets it to a copy of s.
func SetString(v *Value, s []byte) { Free(v); *v = NewStringBytes(s) }

// SetArray releases the contents of *v and sets it to an array holding deep
// copies of vs. The elements are copied before *v is released, so vs may
// refer to values inside *v.
func SetArray(v *Value, vs ...Value) {
	a := NewArray(vs...)
	Free(v)
	*v = a
}

// SetObject releases the contents of *v and sets it to an object holding
// deep copies of ms. As with SetArray, ms may refer to values inside *v.
func SetObject(v *Value, ms ...Member) {
	o := NewObject(ms...)
	Free(v)
	*v = o
}

// Copy returns a deep copy of v, sharing no storage with it.
// A nil value is copied as Null.
func Copy(v Value) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case String:
		return NewStringBytes(t)
	case *Array:
		return NewArray(t.elts...)
	case *Object:
		return NewObject(t.members...)
	default:
		return v // scalar
	}
}

// Move transfers the contents of *src to *dst, releasing the old contents
// of *dst, and leaves *src holding Null. Moving a value onto itself has no
// effect.
func Move(dst, src *Value) {
	if dst == src {
		return
	}
	Free(dst)
	*dst = orNull(*src)
	*src = Null{}
}

// Swap exchanges the contents of *a and *b.
func Swap(a, b *Value) { *a, *b = *b, *a }

// Equal reports whether a and b are structurally equal.
//
// Numbers compare by floating-point equality, except that NaN equals NaN
// so that a value always equals its copy. Strings compare by length and content,
// and arrays elementwise in order. Objects are equal if they have the same
// number of members and each member of a can be paired with a distinct member
// of b having the same key and an equal value, regardless of order.
func Equal(a, b Value) bool {
	a, b = orNull(a), orNull(b)
	if a.Kind() != b.Kind() {
		return false
	}
	switch t := a.(type) {
	case Null, Bool:
		return true // kinds already match
	case Number:
		u := b.(Number)
		return t == u || (math.IsNaN(float64(t)) && math.IsNaN(float64(u)))
	case String:
		return string(t) == string(b.(String))
	case *Array:
		u := b.(*Array)
		if len(t.elts) != len(u.elts) {
			return false
		}
		for i, v := range t.elts {
			if !Equal(v, u.elts[i]) {
				return false
			}
		}
		return true
	case *Object:
		return equalMembers(t.members, b.(*Object).members)
	}
	panic("unreachable")
}

func equalMembers(as, bs []Member) bool {
	if len(as) != len(bs) {
		return false
	}
	used := make([]bool, len(bs))
nextMember:
	for _, m := range as {
		for j, n := range bs {
			if !used[j] && string(m.Key) == string(n.Key) && Equal(m.Value, n.Value) {
				used[j] = true
				continue nextMember
			}
		}
		return false
	}
	return true
}
