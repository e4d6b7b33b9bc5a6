// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"iter"
	"slices"
)

// An Array is an ordered sequence of values.
// The array owns its elements; methods that add a value take ownership of it.
// Indexes out of range are programming errors and cause a panic.
type Array struct {
	elts []Value
}

// NewArray constructs an array holding deep copies of vs.
func NewArray(vs ...Value) *Array {
	a := &Array{elts: make([]Value, 0, len(vs))}
	for _, v := range vs {
		a.elts = append(a.elts, Copy(v))
	}
	return a
}

func (*Array) Kind() Kind { return ArrayKind }
func (*Array) isValue()   {}

func (a *Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a.elts)) }

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.elts) }

// Cap reports the number of elements a can hold without reallocating.
func (a *Array) Cap() int { return cap(a.elts) }

// At returns the element of a at index i.
func (a *Array) At(i int) Value { return a.elts[i] }

// Set replaces the element at index i with v, releasing the old element.
func (a *Array) Set(i int, v Value) {
	Free(&a.elts[i])
	a.elts[i] = orNull(v)
}

// Values is a range function over the index and value of each element of a.
func (a *Array) Values() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range a.elts {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Append adds vs to the end of a. A nil value is stored as Null.
func (a *Array) Append(vs ...Value) {
	for _, v := range vs {
		a.elts = append(a.elts, orNull(v))
	}
}

// PopBack removes and returns the last element of a.
// It panics if a is empty.
func (a *Array) PopBack() Value {
	if len(a.elts) == 0 {
		panic("ast: PopBack of empty array")
	}
	n := len(a.elts) - 1
	last := a.elts[n]
	a.elts[n] = nil
	a.elts = a.elts[:n]
	return last
}

// Insert inserts v at index i, shifting later elements up.
// Index i may equal a.Len(), which appends.
func (a *Array) Insert(i int, v Value) {
	a.elts = slices.Insert(a.elts, i, orNull(v))
}

// Erase releases and removes n elements beginning at index i.
func (a *Array) Erase(i, n int) {
	for j := i; j < i+n; j++ {
		Free(&a.elts[j])
	}
	a.elts = slices.Delete(a.elts, i, i+n)
}

// Clear releases and removes all the elements of a. The capacity of a is
// not changed.
func (a *Array) Clear() { a.Erase(0, len(a.elts)) }

// Reserve ensures that a has capacity for at least n elements.
func (a *Array) Reserve(n int) {
	if n > cap(a.elts) {
		a.elts = slices.Grow(a.elts, n-len(a.elts))
	}
}

// Shrink reduces the capacity of a to its length.
func (a *Array) Shrink() { a.elts = slices.Clip(a.elts) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   String
	Value Value
}

// Field constructs an object member with the given key and value.
// The value must be acceptable to ToValue.
func Field(key string, value any) Member {
	return Member{Key: NewString(key), Value: ToValue(value)}
}

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", string(m.Key)) }

// An Object is an ordered collection of key-value members. Insertion order
// is preserved, and keys need not be unique.
// The object owns its members; methods that add a value take ownership of it.
// Indexes out of range are programming errors and cause a panic.
type Object struct {
	members []Member
}

// NewObject constructs an object holding deep copies of ms, in order.
func NewObject(ms ...Member) *Object {
	o := &Object{members: make([]Member, 0, len(ms))}
	for _, m := range ms {
		o.members = append(o.members, Member{
			Key:   NewStringBytes(m.Key),
			Value: Copy(m.Value),
		})
	}
	return o
}

func (*Object) Kind() Kind { return ObjectKind }
func (*Object) isValue()   {}

func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o.members)) }

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.members) }

// Cap reports the number of members o can hold without reallocating.
func (o *Object) Cap() int { return cap(o.members) }

// At returns the member of o at index i. The pointer remains valid until
// the next operation that adds or removes members.
func (o *Object) At(i int) *Member { return &o.members[i] }

// Members is a range function over the index and member of each member of o.
func (o *Object) Members() iter.Seq2[int, *Member] {
	return func(yield func(int, *Member) bool) {
		for i := range o.members {
			if !yield(i, &o.members[i]) {
				return
			}
		}
	}
}

// Index returns the index of the first member of o with the given key, or -1.
func (o *Object) Index(key string) int {
	for i, m := range o.members {
		if string(m.Key) == key {
			return i
		}
	}
	return -1
}

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	if i := o.Index(key); i >= 0 {
		return &o.members[i]
	}
	return nil
}

// Set replaces the value of the first member of o with the given key,
// releasing its old value, or adds a new member if there is none. It returns
// the member that was updated or added.
func (o *Object) Set(key string, v Value) *Member {
	if m := o.Find(key); m != nil {
		Free(&m.Value)
		m.Value = orNull(v)
		return m
	}
	return o.Append(key, v)
}

// Append adds a member with the given key and value to the end of o,
// whether or not the key is already present.
func (o *Object) Append(key string, v Value) *Member {
	o.members = append(o.members, Member{Key: NewString(key), Value: orNull(v)})
	return &o.members[len(o.members)-1]
}

// Remove releases and removes the member at index i.
func (o *Object) Remove(i int) {
	Free(&o.members[i].Value)
	o.members = slices.Delete(o.members, i, i+1)
}

// Clear releases and removes all the members of o. The capacity of o is not
// changed.
func (o *Object) Clear() {
	for i := range o.members {
		Free(&o.members[i].Value)
	}
	clear(o.members)
	o.members = o.members[:0]
}

// Reserve ensures that o has capacity for at least n members.
func (o *Object) Reserve(n int) {
	if n > cap(o.members) {
		o.members = slices.Grow(o.members, n-len(o.members))
	}
}

// Shrink reduces the capacity of o to its length.
func (o *Object) Shrink() { o.members = slices.Clip(o.members) }
