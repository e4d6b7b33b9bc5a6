// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// Path traverses a sequential path into the structure of v, and returns the
// value reached. Path elements are interpreted as follows:
//
//   - A string must address an object, and selects the value of the first
//     member whose key is exactly that string.
//   - An int must address an array or object, and selects the element or
//     member value at that offset. Negative offsets count backward from the
//     end (-1 is last).
//   - A func(Value) (Value, error) is called with the current value, and its
//     result becomes the next value in the sequence.
//
// If the path cannot be completely consumed, Path returns the last value
// reached along with an error describing the failed step.
func Path(v Value, path ...any) (Value, error) {
	cur := orNull(v)
	for _, elt := range path {
		next, err := step(cur, elt)
		if err != nil {
			return cur, err
		}
		cur = next
	}
	return cur, nil
}

func step(cur Value, elt any) (Value, error) {
	switch t := elt.(type) {
	case string:
		o, ok := cur.(*Object)
		if !ok {
			return nil, fmt.Errorf("cannot traverse %v with %q", cur.Kind(), t)
		}
		m := o.Find(t)
		if m == nil {
			return nil, fmt.Errorf("key %q not found", t)
		}
		return m.Value, nil

	case int:
		switch e := cur.(type) {
		case *Array:
			i, ok := fixBound(e.Len(), t)
			if !ok {
				return nil, fmt.Errorf("array index %d out of bounds (n=%d)", t, e.Len())
			}
			return e.At(i), nil
		case *Object:
			i, ok := fixBound(e.Len(), t)
			if !ok {
				return nil, fmt.Errorf("object index %d out of bounds (n=%d)", t, e.Len())
			}
			return e.At(i).Value, nil
		default:
			return nil, fmt.Errorf("cannot traverse %v with %d", cur.Kind(), t)
		}

	case func(Value) (Value, error):
		next, err := t(cur)
		if err != nil {
			return nil, err
		}
		return orNull(next), nil

	default:
		return nil, fmt.Errorf("invalid path element %T", elt)
	}
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
