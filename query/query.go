// Package query implements structural queries over JSON values.
//
// A query describes a substructure of a JSON value tree, such as an object
// member, array element, or a path through the tree. Evaluating a query
// against a concrete JSON value traverses the structure described by the
// query and returns the resulting value.
//
// The simplest query is for a "path", a sequence of object keys and/or array
// indices that describes a path from the root of a JSON value. For example,
// given the JSON value:
//
//	[{"a": 1, "b": 2}, {"c": {"d": true}, "e": false}]
//
// the query
//
//	query.Path(1, "c", "d")
//
// yields the value true.
//
// A query that selects a value inside its input returns that value itself,
// which shares storage with the input. A query that constructs a new array or
// object fills it with copies, so that the result owns its contents and may
// be released with ast.Free independently of the input.
package query

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/creachadair/jvalue/ast"
)

// Eval evaluates the given query beginning from root, returning the resulting
// value or an error.
func Eval(root ast.Value, q Query) (ast.Value, error) {
	if root == nil {
		root = ast.Null{}
	}
	return q.eval(root)
}

// A Query describes a traversal of a JSON value.
type Query interface {
	eval(ast.Value) (ast.Value, error)
}

// Path traverses a sequence of nested object keys or array indices from the
// root.  If no keys are specified, the root is returned. Each key must be a
// string, an int, or a Query.
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return objKey(t)
	case int:
		return nthQuery(t)
	case Query:
		return t
	default:
		panic(fmt.Sprintf("invalid path element %T", key))
	}
}

func asArray(v ast.Value) (*ast.Array, error) {
	if a, ok := v.(*ast.Array); ok {
		return a, nil
	}
	return nil, fmt.Errorf("got %v, want array", v.Kind())
}

// fixIndex resolves offset i, which may be negative, against length n.
func fixIndex(i, n int) (int, error) {
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, fmt.Errorf("index %d out of range (0..%d)", i, n)
	}
	return j, nil
}

type objKey string

func (o objKey) eval(v ast.Value) (ast.Value, error) {
	obj, ok := v.(*ast.Object)
	if !ok {
		return nil, fmt.Errorf("got %v, want object", v.Kind())
	}
	mem := obj.Find(string(o))
	if mem == nil {
		return nil, fmt.Errorf("key %q not found", o)
	}
	return mem.Value, nil
}

type nthQuery int

func (nq nthQuery) eval(v ast.Value) (ast.Value, error) {
	arr, err := asArray(v)
	if err != nil {
		return nil, err
	}
	idx, err := fixIndex(int(nq), arr.Len())
	if err != nil {
		return nil, err
	}
	return arr.At(idx), nil
}

// Selection constructs an array of the elements of its input array, for which
// the specified function returns true.
type Selection func(ast.Value) bool

func (q Selection) eval(v ast.Value) (ast.Value, error) {
	a, err := asArray(v)
	if err != nil {
		return nil, err
	}
	out := ast.NewArray()
	for _, elt := range a.Values() {
		if q(elt) {
			out.Append(ast.Copy(elt))
		}
	}
	return out, nil
}

// Mapping constructs an array in which each value is replaced by the result of
// calling the specified function on the corresponding input value.
type Mapping func(ast.Value) ast.Value

func (q Mapping) eval(v ast.Value) (ast.Value, error) {
	a, err := asArray(v)
	if err != nil {
		return nil, err
	}
	out := ast.NewArray()
	out.Reserve(a.Len())
	for _, elt := range a.Values() {
		out.Append(ast.Copy(q(elt)))
	}
	return out, nil
}

// Slice selects a slice of an array from offsets lo to hi.  The range includes
// lo but excludes hi. Negative offsets select from the end of the array.
// If hi == 0, the length of the array is used.
func Slice(lo, hi int) Query { return sliceQuery{lo, hi} }

type sliceQuery struct{ lo, hi int }

func (q sliceQuery) eval(v ast.Value) (ast.Value, error) {
	arr, err := asArray(v)
	if err != nil {
		return nil, err
	}
	n := arr.Len()
	lox, hix := q.lo, q.hi
	if lox < 0 {
		lox += n
	}
	if hix <= 0 {
		hix += n
	}
	if lox < 0 || lox >= n {
		return nil, fmt.Errorf("index %d out of range (0..%d)", q.lo, n)
	} else if hix < 0 || hix > n {
		return nil, fmt.Errorf("index %d out of range (0..%d)", q.hi, n)
	} else if lox > hix {
		return nil, fmt.Errorf("index start %d > end %d", q.lo, q.hi)
	}
	out := ast.NewArray()
	for i := lox; i < hix; i++ {
		out.Append(ast.Copy(arr.At(i)))
	}
	return out, nil
}

// Pick constructs an array by picking the designated offsets from an array.
// Negative offsets select from the end of the input array.
func Pick(offsets ...int) Query { return pickQuery(offsets) }

type pickQuery []int

func (q pickQuery) eval(v ast.Value) (ast.Value, error) {
	arr, err := asArray(v)
	if err != nil {
		return nil, err
	}
	out := ast.NewArray()
	for _, off := range q {
		i, err := fixIndex(off, arr.Len())
		if err != nil {
			return nil, err
		}
		out.Append(ast.Copy(arr.At(i)))
	}
	return out, nil
}

// Len returns a number representing the length of the root.
//
// For an object, the length is the number of members.
// For an array, the length is the number of elements.
// For a string, the length is the length of the string in bytes.
// For null, the length is zero.
func Len() Query { return lenQuery{} }

type lenQuery struct{}

func (lenQuery) eval(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case ast.Null:
		return ast.Number(0), nil
	case interface{ Len() int }:
		return ast.Number(t.Len()), nil
	}
	return nil, fmt.Errorf("cannot take length of %v", v.Kind())
}

// Seq is a sequential composition of queries. An empty sequence selects the
// root; otherwise, each query is applied to the result selected by the
// previous query in the sequence.
type Seq []Query

func (q Seq) eval(v ast.Value) (ast.Value, error) {
	cur := v
	for _, sq := range q {
		next, err := sq.eval(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Alt is a query that selects among a sequence of alternatives.  The result of
// the first alternative that does not report an error is returned. If there
// are no alternatives, the query fails on all inputs.
type Alt []Query

func (q Alt) eval(v ast.Value) (ast.Value, error) {
	for _, alt := range q {
		if w, err := alt.eval(v); err == nil {
			return w, nil
		}
	}
	return nil, errors.New("no matching alternatives")
}

// Recur applies a query to each recursive descendant of its input and returns
// an array of the resulting values. The arguments have the same constraints as
// Path.
func Recur(keys ...any) Query { return recQuery{Path(keys...)} }

type recQuery struct{ Query }

func (q recQuery) eval(v ast.Value) (ast.Value, error) {
	out := ast.NewArray()

	stk := []ast.Value{v}
	for len(stk) != 0 {
		next := stk[len(stk)-1]
		stk = stk[:len(stk)-1]

		if r, err := q.Query.eval(next); err == nil {
			out.Append(ast.Copy(r))
		}

		// N.B. Push in reverse order, so we visit in lexical order.
		switch t := next.(type) {
		case *ast.Object:
			for i := t.Len() - 1; i >= 0; i-- {
				stk = append(stk, t.At(i).Value)
			}
		case *ast.Array:
			for i := t.Len() - 1; i >= 0; i-- {
				stk = append(stk, t.At(i))
			}
		}
	}

	if out.Len() == 0 {
		return nil, errors.New("no matches")
	}
	return out, nil
}

// Each applies a query to each element of an array and returns an array of the
// resulting values. It fails if the input is not an array.  The arguments have
// the same constraints as Path.
func Each(keys ...any) Query { return eachQuery{Path(keys...)} }

type eachQuery struct{ Query }

func (q eachQuery) eval(v ast.Value) (ast.Value, error) {
	arr, err := asArray(v)
	if err != nil {
		return nil, err
	}
	out := ast.NewArray()
	for i, elt := range arr.Values() {
		v, err := q.Query.eval(elt)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out.Append(ast.Copy(v))
	}
	return out, nil
}

// Object constructs an object with the given keys mapped to the results of
// matching the query values against its input. Members are added in order of
// their keys.
type Object map[string]Query

func (o Object) eval(v ast.Value) (ast.Value, error) {
	out := ast.NewObject()
	for _, key := range slices.Sorted(maps.Keys(o)) {
		val, err := o[key].eval(v)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", key, err)
		}
		out.Append(key, ast.Copy(val))
	}
	return out, nil
}

// Array constructs an array with the values produced by matching the given
// queries against its input.
type Array []Query

func (a Array) eval(v ast.Value) (ast.Value, error) {
	out := ast.NewArray()
	for i, q := range a {
		val, err := q.eval(v)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out.Append(ast.Copy(val))
	}
	return out, nil
}

// A String query ignores its input and returns the given string.
func String(s string) Query { return Value(ast.NewString(s)) }

// A Number query ignores its input and returns the given number.
func Number(n float64) Query { return Value(ast.Number(n)) }

// A Bool query ignores its input and returns the given bool.
func Bool(b bool) Query { return Value(ast.Bool(b)) }

// A Null query ignores its input and returns a null value.
func Null() Query { return Value(ast.Null{}) }

// A Value query ignores its input and returns a copy of the given value.
// The argument must be acceptable to ast.ToValue.
func Value(v any) Query { return constQuery{ast.ToValue(v)} }

type constQuery struct{ ast.Value }

func (c constQuery) eval(_ ast.Value) (ast.Value, error) { return ast.Copy(c.Value), nil }

// A Glob query returns an array of all the elements of an array, or all the
// member values of an object.
func Glob() Query { return globQuery{} }

type globQuery struct{}

func (globQuery) eval(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case *ast.Object:
		out := ast.NewArray()
		for _, m := range t.Members() {
			out.Append(ast.Copy(m.Value))
		}
		return out, nil
	case *ast.Array:
		return ast.Copy(t), nil
	default:
		return nil, errors.New("no matching values")
	}
}
