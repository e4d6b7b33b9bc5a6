// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"math"
	"testing"

	"github.com/creachadair/jvalue/ast"
	"github.com/creachadair/jvalue/internal/testutil"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestPath(t *testing.T) {
	v := testutil.MustParse(t, testJSON)
	root := v.(*ast.Object)
	list := root.Find("list").Value.(*ast.Array)

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},

		{"ArrayPos", []any{"list", 1}, list.At(1), false},
		{"ArrayNeg", []any{"list", -1}, list.At(1), false},
		{"ArrayRange", []any{"o", 25}, root.Find("o").Value, true},
		{"ObjPath", []any{"xyz", "d"}, ast.Bool(true), false},

		{"FuncArray", []any{"o", testPathFunc}, ast.ToValue(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, ast.ToValue(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, ast.Bool(true), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ast.Path(v, tc.path...)
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Path: unexpected error: %v", err)
				}
			} else if tc.fail {
				t.Fatal("Path: got nil error, want failure")
			}
			if diff := cmp.Diff(got, tc.want, testutil.ValueComparer); diff != "" {
				t.Errorf("Wrong result (-got, +want):\n%s", diff)
			}
		})
	}
}

func testPathFunc(v ast.Value) (ast.Value, error) {
	if ln, ok := v.(interface{ Len() int }); ok && v.Kind() != ast.StringKind {
		return ast.ToValue(ln.Len()), nil
	}
	return nil, errors.New("not a thing with length")
}

func TestKind(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  ast.Kind
		str   string
	}{
		{nil, ast.NullKind, "null"},
		{ast.Null{}, ast.NullKind, "null"},
		{ast.Bool(false), ast.FalseKind, "false"},
		{ast.Bool(true), ast.TrueKind, "true"},
		{ast.Number(3), ast.NumberKind, "number"},
		{ast.NewString("x"), ast.StringKind, "string"},
		{ast.NewArray(), ast.ArrayKind, "array"},
		{ast.NewObject(), ast.ObjectKind, "object"},
	}
	for _, tc := range tests {
		got := ast.KindOf(tc.input)
		if got != tc.want {
			t.Errorf("KindOf(%v): got %v, want %v", tc.input, got, tc.want)
		}
		if got.String() != tc.str {
			t.Errorf("Kind %d: got %q, want %q", got, got.String(), tc.str)
		}
	}
	if got := ast.Kind(99).String(); got != "Kind(99)" {
		t.Errorf("Invalid kind: got %q", got)
	}
}

func TestSetters(t *testing.T) {
	var v ast.Value = ast.NewString("initial")

	ast.SetNull(&v)
	if _, ok := v.(ast.Null); !ok {
		t.Errorf("SetNull: got %T", v)
	}
	ast.SetBool(&v, true)
	if v != ast.Bool(true) {
		t.Errorf("SetBool: got %v", v)
	}
	ast.SetNumber(&v, 1234.5)
	if v != ast.Number(1234.5) {
		t.Errorf("SetNumber: got %v", v)
	}

	src := []byte("a\x00b")
	ast.SetString(&v, src)
	src[0] = 'X'
	if s := v.(ast.String); s.String() != "a\x00b" || s.Len() != 3 {
		t.Errorf("SetString: got %q, want %q", s, "a\x00b")
	}

	elt := ast.NewArray(ast.Number(1))
	ast.SetArray(&v, ast.Null{}, elt, ast.NewString("s"))
	elt.Append(ast.Number(2))
	a := v.(*ast.Array)
	if a.Len() != 3 || a.At(1).(*ast.Array).Len() != 1 {
		t.Errorf("SetArray: elements were not copied deeply")
	}

	// The new contents may be built from the old.
	ast.SetArray(&v, a.At(1), a.At(2))
	if a := v.(*ast.Array); a.Len() != 2 || a.At(0).(*ast.Array).Len() != 1 {
		t.Errorf("SetArray from self: got %v", v)
	}

	ast.SetObject(&v, ast.Field("a", 1), ast.Field("b", "two"), ast.Field("a", nil))
	o := v.(*ast.Object)
	if o.Len() != 3 || o.Find("a").Value != ast.Number(1) || o.At(2).Value.Kind() != ast.NullKind {
		t.Errorf("SetObject: got %v", v)
	}
}

func TestToValue(t *testing.T) {
	if got := ast.ToValue(int64(5)); got != ast.Number(5) {
		t.Errorf("ToValue(int64): got %v", got)
	}
	if got := ast.ToValue([]byte("b")); !ast.Equal(got, ast.NewString("b")) {
		t.Errorf("ToValue([]byte): got %v", got)
	}
	mtest.MustPanic(t, func() { ast.ToValue(struct{}{}) })
}

func TestArray(t *testing.T) {
	a := ast.NewArray()
	a.Reserve(10)
	if a.Len() != 0 || a.Cap() < 10 {
		t.Errorf("Reserve: len=%d cap=%d, want 0, >= 10", a.Len(), a.Cap())
	}
	for i := range 10 {
		a.Append(ast.Number(i))
	}
	a.Append(nil)
	if got := a.PopBack(); got.Kind() != ast.NullKind {
		t.Errorf("PopBack: got %v, want null", got)
	}
	if got := a.PopBack(); got != ast.Number(9) {
		t.Errorf("PopBack: got %v, want 9", got)
	}

	a.Insert(0, ast.NewString("first"))
	a.Insert(a.Len(), ast.NewString("last"))
	a.Erase(1, 3) // remove 0, 1, 2
	a.Set(1, ast.Bool(false))

	want := ast.NewArray(
		ast.NewString("first"), ast.Number(3), ast.Number(4), ast.Number(5),
		ast.Number(6), ast.Number(7), ast.Number(8), ast.NewString("last"),
	)
	want.Set(1, ast.Bool(false))
	if diff := cmp.Diff(a, want, testutil.ValueComparer); diff != "" {
		t.Errorf("Array (-got, +want):\n%s", diff)
	}

	a.Shrink()
	if a.Cap() != a.Len() {
		t.Errorf("Shrink: len=%d cap=%d", a.Len(), a.Cap())
	}
	n := a.Cap()
	a.Clear()
	if a.Len() != 0 || a.Cap() != n {
		t.Errorf("Clear: len=%d cap=%d, want 0, %d", a.Len(), a.Cap(), n)
	}

	mtest.MustPanic(t, func() { a.PopBack() })
	mtest.MustPanic(t, func() { a.At(0) })
	mtest.MustPanic(t, func() { a.Set(-1, ast.Null{}) })
	mtest.MustPanic(t, func() { a.Erase(0, 1) })
}

func TestObject(t *testing.T) {
	o := ast.NewObject()
	o.Append("a", ast.Number(1))
	o.Append("b", ast.Number(2))
	o.Append("a", ast.Number(3))

	if got := o.Index("a"); got != 0 {
		t.Errorf("Index(a): got %d, want 0", got)
	}
	if got := o.Index("nonesuch"); got != -1 {
		t.Errorf("Index(nonesuch): got %d, want -1", got)
	}
	if o.Find("nonesuch") != nil {
		t.Error("Find(nonesuch): got non-nil")
	}

	o.Set("b", ast.NewString("two"))
	m := o.Set("c", ast.Bool(true))
	if m.Key.String() != "c" || o.Len() != 4 {
		t.Errorf("Set(c): got %v, len %d", m, o.Len())
	}

	o.Remove(0)
	want := ast.NewObject(
		ast.Field("b", "two"),
		ast.Field("a", 3),
		ast.Field("c", true),
	)
	if diff := cmp.Diff(o, want, testutil.ValueComparer); diff != "" {
		t.Errorf("Object (-got, +want):\n%s", diff)
	}

	o.Reserve(20)
	if o.Cap() < 20 {
		t.Errorf("Reserve: cap=%d, want >= 20", o.Cap())
	}
	o.Shrink()
	if o.Cap() != o.Len() {
		t.Errorf("Shrink: len=%d cap=%d", o.Len(), o.Cap())
	}
	o.Clear()
	if o.Len() != 0 {
		t.Errorf("Clear: len=%d, want 0", o.Len())
	}
	mtest.MustPanic(t, func() { o.At(0) })
	mtest.MustPanic(t, func() { o.Remove(0) })
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"null", "null", true},
		{"null", "false", false},
		{"true", "true", true},
		{"true", "false", false},
		{"123", "123.0", true},
		{"123", "456", false},
		{`"abc"`, `"abc"`, true},
		{`"abc"`, `"abcd"`, false},
		{`"a\u0000b"`, `"a\u0000c"`, false},
		{"[]", "[]", true},
		{"[]", "null", false},
		{"[1,2,3]", "[1,2,3]", true},
		{"[1,2,3]", "[1,2,4]", false},
		{"[1,2,3]", "[1,2]", false},
		{"[[]]", "[[]]", true},
		{"{}", "{}", true},
		{"{}", "null", false},
		{`{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{`{"a":1,"b":2}`, `{"a":1,"b":3}`, false},
		{`{"a":1,"b":2}`, `{"a":1}`, false},
		{`{"a":1,"a":2}`, `{"a":2,"a":1}`, true},
		{`{"a":1,"a":1}`, `{"a":1,"a":2}`, false},
		{`{"a":{"x":[1,{}]}}`, `{"a":{"x":[1,{}]}}`, true},
	}
	for _, tc := range tests {
		a := testutil.MustParse(t, tc.a)
		b := testutil.MustParse(t, tc.b)
		if got := ast.Equal(a, b); got != tc.want {
			t.Errorf("Equal(%s, %s): got %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if got := ast.Equal(b, a); got != tc.want {
			t.Errorf("Equal(%s, %s): got %v, want %v", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestCopyMoveSwap(t *testing.T) {
	orig := testutil.MustParse(t, testutil.Sample)
	cp := ast.Copy(orig)
	if !ast.Equal(orig, cp) {
		t.Fatal("Copy is not equal to its original")
	}

	// Mutating the copy does not affect the original.
	cp.(*ast.Object).Find("tags").Value.(*ast.Array).Append(ast.Null{})
	cp.(*ast.Object).Find("name").Value.(ast.String)[0] = 'L'
	if ast.Equal(orig, cp) {
		t.Error("Copy shares storage with its original")
	}
	if got := orig.(*ast.Object).Find("name").Value.(ast.String).String(); got != "leptjson" {
		t.Errorf("Original name: got %q, want leptjson", got)
	}

	var dst ast.Value = ast.Number(1)
	src := cp
	ast.Move(&dst, &src)
	if _, ok := src.(ast.Null); !ok {
		t.Errorf("Move: source is %T, want Null", src)
	}
	if dst != cp {
		t.Error("Move: destination does not hold the moved value")
	}
	ast.Move(&dst, &dst)
	if dst != cp {
		t.Error("Move onto self changed the value")
	}

	x, y := ast.Value(ast.NewString("x")), ast.Value(ast.Number(2))
	ast.Swap(&x, &y)
	if x != ast.Number(2) || y.(ast.String).String() != "x" {
		t.Errorf("Swap: got %v, %v", x, y)
	}
}

func TestFree(t *testing.T) {
	v := testutil.MustParse(t, testutil.Sample)
	obj := v.(*ast.Object)
	ast.Free(&v)
	if _, ok := v.(ast.Null); !ok {
		t.Errorf("Free: got %T, want Null", v)
	}
	if obj.Len() != 0 {
		t.Errorf("Free: object still has %d members", obj.Len())
	}

	// Free is idempotent.
	ast.Free(&v)
	if _, ok := v.(ast.Null); !ok {
		t.Errorf("Free again: got %T, want Null", v)
	}
	ast.Free(nil)
}

func TestEqualNaN(t *testing.T) {
	var v ast.Value
	ast.SetNumber(&v, math.NaN())
	if !ast.Equal(v, ast.Copy(v)) {
		t.Error("NaN is not equal to its copy")
	}
	arr := ast.NewArray(ast.Number(math.NaN()), ast.Number(1))
	if diff := cmp.Diff(arr, ast.Copy(arr), testutil.ValueComparer); diff != "" {
		t.Errorf("Copy of array with NaN (-got, +want):\n%s", diff)
	}
	if ast.Equal(ast.Number(math.NaN()), ast.Number(0)) {
		t.Error("NaN equals 0")
	}
	if !ast.Equal(ast.Number(0), ast.Number(math.Copysign(0, -1))) {
		t.Error("0 does not equal -0")
	}
}
