// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"github.com/creachadair/jvalue"
	"go4.org/mem"
)

// Parse parses text as a single JSON value. In case of error, it returns
// Null along with an error that has concrete type *jvalue.SyntaxError.
func Parse(text string) (Value, error) { return Parser{}.Parse(text) }

// ParseBytes parses text as a single JSON value, as Parse.
func ParseBytes(text []byte) (Value, error) { return Parser{}.ParseBytes(text) }

// Valid reports whether text is a single well-formed JSON value.
func Valid(text string) bool {
	v, err := Parse(text)
	Free(&v)
	return err == nil
}

// DefaultMaxDepth is the nesting limit applied by a Parser whose MaxDepth
// is zero.
const DefaultMaxDepth = 10000

// A Parser parses JSON text into value trees. The zero value is ready for
// use with default settings. A Parser has no mutable state, so a single
// Parser may be shared by concurrent goroutines.
type Parser struct {
	// The maximum nesting depth of arrays and objects. Input that nests more
	// deeply is rejected with jvalue.NestingTooDeep. If zero, DefaultMaxDepth
	// is used. If negative, nesting is unlimited, and deeply nested input may
	// exhaust the stack.
	MaxDepth int
}

func (p Parser) maxDepth() int {
	if p.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return p.MaxDepth
}

// Parse parses text as a single JSON value.
func (p Parser) Parse(text string) (Value, error) { return p.parse(mem.S(text)) }

// ParseBytes parses text as a single JSON value. The result does not retain
// any reference to text.
func (p Parser) ParseBytes(text []byte) (Value, error) { return p.parse(mem.B(text)) }

func (p Parser) parse(src mem.RO) (v Value, err error) {
	st := &parseState{in: jvalue.NewInput(src), maxDepth: p.maxDepth()}
	defer st.buf.Release()

	var root Value = Null{}
	defer func() {
		if x := recover(); x != nil {
			e, ok := x.(*jvalue.SyntaxError)
			if !ok {
				panic(x)
			}
			st.release()
			Free(&root)
			v, err = Null{}, e
		}
	}()

	st.in.SkipSpace()
	root = st.parseValue()
	st.in.SkipSpace()
	if !st.in.AtEnd() {
		panic(st.in.Fail(jvalue.RootNotSingular))
	}
	return root, nil
}

// parseState is the state of a single parse. Errors are reported by
// panicking with a *jvalue.SyntaxError, which Parser.parse recovers.
type parseState struct {
	in       *jvalue.Input
	buf      jvalue.Buffer
	open     []Value // containers under construction, outermost first
	maxDepth int     // if negative, unlimited
}

// release frees any containers left under construction by a failed parse.
func (st *parseState) release() {
	for i := range st.open {
		Free(&st.open[i])
	}
	st.open = nil
}

func (st *parseState) check(err error) {
	if err != nil {
		panic(err.(*jvalue.SyntaxError))
	}
}

func (st *parseState) fail(code jvalue.Code) { panic(st.in.Fail(code)) }

func (st *parseState) parseValue() Value {
	c, ok := st.in.Peek()
	if !ok {
		st.fail(jvalue.ExpectValue)
	}
	switch c {
	case 'n':
		st.check(st.in.ScanLiteral("null"))
		return Null{}
	case 't':
		st.check(st.in.ScanLiteral("true"))
		return Bool(true)
	case 'f':
		st.check(st.in.ScanLiteral("false"))
		return Bool(false)
	case '"':
		s, err := st.in.ScanString(&st.buf)
		st.check(err)
		return String(s)
	case '[':
		return st.parseArray()
	case '{':
		return st.parseObject()
	default:
		n, err := st.in.ScanNumber()
		st.check(err)
		return Number(n)
	}
}

// enter records the start of a new container v.
func (st *parseState) enter(v Value) {
	if st.maxDepth > 0 && len(st.open) >= st.maxDepth {
		st.fail(jvalue.NestingTooDeep)
	}
	st.open = append(st.open, v)
}

// leave records the completion of the innermost container.
func (st *parseState) leave() {
	n := len(st.open) - 1
	st.open[n] = nil
	st.open = st.open[:n]
}

// expect consumes c if it is the next byte of input.
func (st *parseState) expect(c byte) bool {
	if b, ok := st.in.Peek(); ok && b == c {
		st.in.Advance(1)
		return true
	}
	return false
}

func (st *parseState) parseArray() Value {
	a := new(Array)
	st.enter(a)
	st.in.Advance(1) // [
	st.in.SkipSpace()

	if st.expect(']') {
		st.leave()
		return a
	}
	for {
		if c, ok := st.in.Peek(); !ok || c == ']' {
			st.fail(jvalue.MissCommaOrSquareBracket)
		}
		a.elts = append(a.elts, st.parseValue())
		st.in.SkipSpace()
		if st.expect(',') {
			st.in.SkipSpace()
		} else if st.expect(']') {
			break
		} else {
			st.fail(jvalue.MissCommaOrSquareBracket)
		}
	}
	st.leave()
	return a
}

func (st *parseState) parseObject() Value {
	o := new(Object)
	st.enter(o)
	st.in.Advance(1) // {
	st.in.SkipSpace()

	if st.expect('}') {
		st.leave()
		return o
	}
	for {
		if c, ok := st.in.Peek(); !ok || c != '"' {
			st.fail(jvalue.MissKey)
		}
		key, err := st.in.ScanString(&st.buf)
		st.check(err)

		st.in.SkipSpace()
		if !st.expect(':') {
			st.fail(jvalue.MissColon)
		}
		st.in.SkipSpace()
		o.members = append(o.members, Member{Key: String(key), Value: st.parseValue()})

		st.in.SkipSpace()
		if st.expect(',') {
			st.in.SkipSpace()
		} else if st.expect('}') {
			break
		} else {
			st.fail(jvalue.MissCommaOrCurlyBracket)
		}
	}
	st.leave()
	return o
}
