package jpath

import "github.com/creachadair/jvalue/ast"

// Select evaluates e against root and returns the values it selects, in
// document order. The results share storage with root.
func (e Expr) Select(root ast.Value) []ast.Value {
	if root == nil {
		root = ast.Null{}
	}
	cur := []ast.Value{root}
	for _, s := range e {
		var next []ast.Value
		for _, v := range cur {
			next = s.apply(v, next)
		}
		cur = next
		if len(cur) == 0 {
			break
		}
	}
	return cur
}

// apply appends to out the values selected by s from v.
func (s Step) apply(v ast.Value, out []ast.Value) []ast.Value {
	switch s.Op {
	case Member:
		return s.members(v, out)

	case Recur:
		out = s.members(v, out)
		switch t := v.(type) {
		case *ast.Array:
			for _, e := range t.Values() {
				out = s.apply(e, out)
			}
		case *ast.Object:
			for _, m := range t.Members() {
				out = s.apply(m.Value, out)
			}
		}
		return out

	case Index:
		a, ok := v.(*ast.Array)
		if !ok {
			return out
		}
		for _, i := range s.Indexes {
			if i < 0 {
				i += a.Len()
			}
			if i >= 0 && i < a.Len() {
				out = append(out, a.At(i))
			}
		}
		return out

	case Slice:
		a, ok := v.(*ast.Array)
		if !ok {
			return out
		}
		lo, hi := clampBound(s.Lo, 0, a.Len()), clampBound(s.Hi, a.Len(), a.Len())
		for i := lo; i < hi; i++ {
			out = append(out, a.At(i))
		}
		return out
	}
	return out
}

// members appends the member values of v matching s to out. A wildcard
// matches every member of an object and every element of an array.
func (s Step) members(v ast.Value, out []ast.Value) []ast.Value {
	switch t := v.(type) {
	case *ast.Object:
		for _, m := range t.Members() {
			if s.IsWildcard() || m.Key.String() == s.Name {
				out = append(out, m.Value)
			}
		}
	case *ast.Array:
		if s.IsWildcard() {
			for _, e := range t.Values() {
				out = append(out, e)
			}
		}
	}
	return out
}

// clampBound resolves a slice bound p against an array of length n.
func clampBound(p *int, def, n int) int {
	if p == nil {
		return def
	}
	i := *p
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}
