// Package jpath implements a minimal JSONPath expression language for
// selecting values from an ast.Value tree.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." name
  step = ".." name
  step = "[" value "]"
  name = WORD
  name = "'" QTEXT "'"
  name = "*"
 value = name
 value = indexes
 value = [INDEX] ":" [INDEX]
indexes = INDEX ["," indexes]

  WORD = RE `\w+`
 QTEXT = RE `[^']*`
 INDEX = RE `-?\d+`

This is the subset of the JSONPath draft without script and filter steps:
  https://www.ietf.org/archive/id/draft-goessner-dispatch-jsonpath-00.html
*/

// An Expr is a parsed JSONPath expression.
type Expr []Step

// An Op is a path operator.
type Op byte

const (
	Invalid Op = iota // invalid operator
	Member            // member lookup (.name, ['name'], [*])
	Recur             // recursive descent (..name)
	Index             // array index lookup ([i,j,...])
	Slice             // array slice ([lo:hi])
)

var opText = [...]string{
	Invalid: "invalid",
	Member:  "member",
	Recur:   "recur",
	Index:   "index",
	Slice:   "slice",
}

func (o Op) String() string {
	if int(o) < len(opText) {
		return opText[o]
	}
	return opText[Invalid]
}

// A Step is a single step of a JSONPath expression.
type Step struct {
	Op Op

	// For Member and Recur steps, the name to match. If Name == "*" and
	// Quoted is false, the step matches every member or element.
	Name   string
	Quoted bool

	// For Index steps, the offsets to select. Negative offsets count
	// backward from the end of the array.
	Indexes []int

	// For Slice steps, the bounds of the slice. A nil bound is open.
	Lo, Hi *int
}

// IsWildcard reports whether s is a wildcard step.
func (s Step) IsWildcard() bool { return !s.Quoted && s.Name == "*" }

func (s Step) String() string {
	switch s.Op {
	case Member, Recur:
		dot := "."
		if s.Op == Recur {
			dot = ".."
		}
		if s.Quoted {
			if s.Op == Member {
				return "['" + s.Name + "']"
			}
			return dot + "'" + s.Name + "'"
		}
		return dot + s.Name
	case Index:
		parts := make([]string, len(s.Indexes))
		for i, v := range s.Indexes {
			parts[i] = strconv.Itoa(v)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case Slice:
		return "[" + boundString(s.Lo) + ":" + boundString(s.Hi) + "]"
	default:
		return "<invalid>"
	}
}

func boundString(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		buf.WriteString(s.String())
	}
	return buf.String()
}

// Parse parses s as a JSONPath expression.
func Parse(s string) (Expr, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	var steps Expr
	for t != "" {
		step, rest, err := parseStep(t)
		if err != nil {
			return nil, fmt.Errorf("at offset %d: %w", len(s)-len(t), err)
		}
		steps = append(steps, step)
		t = rest
	}
	return steps, nil
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, ".."); ok {
		name, quoted, u, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid ..name: %w", err)
		}
		return Step{Op: Recur, Name: name, Quoted: quoted}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "."); ok {
		name, quoted, u, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid .name: %w", err)
		}
		return Step{Op: Member, Name: name, Quoted: quoted}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		step, u, err := parseBracket(t)
		if err != nil {
			return Step{}, t, err
		}
		u, ok := strings.CutPrefix(u, "]")
		if !ok {
			return Step{}, u, errors.New("missing close bracket")
		}
		return step, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

func parseName(s string) (name string, quoted bool, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "*"); ok {
		return "*", false, t, nil
	}
	if m := wordRE.FindStringSubmatch(s); m != nil {
		return m[1], false, s[len(m[0]):], nil
	}
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return m[1], true, s[len(m[0]):], nil
	}
	return "", false, s, errors.New("invalid name")
}

func parseBracket(s string) (_ Step, rest string, _ error) {
	if strings.HasPrefix(s, "?(") || strings.HasPrefix(s, "(") {
		return Step{}, s, errors.New("script and filter steps are not supported")
	}

	// Slices: [lo:hi], with either bound optional.
	lo, t := parseInt(s)
	if u, ok := strings.CutPrefix(t, ":"); ok {
		hi, v := parseInt(u)
		return Step{Op: Slice, Lo: lo, Hi: hi}, v, nil
	}

	// Indexes: [i] or [i,j,...].
	if m := indexRE.FindString(s); m != "" && !wordRE.MatchString(s[len(m):]) {
		var idx []int
		for _, f := range strings.Split(m, ",") {
			v, err := strconv.Atoi(f)
			if err != nil {
				return Step{}, s, fmt.Errorf("invalid index %q", f)
			}
			idx = append(idx, v)
		}
		return Step{Op: Index, Indexes: idx}, s[len(m):], nil
	}

	// Names: ['x'], [x], [*].
	name, quoted, t, err := parseName(s)
	if err != nil {
		return Step{}, s, fmt.Errorf("invalid value: %q", s)
	}
	return Step{Op: Member, Name: name, Quoted: quoted}, t, nil
}

// parseInt parses an optional leading integer from s.
func parseInt(s string) (*int, string) {
	m := intRE.FindString(s)
	if m == "" {
		return nil, s
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return nil, s
	}
	return &v, s[len(m):]
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	intRE   = regexp.MustCompile(`^-?\d+`)
	indexRE = regexp.MustCompile(`^-?\d+(?:,-?\d+)*`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)
