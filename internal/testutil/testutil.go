// Package testutil defines support code for unit tests.
package testutil

import (
	"testing"

	"github.com/creachadair/jvalue/ast"
	"github.com/google/go-cmp/cmp"
)

// ValueComparer is a cmp option that compares ast.Value trees with ast.Equal.
var ValueComparer = cmp.Comparer(ast.Equal)

// MustParse parses text as a single JSON value, or fails the test.
func MustParse(t testing.TB, text string) ast.Value {
	t.Helper()
	v, err := ast.Parse(text)
	if err != nil {
		t.Fatalf("Parse %q: unexpected error: %v", text, err)
	}
	return v
}

// Sample is a moderately nested JSON document used by several tests.
const Sample = `{
  "name": "leptjson",
  "version": 1.5,
  "tags": ["c", "json", "tutorial"],
  "nested": {"ok": true, "none": null, "list": [1, [2, [3]], {"deep": "ä"}]},
  "empty": {"a": [], "o": {}}
}`
