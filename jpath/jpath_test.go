package jpath_test

import (
	"testing"

	"github.com/creachadair/jvalue/ast"
	"github.com/creachadair/jvalue/internal/testutil"
	"github.com/creachadair/jvalue/jpath"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"$", "$"},
		{"$.store.book[*]..author", "$.store.book.*..author"},
		{"$..author", ""},
		{"$.store.*", ""},
		{"$.store..price", ""},
		{"$..book[2]", ""},
		{"$..book[-1:]", ""},
		{"$..book[0,1]", ""},
		{"$..book[:2]", ""},
		{"$..book[:]", ""},
		{"$..*", ""},
		{"$['apple sauce'].pearPlum..'cherry apple'", ""},
		{"$[a][1:3][b]['c d e']", "$.a[1:3].b['c d e']"},
	}
	for _, test := range tests {
		e, err := jpath.Parse(test.input)
		if err != nil {
			t.Errorf("Parse %q: %v", test.input, err)
			continue
		}

		want := test.want
		if want == "" {
			want = test.input
		}
		if got := e.String(); got != want {
			t.Errorf("Parse %q:\n got %q\nwant %q", test.input, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"store",
		"$.",
		"$..",
		"$[",
		"$[1",
		"$['unterminated]",
		"$..book[(@.length-1)]",
		"$..book[?(@.isbn)]",
		"$ .x",
	}
	for _, input := range tests {
		if e, err := jpath.Parse(input); err == nil {
			t.Errorf("Parse %q: got %v, want error", input, e)
		} else {
			t.Logf("Parse %q: got expected error: %v", input, err)
		}
	}
}

const storeJSON = `{ "store": {
    "book": [
      { "category": "reference",
        "author": "Nigel Rees",
        "title": "Sayings of the Century",
        "price": 8.95
      },
      { "category": "fiction",
        "author": "Evelyn Waugh",
        "title": "Sword of Honour",
        "price": 12.99
      },
      { "category": "fiction",
        "author": "Herman Melville",
        "title": "Moby Dick",
        "isbn": "0-553-21311-3",
        "price": 8.99
      },
      { "category": "fiction",
        "author": "J. R. R. Tolkien",
        "title": "The Lord of the Rings",
        "isbn": "0-395-19395-8",
        "price": 22.99
      }
    ],
    "bicycle": {
      "color": "red",
      "price": 19.95
    }
  }
}`

func TestSelect(t *testing.T) {
	root := testutil.MustParse(t, storeJSON)
	authors := []any{"Nigel Rees", "Evelyn Waugh", "Herman Melville", "J. R. R. Tolkien"}

	tests := []struct {
		expr string
		want []any
	}{
		{"$.store.book[*].author", authors},
		{"$..author", authors},
		{"$.store..price", []any{8.95, 12.99, 8.99, 22.99, 19.95}},
		{"$..book[2].title", []any{"Moby Dick"}},
		{"$..book[-1].title", []any{"The Lord of the Rings"}},
		{"$..book[-1:].title", []any{"The Lord of the Rings"}},
		{"$..book[0,1].price", []any{8.95, 12.99}},
		{"$..book[:2].price", []any{8.95, 12.99}},
		{"$..book[1:-1].price", []any{12.99, 8.99}},
		{"$..book[10]", nil},
		{"$..book[5:]", nil},
		{"$..isbn", []any{"0-553-21311-3", "0-395-19395-8"}},
		{"$.store.bicycle.*", []any{"red", 19.95}},
		{"$.store['bicycle'].color", []any{"red"}},
		{"$.store.bicycle[0]", nil},
		{"$.nonesuch", nil},
		{"$.store.book.author", nil},
	}
	for _, tc := range tests {
		e, err := jpath.Parse(tc.expr)
		if err != nil {
			t.Fatalf("Parse %q: %v", tc.expr, err)
		}
		var want []ast.Value
		for _, w := range tc.want {
			want = append(want, ast.ToValue(w))
		}
		got := e.Select(root)
		if diff := cmp.Diff(got, want, testutil.ValueComparer); diff != "" {
			t.Errorf("Select %q (-got, +want):\n%s", tc.expr, diff)
		}
	}
}

func TestSelectRecurWildcard(t *testing.T) {
	root := testutil.MustParse(t, `{"a": [1, {"b": 2}], "c": null}`)
	e, err := jpath.Parse("$..*")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := e.Select(root)

	// Every value in the tree except the root. Each object lists its members
	// before descending into them.
	want := []ast.Value{
		root.(*ast.Object).At(0).Value,
		ast.Null{},
		ast.Number(1),
		root.(*ast.Object).At(0).Value.(*ast.Array).At(1),
		ast.Number(2),
	}
	if diff := cmp.Diff(got, want, testutil.ValueComparer); diff != "" {
		t.Errorf("Select (-got, +want):\n%s", diff)
	}
}
