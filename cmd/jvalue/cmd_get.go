// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jvalue/ast"
	"github.com/creachadair/jvalue/jpath"
	"github.com/spf13/cobra"
)

func newGetCmd(cfg *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "get <jsonpath> <file>",
		Short: "Print the values selected by a JSONPath expression",
		Long: `Evaluate a JSONPath expression such as "$.store.book[0].title" against the
named file ("-" for stdin) and print one line per selected value, giving its
kind and its scalar content or size.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := jpath.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}
			v, err := parseInput(cmd, cfg, args[1])
			if err != nil {
				return err
			}
			defer ast.Free(&v)

			found := expr.Select(v)
			log.Debugf("path %s selected %d values", expr, len(found))
			out := cmd.OutOrStdout()
			for _, f := range found {
				fmt.Fprintf(out, "%s\t%s\n", f.Kind(), describe(f))
			}
			return nil
		},
	}
}

// describe renders the scalar content of v, or the size of a container.
func describe(v ast.Value) string {
	switch t := v.(type) {
	case ast.String:
		return strconv.Quote(t.String())
	case *ast.Array:
		return fmt.Sprintf("len=%d", t.Len())
	case *ast.Object:
		return fmt.Sprintf("len=%d", t.Len())
	default:
		return fmt.Sprint(v)
	}
}
