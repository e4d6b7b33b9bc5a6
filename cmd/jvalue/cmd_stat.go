// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/creachadair/jvalue/ast"
	"github.com/spf13/cobra"
)

func newStatCmd(cfg *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "stat <file>",
		Short: "Print counts of each kind of value and the maximum nesting depth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInput(cmd, cfg, args[0])
			if err != nil {
				return err
			}
			defer ast.Free(&v)

			st := statValue(v)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 4, 8, 1, ' ', 0)
			for k, n := range st.Count {
				fmt.Fprintf(tw, "%s\t%d\n", ast.Kind(k), n)
			}
			fmt.Fprintf(tw, "depth\t%d\n", st.MaxDepth)
			fmt.Fprintf(tw, "bytes\t%d\n", st.StringBytes)
			return tw.Flush()
		},
	}
}

// valueStats summarizes the structure of a value tree.
type valueStats struct {
	Count       [ast.ObjectKind + 1]int // values of each kind
	MaxDepth    int                     // deepest container nesting
	StringBytes int                     // total bytes in strings and keys
}

func statValue(v ast.Value) valueStats {
	var st valueStats
	st.visit(v, 0)
	return st
}

func (st *valueStats) visit(v ast.Value, depth int) {
	st.Count[ast.KindOf(v)]++
	switch t := v.(type) {
	case ast.String:
		st.StringBytes += t.Len()
	case *ast.Array:
		st.MaxDepth = max(st.MaxDepth, depth+1)
		for _, e := range t.Values() {
			st.visit(e, depth+1)
		}
	case *ast.Object:
		st.MaxDepth = max(st.MaxDepth, depth+1)
		for _, m := range t.Members() {
			st.StringBytes += m.Key.Len()
			st.visit(m.Value, depth+1)
		}
	}
}
