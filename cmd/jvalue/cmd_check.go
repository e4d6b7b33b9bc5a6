// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/creachadair/jvalue"
	"github.com/creachadair/jvalue/ast"
	"github.com/spf13/cobra"
)

func newCheckCmd(cfg *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Report whether each input is a single well-formed JSON value",
		Long: `Parse each named file ("-" for stdin) and print "file: ok", or the
location and kind of the first syntax error. The command fails if any input
is not valid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var nbad int
			for _, name := range args {
				data, err := readInput(cmd, name)
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				v, err := cfg.parser().ParseBytes(data)
				ast.Free(&v)

				var serr *jvalue.SyntaxError
				if errors.As(err, &serr) {
					nbad++
					log.Errorf("%s: invalid at offset %d: %v", name, serr.Offset, serr.Code)
					fmt.Fprintf(out, "%s: %s: %s\n", name, serr.Location, serr.Code)
				} else if err != nil {
					return err
				} else {
					log.Infof("%s: ok (%d bytes)", name, len(data))
					fmt.Fprintf(out, "%s: ok\n", name)
				}
			}
			if nbad != 0 {
				return fmt.Errorf("%d of %d inputs invalid", nbad, len(args))
			}
			return nil
		},
	}
}
