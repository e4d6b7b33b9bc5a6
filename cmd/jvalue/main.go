// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jvalue checks, summarizes, and queries JSON documents.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/creachadair/jvalue/ast"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("jvalue")

// settings are the flags shared by all subcommands.
type settings struct {
	maxDepth  int
	verbosity int
	quiet     bool
	logFile   string
}

func (s *settings) parser() ast.Parser { return ast.Parser{MaxDepth: s.maxDepth} }

func (s *settings) configureLog() {
	v := s.verbosity
	if s.quiet {
		v = -4 // none
	}
	var path *string
	if s.logFile != "" {
		path = &s.logFile
	}
	commonlog.Configure(v, path)
}

func newRootCmd() *cobra.Command {
	var cfg settings

	rootCmd := &cobra.Command{
		Use:           "jvalue",
		Short:         "Check, summarize, and query JSON documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg.configureLog()
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&cfg.maxDepth, "max-depth", 0, "Maximum nesting depth of arrays and objects (0 for the default, negative for unlimited)")
	flags.CountVarP(&cfg.verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	flags.BoolVarP(&cfg.quiet, "quiet", "q", false, "Disable logging")
	flags.StringVar(&cfg.logFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(newCheckCmd(&cfg))
	rootCmd.AddCommand(newStatCmd(&cfg))
	rootCmd.AddCommand(newGetCmd(&cfg))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jvalue: %v\n", err)
		os.Exit(1)
	}
}

// readInput reads the contents of the named file, or of stdin if name is "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}

// parseInput reads and parses the named input.
func parseInput(cmd *cobra.Command, cfg *settings, name string) (ast.Value, error) {
	data, err := readInput(cmd, name)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	start := time.Now()
	v, err := cfg.parser().ParseBytes(data)
	log.Debugf("parsed %d bytes from %q in %v", len(data), name, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}
