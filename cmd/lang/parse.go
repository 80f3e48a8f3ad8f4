package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lang/internal/diagfmt"
	"lang/internal/driver"
	"lang/internal/trace"
)

func newParseCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.lang",
		Short: "Parse a lang source file and print its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, state, args[0])
		},
	}
	cmd.Flags().String("format", "tree", "output format (tree|json)")
	return cmd
}

func runParse(cmd *cobra.Command, state *cliState, path string) error {
	format, err := readFormat(cmd, "tree", "json")
	if err != nil {
		return err
	}

	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeDriver, "parse", 0)
	result, err := driver.Parse(cmd.Context(), path, state.driverOptions())
	span.End("")
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, state.prettyOpts(os.Stderr))
	}
	state.printTimings(cmd.ErrOrStderr(), "timings", result.Timing)

	out := cmd.OutOrStdout()
	if format == "json" {
		return diagfmt.FormatASTJSON(out, result.Builder, result.FileID)
	}
	return diagfmt.FormatASTTree(out, result.Builder, result.FileID, result.FileSet)
}
