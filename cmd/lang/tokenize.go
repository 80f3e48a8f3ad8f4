package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lang/internal/diagfmt"
	"lang/internal/driver"
	"lang/internal/trace"
)

func newTokenizeCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.lang",
		Short: "Tokenize a lang source file",
		Long:  `Tokenize breaks a lang source file into tokens and prints them with their positions`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(cmd, state, args[0])
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	return cmd
}

func runTokenize(cmd *cobra.Command, state *cliState, path string) error {
	format, err := readFormat(cmd, "pretty", "json", "msgpack")
	if err != nil {
		return err
	}

	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeDriver, "tokenize", 0)
	result, err := driver.Tokenize(cmd.Context(), path, state.driverOptions())
	span.End("")
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, state.prettyOpts(os.Stderr))
	}
	state.printTimings(cmd.ErrOrStderr(), "timings", result.Timing)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(out, result.Tokens)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(out, result.Tokens)
	default:
		return diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	}
}
