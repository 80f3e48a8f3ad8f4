package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lang/internal/version"
)

// errDiagnosticsFound makes the process exit with status 1 without printing
// anything more: the diagnostics are already on screen.
var errDiagnosticsFound = errors.New("diagnostics contain errors")

func newRootCmd(state *cliState) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lang",
		Short:         "Front end for the lang language",
		Long:          `lang tokenizes, parses and type-checks .lang programs and reports diagnostics`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to show (0 = unlimited)")
	flags.Bool("timings", false, "print phase timings to stderr")
	flags.String("config", "", "path to lang.toml (default: search upwards from the working directory)")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.String("cpu-profile", "", "write CPU profile to file")
	flags.String("mem-profile", "", "write heap profile to file on exit")
	flags.String("exec-trace", "", "write runtime execution trace to file")

	rootCmd.AddCommand(
		newTokenizeCmd(state),
		newParseCmd(state),
		newDiagCmd(state),
		newPrintCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// execute runs the CLI with args; the tracer is released even when the
// command fails.
func execute(args []string, stdout, stderr io.Writer) error {
	state := &cliState{}

	rootCmd := newRootCmd(state)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	err := rootCmd.Execute()
	if stopErr := state.teardown(); stopErr != nil && err == nil {
		err = stopErr
	}
	return err
}

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errDiagnosticsFound) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
