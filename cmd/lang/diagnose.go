package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lang/internal/diag"
	"lang/internal/diagfmt"
	"lang/internal/driver"
	"lang/internal/source"
	"lang/internal/trace"
	"lang/internal/ui"
)

func newDiagCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "diag [flags] <file.lang|directory>",
		Aliases: []string{"analyze"},
		Short:   "Run diagnostics on a lang source file or directory",
		Long:    `Run the lexer, parser and semantic analyzer on a file or on every *.lang file in a directory`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd, state, args[0])
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|short|json|msgpack)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0 = lang.toml or auto)")
	cmd.Flags().String("ui", "off", "progress view for directories (auto|on|off)")
	cmd.Flags().Bool("with-notes", true, "include diagnostic notes in output")
	return cmd
}

type diagOutput struct {
	format    string
	withNotes bool
	fs        *source.FileSet
	bag       *diag.Bag
}

func runDiagnose(cmd *cobra.Command, state *cliState, path string) error {
	format, err := readFormat(cmd, "pretty", "short", "json", "msgpack")
	if err != nil {
		return err
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeDriver, "diag", 0)
	defer span.End("")

	out := diagOutput{format: format, withNotes: withNotes}
	if !st.IsDir() {
		result, err := driver.Analyze(cmd.Context(), path, state.driverOptions())
		if err != nil {
			return fmt.Errorf("diagnostics failed: %w", err)
		}
		state.printTimings(cmd.ErrOrStderr(), "timings", result.Timing)
		out.fs, out.bag = result.FileSet, result.Bag
	} else {
		out.fs, out.bag, err = diagnoseDir(cmd, state, path)
		if err != nil {
			return err
		}
	}

	if err := writeDiagnostics(cmd.OutOrStdout(), state, out); err != nil {
		return err
	}
	if out.bag.HasErrors() {
		return errDiagnosticsFound
	}
	return nil
}

func diagnoseDir(cmd *cobra.Command, state *cliState, dir string) (*source.FileSet, *diag.Bag, error) {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if !cmd.Flags().Changed("jobs") {
		jobs = state.cfg.Analyze.Jobs
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := parseProgressMode(uiValue)
	if err != nil {
		return nil, nil, err
	}

	opts := driver.DirOptions{Options: state.driverOptions(), Jobs: jobs}
	var (
		fs      *source.FileSet
		results []driver.DiagnoseDirResult
	)
	run := func(sink driver.ProgressSink) error {
		opts.Progress = sink
		var runErr error
		fs, results, runErr = driver.DiagnoseDir(cmd.Context(), dir, opts)
		return runErr
	}

	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("diagnostics failed: %w", err)
	}
	if mode.enabled(cmd.ErrOrStderr(), len(files)) {
		err = ui.RunProgress(cmd.ErrOrStderr(), "diag "+dir, files, run)
	} else {
		err = run(nil)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("diagnostics failed: %w", err)
	}

	// файлы уже отсортированы, порядок диагностик стабилен
	combined := diag.NewBag(0)
	for _, r := range results {
		combined.Merge(r.Bag)
		if r.Analysis != nil {
			state.printTimings(cmd.ErrOrStderr(), "timings "+r.Path, r.Analysis.Timing)
		}
	}
	return fs, combined, nil
}

func writeDiagnostics(w io.Writer, state *cliState, out diagOutput) error {
	jsonOpts := diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         state.pathMode,
		Max:              state.maxDiagnostics,
		IncludeNotes:     out.withNotes,
	}
	switch out.format {
	case "json":
		return diagfmt.JSON(w, out.bag, out.fs, jsonOpts)
	case "msgpack":
		return diagfmt.Msgpack(w, out.bag, out.fs, jsonOpts)
	case "short":
		if text := diag.FormatShortDiagnostics(out.bag.Items(), out.fs, out.withNotes); text != "" {
			_, err := fmt.Fprintln(w, text)
			return err
		}
		return nil
	default:
		opts := state.prettyOpts(os.Stdout)
		opts.ShowNotes = out.withNotes
		diagfmt.Pretty(w, out.bag, out.fs, opts)
		return nil
	}
}
