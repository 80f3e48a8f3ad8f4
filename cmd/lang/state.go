package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"lang/internal/config"
	"lang/internal/diagfmt"
	"lang/internal/driver"
	"lang/internal/observ"
	"lang/internal/prof"
)

// cliState holds the persistent flags merged with lang.toml.
type cliState struct {
	cfg            config.Config
	color          string
	maxDiagnostics int
	timings        bool
	pathMode       diagfmt.PathMode
	cleanup        func()
	profile        *prof.Session
}

func (s *cliState) setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if cfgPath != "" {
		s.cfg, err = config.Load(cfgPath)
	} else {
		s.cfg, err = config.Discover(".")
	}
	if err != nil {
		return err
	}

	// явно заданные флаги важнее lang.toml
	s.color = s.cfg.Diagnostics.Color
	if flags.Changed("color") {
		if s.color, err = flags.GetString("color"); err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	switch s.color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", s.color)
	}

	s.maxDiagnostics = s.cfg.Diagnostics.Max
	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if s.maxDiagnostics < 0 {
		return fmt.Errorf("--max-diagnostics must be >= 0, got %d", s.maxDiagnostics)
	}

	if s.timings, err = flags.GetBool("timings"); err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.pathMode, err = diagfmt.ParsePathMode(s.cfg.Diagnostics.PathMode); err != nil {
		return err
	}

	if s.profile, err = startProfiling(flags); err != nil {
		return err
	}

	s.cleanup, err = setupTracing(cmd)
	return err
}

func startProfiling(flags *pflag.FlagSet) (*prof.Session, error) {
	var cfg prof.Config
	var err error
	if cfg.CPUPath, err = flags.GetString("cpu-profile"); err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.MemPath, err = flags.GetString("mem-profile"); err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.TracePath, err = flags.GetString("exec-trace"); err != nil {
		return nil, fmt.Errorf("failed to get exec-trace flag: %w", err)
	}
	if cfg == (prof.Config{}) {
		return nil, nil
	}
	return prof.Start(cfg)
}

func (s *cliState) teardown() error {
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
	err := s.profile.Stop()
	s.profile = nil
	return err
}

func (s *cliState) driverOptions() driver.Options {
	return driver.Options{MaxDiagnostics: s.maxDiagnostics, EnableTimings: s.timings}
}

func (s *cliState) useColor(f *os.File) bool {
	return s.color == "on" || (s.color == "auto" && isTerminal(f))
}

func (s *cliState) prettyOpts(f *os.File) diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     s.useColor(f),
		Context:   2,
		PathMode:  s.pathMode,
		ShowNotes: true,
	}
}

func (s *cliState) printTimings(w io.Writer, title string, report *observ.Report) {
	if !s.timings || report == nil {
		return
	}
	fmt.Fprint(w, report.Summary(title))
}

func readFormat(cmd *cobra.Command, allowed ...string) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(strings.TrimSpace(format))
	for _, a := range allowed {
		if format == a {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown format: %s (expected %s)", format, strings.Join(allowed, "|"))
}
