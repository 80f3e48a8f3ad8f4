package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// progressMode is the --ui setting of diag on directories.
type progressMode uint8

const (
	progressAuto progressMode = iota
	progressOn
	progressOff
)

func parseProgressMode(value string) (progressMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return progressAuto, nil
	case "on":
		return progressOn, nil
	case "off":
		return progressOff, nil
	default:
		return progressOff, fmt.Errorf("diag: invalid --ui value %q (expected auto|on|off)", value)
	}
}

// enabled reports whether the progress view should draw on out for a run
// over files sources. Auto needs a terminal and more than one file.
func (m progressMode) enabled(out io.Writer, files int) bool {
	switch m {
	case progressOn:
		return true
	case progressOff:
		return false
	}
	f, ok := out.(*os.File)
	return ok && files > 1 && isTerminal(f)
}
