package diag

import (
	"fmt"
	"strings"

	"lang/internal/source"
)

// FormatShortDiagnostics renders one line per diagnostic in input order:
//
//	error SYN2001 path:line:col message
//
// Notes follow their diagnostic as "note" lines when includeNotes is set.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	var b strings.Builder
	first := true
	line := func(label string, code Code, sp source.Span, msg string) {
		path, pos, ok := resolveSpan(fs, sp)
		if !ok {
			return
		}
		if !first {
			b.WriteByte('\n')
		}
		first = false
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", label, code.ID(), path, pos.Line, pos.Col, sanitizeMessage(msg))
	}
	for i := range diags {
		d := &diags[i]
		line(d.Severity.Label(), d.Code, d.Primary, d.Message)
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			line("note", d.Code, n.Span, n.Msg)
		}
	}
	return b.String()
}

func resolveSpan(fs *source.FileSet, span source.Span) (string, source.LineCol, bool) {
	if int(span.File) >= fs.Len() {
		return "", source.LineCol{}, false
	}
	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return strings.TrimPrefix(file.Path, "./"), start, true
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
