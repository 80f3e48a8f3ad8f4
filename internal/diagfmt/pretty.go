package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lang/internal/diag"
	"lang/internal/source"
)

type palette struct {
	sev    map[diag.Severity]*color.Color
	gutter *color.Color
	note   *color.Color
	bold   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		gutter: color.New(color.FgBlue),
		note:   color.New(color.FgCyan),
		bold:   color.New(color.Bold),
	}
	all := []*color.Color{p.gutter, p.note, p.bold}
	for _, c := range p.sev {
		all = append(all, c)
	}
	// цвет решает вызывающий, а не isatty внутри fatih/color
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид, в порядке bag.Items().
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeDiagnostic(w, d, fs, opts, pal)
	}
	if dropped := bag.Dropped(); dropped > 0 {
		fmt.Fprintf(w, "\n... %d more diagnostic(s) not shown\n", dropped)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	start, _ := fs.Resolve(d.Primary)
	sevColor := pal.sev[d.Severity]
	if sevColor == nil {
		sevColor = pal.bold
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s\n",
		formatPath(fs, d.Primary.File, opts.PathMode), start.Line, start.Col,
		sevColor.Sprintf("%s %s:", d.Severity, d.Code.ID()),
		pal.bold.Sprint(d.Message))
	writeSnippet(w, d.Primary, fs, int(opts.Context), sevColor, pal)

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		pos, _ := fs.Resolve(note.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"),
			formatPath(fs, note.Span.File, opts.PathMode), pos.Line, pos.Col, note.Msg)
		writeSnippet(w, note.Span, fs, 0, pal.note, pal)
	}
}

// writeSnippet prints the primary line with up to context lines before it
// and marks the span on the primary line.
func writeSnippet(w io.Writer, span source.Span, fs *source.FileSet, context int, mark *color.Color, pal palette) {
	f := fs.Get(span.File)
	if f == nil || f.Len() == 0 {
		return
	}
	start, end := fs.Resolve(span)
	first := start.Line
	for n := context; n > 0 && first > 1; n-- {
		first--
	}
	gutterWidth := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), f.GetLine(ln))
	}

	line := f.GetLine(start.Line)
	from := clampCol(start.Col, line)
	to := len(line)
	if end.Line == start.Line {
		to = clampCol(end.Col, line)
	}
	fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""),
		padFor(line[:from]), mark.Sprint(underline(line[from:to])))
}

// clampCol turns a 1-based byte column into a byte index within line.
func clampCol(col uint32, line string) int {
	idx := int(col) - 1
	if idx < 0 {
		return 0
	}
	if idx > len(line) {
		return len(line)
	}
	return idx
}

// padFor returns whitespace of the same display width as prefix. Tabs are kept
// so the caret lines up with the source line.
func padFor(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

func underline(marked string) string {
	width := runewidth.StringWidth(marked)
	if width <= 1 {
		return "^"
	}
	return "^" + strings.Repeat("~", width-1)
}
