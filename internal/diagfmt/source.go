package diagfmt

import (
	"fmt"
	"io"

	"lang/internal/source"
)

// FormatSource echoes file content. With numbered every line is prefixed by
// its right-aligned number: "  7 | text".
func FormatSource(w io.Writer, f *source.File, numbered bool) error {
	if !numbered {
		_, err := w.Write(f.Content)
		return err
	}
	n := f.LineCount()
	width := len(fmt.Sprint(n))
	for ln := uint32(1); ln <= n; ln++ {
		if _, err := fmt.Fprintf(w, "%*d | %s\n", width, ln, f.GetLine(ln)); err != nil {
			return err
		}
	}
	return nil
}
