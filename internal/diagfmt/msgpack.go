package diagfmt

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"lang/internal/diag"
	"lang/internal/source"
	"lang/internal/token"
)

// Msgpack writes the same document as JSON in MessagePack encoding.
func Msgpack(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	output := BuildDiagnosticsOutput(bag, fs, opts)
	if err := encodeMsgpack(w, output); err != nil {
		return fmt.Errorf("encode diagnostics: %w", err)
	}
	return nil
}

// FormatTokensMsgpack writes the token list in MessagePack encoding.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	if err := encodeMsgpack(w, buildTokenOutput(tokens)); err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	return nil
}

func encodeMsgpack(w io.Writer, v any) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(v)
}
