package source

type (
	// FileID identifies a source file inside a FileSet.
	FileID uint32
	// FileFlags records how the content was obtained and normalised.
	FileFlags uint8
)

const (
	// FileVirtual marks content added from memory (tests, stdin, REPL-like tools).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File is a single program text together with its line index.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position, both parts 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Len returns the content length as a span offset.
func (f *File) Len() uint32 {
	return lenU32(f.Content)
}

// Span returns a span covering the whole file.
func (f *File) Span() Span {
	return Span{File: f.ID, Start: 0, End: f.Len()}
}
