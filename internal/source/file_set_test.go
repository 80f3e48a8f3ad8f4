package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("main.lang", []byte("func a"), 0)
	id2 := fs.Add("main.lang", []byte("func b"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}
	latest, ok := fs.GetLatest("main.lang")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d,%v; want %d,true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "func a" {
		t.Errorf("old version content = %q", got)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.lang", []byte("ab\ncd\n\nx"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the newline itself
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{8, LineCol{4, 2}},
	}
	for _, tt := range tests {
		if got := fs.Position(id, tt.off); got != tt.want {
			t.Errorf("Position(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}

	start, end := fs.Resolve(Span{File: id, Start: 3, End: 5})
	if start != (LineCol{2, 1}) || end != (LineCol{2, 3}) {
		t.Errorf("Resolve = %+v-%+v", start, end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("t.lang", []byte("first\nsecond\n")))

	if got := f.GetLine(1); got != "first" {
		t.Errorf("line 1 = %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Errorf("line 2 = %q", got)
	}
	if got := f.GetLine(3); got != "" {
		t.Errorf("line 3 = %q", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("line 0 = %q", got)
	}
	if n := f.LineCount(); n != 2 {
		t.Errorf("LineCount = %d, want 2", n)
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.lang")
	raw := []byte("\xEF\xBB\xBFlet x\r\nlet y\r\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "let x\nlet y\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b", f.Flags)
	}
}

func TestAddVirtualComposesNFC(t *testing.T) {
	fs := NewFileSet()
	// e + combining acute accent
	f := fs.Get(fs.AddVirtual("t.lang", []byte("e\u0301")))
	if string(f.Content) != "\u00e9" {
		t.Errorf("content = %q, want composed é", f.Content)
	}
	if f.Flags&FileNormalizedNFC == 0 {
		t.Errorf("NFC flag not set")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.lang")); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestFormatPath(t *testing.T) {
	f := &File{Path: "dir/sub/main.lang"}
	if got := f.FormatPath("basename", ""); got != "main.lang" {
		t.Errorf("basename = %q", got)
	}
	if got := f.FormatPath("auto", ""); got != "dir/sub/main.lang" {
		t.Errorf("auto = %q", got)
	}
	if got := f.FormatPath("bogus", ""); got != f.Path {
		t.Errorf("unknown mode = %q", got)
	}
}
