package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"lang/internal/diag"
	"lang/internal/source"
)

func spanOf(t *testing.T, fs *source.FileSet, id source.FileID, needle string) source.Span {
	t.Helper()
	content := string(fs.Get(id).Content)
	idx := strings.Index(content, needle)
	if idx < 0 {
		t.Fatalf("%q not found", needle)
	}
	return source.Span{File: id, Start: uint32(idx), End: uint32(idx + len(needle))}
}

func TestPrettyBasic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lang", []byte("func main() -> i32 [\n    return flag;\n]\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SemaUnresolvedSymbol,
		Message:  "undeclared variable 'flag'",
		Primary:  spanOf(t, fs, fileID, "flag"),
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	want := "test.lang:2:12: ERROR SEM3005: undeclared variable 'flag'\n" +
		"1 | func main() -> i32 [\n" +
		"2 |     return flag;\n" +
		"  |            ^~~~\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lang", []byte("func main() -> i32 [ return (1 + 2; ]"))
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnclosedParen,
		Message:  "unterminated expression: expected ')', found ';'",
		Primary:  spanOf(t, fs, fileID, ";"),
		Notes:    []diag.Note{{Span: spanOf(t, fs, fileID, "(1"), Msg: "opened here"}},
	})

	var withNotes, without bytes.Buffer
	Pretty(&withNotes, bag, fs, PrettyOpts{ShowNotes: true})
	Pretty(&without, bag, fs, PrettyOpts{})
	if !strings.Contains(withNotes.String(), "note: test.lang:1:29: opened here") {
		t.Fatalf("note missing:\n%s", withNotes.String())
	}
	if strings.Contains(without.String(), "opened here") {
		t.Fatalf("notes must be hidden without ShowNotes:\n%s", without.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lang", []byte("print x;"))
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynUnexpectedTopLevel, Message: "m", Primary: spanOf(t, fs, fileID, "print")})

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{Color: false})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatal("plain output contains escape codes")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatal("colored output has no escape codes")
	}
}

func TestPrettyTabsAndWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lang", []byte("\t// 日本\tx"))
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.LexUnknownChar, Message: "w", Primary: spanOf(t, fs, fileID, "x")})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	caret := lines[len(lines)-1]
	// tab, "// " и два широких символа (по 2 колонки), затем tab
	if want := "  | \t" + "   " + "    " + "\t^"; caret != want {
		t.Fatalf("caret line %q, want %q", caret, want)
	}
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("/home/user/project/src/test.lang", []byte("let x = 1\n"))
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedTopLevel,
		Message:  "expected 'func', found 'let'",
		Primary:  source.Span{File: fileID, Start: 0, End: 3},
	})

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.lang:1:1"},
		{"Relative path", PathModeRelative, "src/test.lang:1:1"},
		{"Basename only", PathModeBasename, "test.lang:1:1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			output := buf.String()
			if !strings.HasPrefix(output, tt.contains) {
				t.Errorf("Expected output to start with %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR SYN2101") {
				t.Error("Expected severity and code in output")
			}
		})
	}
}

func TestParsePathMode(t *testing.T) {
	for _, s := range []string{"auto", "absolute", "relative", "basename"} {
		m, ok := ParsePathMode(s)
		if !ok || m.String() != s {
			t.Errorf("%s: got %v %v", s, m, ok)
		}
	}
	if _, ok := ParsePathMode("weird"); ok {
		t.Error("unknown mode accepted")
	}
}

func TestPrettyDropped(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.lang", []byte("x"))
	bag := diag.NewBag(1)
	for range 3 {
		bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar, Message: "m", Primary: source.Span{File: fileID, End: 1}})
	}
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "2 more diagnostic(s) not shown") {
		t.Fatalf("missing overflow line:\n%s", buf.String())
	}
}
