package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"lang/internal/ast"
	"lang/internal/parser"
	"lang/internal/source"
)

const factorialSrc = `func factorial(n: i32) -> i32 [
    if n <= 1 [
        return 1;
    ]
    return n * factorial(n - 1);
]
`

func parseForFormat(t *testing.T, src string) (*ast.Builder, ast.FileID, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fact.lang", []byte(src)))
	builder := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(file, builder, parser.Options{})
	return builder, res.File, fs
}

func TestFormatASTTree(t *testing.T) {
	builder, fileID, fs := parseForFormat(t, factorialSrc)
	var buf bytes.Buffer
	if err := FormatASTTree(&buf, builder, fileID, fs); err != nil {
		t.Fatalf("FormatASTTree: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"└─ Fn factorial(n: i32) -> i32 (span: 1:1-6:2)",
		"└─ Body (span: ",
		"├─ If n <= 1 (span: 2:5-",
		"Return 1 (span: ",
		"└─ Return n * factorial(n - 1) (span: 5:5-",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if !strings.HasPrefix(out, "fact.lang (span: ") {
		t.Errorf("root label: %q", strings.SplitN(out, "\n", 2)[0])
	}
}

func TestFormatASTTreeNesting(t *testing.T) {
	builder, fileID, fs := parseForFormat(t, "func main() -> i32 [\n  let x: i32 = (1 + 2) * 3;\n  return x;\n")
	var buf bytes.Buffer
	if err := FormatASTTree(&buf, builder, fileID, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Let x: i32 = (1 + 2) * 3") {
		t.Errorf("grouping not rendered:\n%s", out)
	}
	if !strings.Contains(out, "[unterminated]") {
		t.Errorf("unterminated body not marked:\n%s", out)
	}
}

func TestFormatASTJSON(t *testing.T) {
	builder, fileID, _ := parseForFormat(t, factorialSrc)
	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, builder, fileID); err != nil {
		t.Fatal(err)
	}
	var root ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if root.Type != "Program" || len(root.Children) != 1 {
		t.Fatalf("root: %+v", root)
	}
	fn := root.Children[0]
	if fn.Type != "Fn" || fn.Text != "factorial" || fn.Fields["return"] != "i32" {
		t.Fatalf("fn node: %+v", fn)
	}
	body := fn.Children[0]
	if body.Kind != "Block" || len(body.Children) != 2 {
		t.Fatalf("body: %+v", body)
	}
	ret := body.Children[1]
	if ret.Kind != "Return" || len(ret.Children) != 1 || ret.Children[0].Fields["op"] != "*" {
		t.Fatalf("return: %+v", ret)
	}
}

func TestFormatSource(t *testing.T) {
	fs := source.NewFileSet()
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "print 1;"
	}
	file := fs.Get(fs.AddVirtual("n.lang", []byte(strings.Join(lines, "\n")+"\n")))

	var plain bytes.Buffer
	if err := FormatSource(&plain, file, false); err != nil {
		t.Fatal(err)
	}
	if plain.String() != string(file.Content) {
		t.Fatalf("plain output differs")
	}

	var numbered bytes.Buffer
	if err := FormatSource(&numbered, file, true); err != nil {
		t.Fatal(err)
	}
	got := strings.Split(strings.TrimRight(numbered.String(), "\n"), "\n")
	if len(got) != 10 {
		t.Fatalf("want 10 lines, got %d:\n%s", len(got), numbered.String())
	}
	if got[0] != " 1 | print 1;" || got[9] != "10 | print 1;" {
		t.Fatalf("numbering: %q / %q", got[0], got[9])
	}
}
