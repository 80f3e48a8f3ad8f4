package parser

import (
	"testing"

	"lang/internal/ast"
	"lang/internal/token"
)

func TestEmptyProgram(t *testing.T) {
	for _, input := range []string{"", "   \n// only a comment\n"} {
		p := parseSource(t, input)
		if p.bag.Len() != 0 {
			t.Fatalf("%q: %s", input, diagnosticsSummary(p.bag))
		}
		if n := len(p.fns(t)); n != 0 {
			t.Fatalf("%q: want no functions, got %d", input, n)
		}
	}
}

func TestFunctionHeader(t *testing.T) {
	p := parseSource(t, "func add(a: i32, b: bool) -> bool [ return b; ]\nfunc unit() -> i32 [ ]")
	if p.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(p.bag))
	}
	fns := p.fns(t)
	if len(fns) != 2 {
		t.Fatalf("want 2 functions, got %d", len(fns))
	}
	add := fns[0]
	if p.builder.Name(add.Name) != "add" || add.ReturnType.Kind != ast.TypeBool {
		t.Fatalf("bad header: %s -> %s", p.builder.Name(add.Name), add.ReturnType.Kind)
	}
	if len(add.Params) != 2 {
		t.Fatalf("want 2 params, got %d", len(add.Params))
	}
	wantParams := []struct {
		name string
		kind ast.TypeRefKind
	}{{"a", ast.TypeI32}, {"b", ast.TypeBool}}
	for i, id := range add.Params {
		param := p.builder.Items.FnParam(id)
		if p.builder.Name(param.Name) != wantParams[i].name || param.Type.Kind != wantParams[i].kind {
			t.Errorf("param %d: %s: %s", i, p.builder.Name(param.Name), param.Type.Kind)
		}
	}
	if len(fns[1].Params) != 0 {
		t.Fatal("unit() should have no params")
	}
	if p.text(add.Span) != "func add(a: i32, b: bool) -> bool [ return b; ]" {
		t.Fatalf("fn span %q", p.text(add.Span))
	}
}

func TestStatementKinds(t *testing.T) {
	src := `func main() -> i32 [
	let x: i32 = 1;
	x = x + 1;
	if x > 1 [ print x; ] else [ print 0; ]
	if true [ ]
	while x < 10 [ x = x + 1; ]
	[ print x; ]
	foo(x);
	return x;
]`
	p := parseSource(t, src)
	if p.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(p.bag))
	}
	stmts := p.bodyStmts(t, 0)
	want := []ast.StmtKind{
		ast.StmtLet, ast.StmtAssign, ast.StmtIf, ast.StmtIf,
		ast.StmtWhile, ast.StmtBlock, ast.StmtExpr, ast.StmtReturn,
	}
	if len(stmts) != len(want) {
		t.Fatalf("want %d statements, got %d", len(want), len(stmts))
	}
	for i, id := range stmts {
		if got := p.builder.Stmts.Get(id).Kind; got != want[i] {
			t.Errorf("stmt %d: want %s, got %s", i, want[i], got)
		}
	}

	ifElse := p.builder.Stmts.If(stmts[2])
	if !ifElse.Else.IsValid() {
		t.Fatal("first if should have an else block")
	}
	if p.builder.Stmts.If(stmts[3]).Else.IsValid() {
		t.Fatal("second if has no else")
	}
	let := p.builder.Stmts.Let(stmts[0])
	if p.builder.Name(let.Name) != "x" || let.Type.Kind != ast.TypeI32 {
		t.Fatalf("let: %s: %s", p.builder.Name(let.Name), let.Type.Kind)
	}
	if got := p.text(p.builder.Stmts.Get(stmts[0]).Span); got != "let x: i32 = 1;" {
		t.Fatalf("let span %q", got)
	}
}

func TestBareReturn(t *testing.T) {
	p := parseSource(t, "func f() -> i32 [ return; ]")
	if p.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(p.bag))
	}
	ret := p.builder.Stmts.Return(p.bodyStmts(t, 0)[0])
	if ret == nil || ret.Value.IsValid() {
		t.Fatal("expected bare return")
	}
}

func TestPrintStatement(t *testing.T) {
	p := parseSource(t, "func f() -> i32 [ print 1 + 2; return 0; ]")
	if p.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(p.bag))
	}
	stmts := p.bodyStmts(t, 0)
	st := p.builder.Stmts.Get(stmts[0])
	if st.Kind != ast.StmtPrint {
		t.Fatalf("want print, got %s", st.Kind)
	}
	if got := renderExpr(p.builder, p.builder.Stmts.ExprOf(stmts[0]).Value); got != "(+ 1 2)" {
		t.Fatalf("print value %s", got)
	}
}

func TestFactorialProgram(t *testing.T) {
	src := `// factorial
func fact(n: i32) -> i32 [
	if n <= 1 [
		return 1;
	]
	return n * fact(n - 1);
]

func main() -> i32 [
	print fact(5);
	return 0;
]
`
	p := parseSource(t, src)
	if p.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(p.bag))
	}
	fns := p.fns(t)
	if len(fns) != 2 {
		t.Fatalf("want 2 functions, got %d", len(fns))
	}
	if p.builder.Name(fns[0].Name) != "fact" || p.builder.Name(fns[1].Name) != "main" {
		t.Fatal("functions out of source order")
	}
}

// ParseTokens works on a hand-built stream without a trailing EOF.
func TestParseTokensDirect(t *testing.T) {
	builder := ast.NewBuilder(ast.Hints{}, nil)
	toks := []token.Token{
		{Kind: token.KwFunc, Text: "func"},
		{Kind: token.Ident, Text: "f"},
		{Kind: token.LParen, Text: "("},
		{Kind: token.RParen, Text: ")"},
		{Kind: token.Arrow, Text: "->"},
		{Kind: token.KwI32, Text: "i32"},
		{Kind: token.LBracket, Text: "["},
		{Kind: token.RBracket, Text: "]"},
	}
	res := ParseTokens(toks, builder, Options{})
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.LexErrors) != 0 {
		t.Fatal("ParseTokens must not report lexer errors")
	}
	if n := len(builder.Files.Get(res.File).Items); n != 1 {
		t.Fatalf("want 1 item, got %d", n)
	}
}
