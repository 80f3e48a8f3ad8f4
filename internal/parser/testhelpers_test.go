package parser

import (
	"fmt"
	"strings"
	"testing"

	"lang/internal/ast"
	"lang/internal/diag"
	"lang/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

type parsed struct {
	builder *ast.Builder
	result  Result
	bag     *diag.Bag
	src     string
}

func parseSource(t *testing.T, input string) parsed {
	t.Helper()
	return parseSourceWith(t, input, Options{})
}

func parseSourceWith(t *testing.T, input string, opts Options) parsed {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.lang", []byte(input)))
	bag := diag.NewBag(0)
	opts.Reporter = &diag.BagReporter{Bag: bag}
	builder := ast.NewBuilder(ast.Hints{}, nil)
	res := ParseFile(file, builder, opts)
	return parsed{builder: builder, result: res, bag: bag, src: string(file.Content)}
}

func (p parsed) fns(t *testing.T) []*ast.FnItem {
	t.Helper()
	file := p.builder.Files.Get(p.result.File)
	if file == nil {
		t.Fatal("no file node")
	}
	out := make([]*ast.FnItem, 0, len(file.Items))
	for _, id := range file.Items {
		fn, ok := p.builder.Items.Fn(id)
		if !ok {
			t.Fatalf("item %d is not a function", id)
		}
		out = append(out, fn)
	}
	return out
}

func (p parsed) bodyStmts(t *testing.T, fnIndex int) []ast.StmtID {
	t.Helper()
	fns := p.fns(t)
	if fnIndex >= len(fns) {
		t.Fatalf("want function #%d, have %d", fnIndex, len(fns))
	}
	block := p.builder.Stmts.Block(fns[fnIndex].Body)
	if block == nil {
		t.Fatal("function body is not a block")
	}
	return block.Stmts
}

// renderExpr печатает выражение в виде s-expression для сравнения структуры.
func renderExpr(b *ast.Builder, id ast.ExprID) string {
	e := b.Exprs.Get(id)
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ast.ExprIntLit:
		lit, _ := b.Exprs.IntLit(id)
		return fmt.Sprint(lit.Value)
	case ast.ExprBoolLit:
		lit, _ := b.Exprs.BoolLit(id)
		return fmt.Sprint(lit.Value)
	case ast.ExprIdent:
		ident, _ := b.Exprs.Ident(id)
		return b.Name(ident.Name)
	case ast.ExprUnary:
		un, _ := b.Exprs.Unary(id)
		return "(" + un.Op.String() + " " + renderExpr(b, un.Operand) + ")"
	case ast.ExprBinary:
		bin, _ := b.Exprs.Binary(id)
		return "(" + bin.Op.String() + " " + renderExpr(b, bin.Left) + " " + renderExpr(b, bin.Right) + ")"
	case ast.ExprCall:
		call, _ := b.Exprs.Call(id)
		parts := []string{"call", b.Name(call.Name)}
		for _, a := range call.Args {
			parts = append(parts, renderExpr(b, a))
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return "<?>"
	}
}

func (p parsed) text(sp source.Span) string {
	return p.src[sp.Start:sp.End]
}
