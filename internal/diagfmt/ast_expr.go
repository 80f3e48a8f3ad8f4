package diagfmt

import (
	"fmt"
	"strings"

	"lang/internal/ast"
)

// formatExprInline renders an expression back to source-like text. Nested
// binary operands are parenthesised so the tree shape stays visible.
func formatExprInline(builder *ast.Builder, exprID ast.ExprID) string {
	return formatExprInlineDepth(builder, exprID, 0)
}

func formatExprInlineDepth(builder *ast.Builder, exprID ast.ExprID, depth int) string {
	if depth > 64 {
		return "…"
	}
	expr := builder.Exprs.Get(exprID)
	if expr == nil {
		return "<nil>"
	}
	switch expr.Kind {
	case ast.ExprIntLit:
		lit, _ := builder.Exprs.IntLit(exprID)
		return fmt.Sprint(lit.Value)
	case ast.ExprBoolLit:
		lit, _ := builder.Exprs.BoolLit(exprID)
		return fmt.Sprint(lit.Value)
	case ast.ExprIdent:
		ident, _ := builder.Exprs.Ident(exprID)
		return builder.Name(ident.Name)
	case ast.ExprUnary:
		un, _ := builder.Exprs.Unary(exprID)
		return un.Op.String() + wrapExprIfNeeded(builder, un.Operand, formatExprInlineDepth(builder, un.Operand, depth+1))
	case ast.ExprBinary:
		bin, _ := builder.Exprs.Binary(exprID)
		left := wrapExprIfNeeded(builder, bin.Left, formatExprInlineDepth(builder, bin.Left, depth+1))
		right := wrapExprIfNeeded(builder, bin.Right, formatExprInlineDepth(builder, bin.Right, depth+1))
		return left + " " + bin.Op.String() + " " + right
	case ast.ExprCall:
		call, _ := builder.Exprs.Call(exprID)
		args := make([]string, 0, len(call.Args))
		for _, arg := range call.Args {
			args = append(args, formatExprInlineDepth(builder, arg, depth+1))
		}
		return builder.Name(call.Name) + "(" + strings.Join(args, ", ") + ")"
	default:
		return "<?>"
	}
}

func wrapExprIfNeeded(builder *ast.Builder, exprID ast.ExprID, rendered string) string {
	if expr := builder.Exprs.Get(exprID); expr != nil && expr.Kind == ast.ExprBinary {
		return "(" + rendered + ")"
	}
	return rendered
}

func exprJSON(builder *ast.Builder, exprID ast.ExprID) ASTNodeOutput {
	expr := builder.Exprs.Get(exprID)
	if expr == nil {
		return ASTNodeOutput{Type: "Expr", Kind: "<nil>"}
	}
	node := ASTNodeOutput{Type: "Expr", Kind: expr.Kind.String(), Span: expr.Span}
	switch expr.Kind {
	case ast.ExprIntLit:
		lit, _ := builder.Exprs.IntLit(exprID)
		node.Fields = map[string]any{"value": lit.Value}
	case ast.ExprBoolLit:
		lit, _ := builder.Exprs.BoolLit(exprID)
		node.Fields = map[string]any{"value": lit.Value}
	case ast.ExprIdent:
		ident, _ := builder.Exprs.Ident(exprID)
		node.Text = builder.Name(ident.Name)
	case ast.ExprUnary:
		un, _ := builder.Exprs.Unary(exprID)
		node.Fields = map[string]any{"op": un.Op.String()}
		node.Children = []ASTNodeOutput{exprJSON(builder, un.Operand)}
	case ast.ExprBinary:
		bin, _ := builder.Exprs.Binary(exprID)
		node.Fields = map[string]any{"op": bin.Op.String()}
		node.Children = []ASTNodeOutput{exprJSON(builder, bin.Left), exprJSON(builder, bin.Right)}
	case ast.ExprCall:
		call, _ := builder.Exprs.Call(exprID)
		node.Text = builder.Name(call.Name)
		for _, arg := range call.Args {
			node.Children = append(node.Children, exprJSON(builder, arg))
		}
	}
	return node
}
