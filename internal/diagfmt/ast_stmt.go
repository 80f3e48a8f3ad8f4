package diagfmt

import (
	"fmt"

	"lang/internal/ast"
	"lang/internal/source"
)

func buildStmtTreeNode(builder *ast.Builder, stmtID ast.StmtID, fs *source.FileSet) *treeNode {
	stmt := builder.Stmts.Get(stmtID)
	if stmt == nil {
		return &treeNode{label: "<nil stmt>"}
	}
	span := formatSpan(stmt.Span, fs)
	switch stmt.Kind {
	case ast.StmtBlock:
		return buildBlockTreeNode(builder, stmtID, "Block", fs)
	case ast.StmtLet:
		let := builder.Stmts.Let(stmtID)
		return &treeNode{label: fmt.Sprintf("Let %s: %s = %s (span: %s)",
			builder.Name(let.Name), let.Type.Kind, formatExprInline(builder, let.Value), span)}
	case ast.StmtAssign:
		assign := builder.Stmts.Assign(stmtID)
		return &treeNode{label: fmt.Sprintf("Assign %s = %s (span: %s)",
			builder.Name(assign.Name), formatExprInline(builder, assign.Value), span)}
	case ast.StmtIf:
		ifStmt := builder.Stmts.If(stmtID)
		node := &treeNode{label: fmt.Sprintf("If %s (span: %s)", formatExprInline(builder, ifStmt.Cond), span)}
		node.children = append(node.children, buildBlockTreeNode(builder, ifStmt.Then, "Then", fs))
		if ifStmt.Else.IsValid() {
			node.children = append(node.children, buildBlockTreeNode(builder, ifStmt.Else, "Else", fs))
		}
		return node
	case ast.StmtWhile:
		while := builder.Stmts.While(stmtID)
		node := &treeNode{label: fmt.Sprintf("While %s (span: %s)", formatExprInline(builder, while.Cond), span)}
		node.children = append(node.children, buildBlockTreeNode(builder, while.Body, "Body", fs))
		return node
	case ast.StmtReturn:
		ret := builder.Stmts.Return(stmtID)
		if !ret.Value.IsValid() {
			return &treeNode{label: fmt.Sprintf("Return (span: %s)", span)}
		}
		return &treeNode{label: fmt.Sprintf("Return %s (span: %s)", formatExprInline(builder, ret.Value), span)}
	case ast.StmtPrint:
		return &treeNode{label: fmt.Sprintf("Print %s (span: %s)", formatExprInline(builder, builder.Stmts.ExprOf(stmtID).Value), span)}
	case ast.StmtExpr:
		return &treeNode{label: fmt.Sprintf("Expr %s (span: %s)", formatExprInline(builder, builder.Stmts.ExprOf(stmtID).Value), span)}
	default:
		return &treeNode{label: fmt.Sprintf("%s (span: %s)", stmt.Kind, span)}
	}
}

func buildBlockTreeNode(builder *ast.Builder, blockID ast.StmtID, title string, fs *source.FileSet) *treeNode {
	block := builder.Stmts.Block(blockID)
	if block == nil {
		return &treeNode{label: title + ": <none>"}
	}
	label := fmt.Sprintf("%s (span: %s)", title, formatSpan(builder.Stmts.Get(blockID).Span, fs))
	if block.Unterminated {
		label += " [unterminated]"
	}
	node := &treeNode{label: label}
	for _, child := range block.Stmts {
		node.children = append(node.children, buildStmtTreeNode(builder, child, fs))
	}
	return node
}

func stmtJSON(builder *ast.Builder, stmtID ast.StmtID) ASTNodeOutput {
	stmt := builder.Stmts.Get(stmtID)
	if stmt == nil {
		return ASTNodeOutput{Type: "Stmt", Kind: "<nil>"}
	}
	node := ASTNodeOutput{Type: "Stmt", Kind: stmt.Kind.String(), Span: stmt.Span}
	switch stmt.Kind {
	case ast.StmtBlock:
		block := builder.Stmts.Block(stmtID)
		if block.Unterminated {
			node.Fields = map[string]any{"unterminated": true}
		}
		for _, child := range block.Stmts {
			node.Children = append(node.Children, stmtJSON(builder, child))
		}
	case ast.StmtLet:
		let := builder.Stmts.Let(stmtID)
		node.Text = builder.Name(let.Name)
		node.Fields = map[string]any{"type": let.Type.Kind.String()}
		node.Children = []ASTNodeOutput{exprJSON(builder, let.Value)}
	case ast.StmtAssign:
		assign := builder.Stmts.Assign(stmtID)
		node.Text = builder.Name(assign.Name)
		node.Children = []ASTNodeOutput{exprJSON(builder, assign.Value)}
	case ast.StmtIf:
		ifStmt := builder.Stmts.If(stmtID)
		node.Children = []ASTNodeOutput{exprJSON(builder, ifStmt.Cond), stmtJSON(builder, ifStmt.Then)}
		if ifStmt.Else.IsValid() {
			node.Children = append(node.Children, stmtJSON(builder, ifStmt.Else))
		}
	case ast.StmtWhile:
		while := builder.Stmts.While(stmtID)
		node.Children = []ASTNodeOutput{exprJSON(builder, while.Cond), stmtJSON(builder, while.Body)}
	case ast.StmtReturn:
		if ret := builder.Stmts.Return(stmtID); ret.Value.IsValid() {
			node.Children = []ASTNodeOutput{exprJSON(builder, ret.Value)}
		}
	case ast.StmtPrint, ast.StmtExpr:
		node.Children = []ASTNodeOutput{exprJSON(builder, builder.Stmts.ExprOf(stmtID).Value)}
	}
	return node
}
