package sema

import (
	"fmt"

	"lang/internal/ast"
	"lang/internal/source"
	"lang/internal/symbols"
	"lang/internal/types"
)

// checkFn walks one body. Parameters and the top-level statements of the
// body share the function scope.
func (tc *typeChecker) checkFn(fn *ast.FnItem) {
	tc.fnResult = types.FromTypeRef(fn.ReturnType)
	tc.table.Push(symbols.ScopeFunction, fn.Span)
	defer tc.table.Pop()

	for _, pid := range fn.Params {
		param := tc.builder.Items.FnParam(pid)
		if param == nil {
			continue
		}
		tc.declareVar(symbols.Symbol{
			Name:  param.Name,
			Flags: symbols.SymbolFlagParam,
			Span:  param.Span,
			Type:  types.FromTypeRef(param.Type),
		})
	}

	if body := tc.builder.Stmts.Block(fn.Body); body != nil {
		for _, stmtID := range body.Stmts {
			tc.walkStmt(stmtID)
		}
	}
	tc.checkMissingReturn(fn)
}

// walkBlock analyses a block in its own scope.
func (tc *typeChecker) walkBlock(blockID ast.StmtID) {
	block := tc.builder.Stmts.Block(blockID)
	if block == nil {
		return
	}
	tc.table.Push(symbols.ScopeBlock, tc.builder.Stmts.Get(blockID).Span)
	for _, stmtID := range block.Stmts {
		tc.walkStmt(stmtID)
	}
	tc.table.Pop()
}

func (tc *typeChecker) walkStmt(id ast.StmtID) {
	stmt := tc.builder.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtBlock:
		tc.walkBlock(id)

	case ast.StmtLet:
		let := tc.builder.Stmts.Let(id)
		declared := types.FromTypeRef(let.Type)
		// инициализатор видит только внешние связывания
		got := tc.typeExpr(let.Value)
		tc.expectType(got, declared, tc.exprSpan(let.Value), "initializer of '%s'", tc.name(let.Name))
		tc.declareVar(symbols.Symbol{
			Name: let.Name,
			Span: let.NameSpan,
			Decl: symbols.SymbolDecl{Stmt: id},
			Type: declared,
		})

	case ast.StmtAssign:
		assign := tc.builder.Stmts.Assign(id)
		got := tc.typeExpr(assign.Value)
		symID, ok := tc.table.LookupVariable(assign.Name)
		if !ok {
			tc.fail(UndeclaredVariable, assign.NameSpan, "cannot assign to undeclared variable '%s'", tc.name(assign.Name))
			return
		}
		tc.expectType(got, tc.table.Get(symID).Type, tc.exprSpan(assign.Value), "assignment to '%s'", tc.name(assign.Name))

	case ast.StmtIf:
		ifStmt := tc.builder.Stmts.If(id)
		tc.expectType(tc.typeExpr(ifStmt.Cond), types.Bool, tc.exprSpan(ifStmt.Cond), "condition of 'if'")
		tc.walkBlock(ifStmt.Then)
		if ifStmt.Else.IsValid() {
			tc.walkBlock(ifStmt.Else)
		}

	case ast.StmtWhile:
		while := tc.builder.Stmts.While(id)
		tc.expectType(tc.typeExpr(while.Cond), types.Bool, tc.exprSpan(while.Cond), "condition of 'while'")
		tc.walkBlock(while.Body)

	case ast.StmtReturn:
		ret := tc.builder.Stmts.Return(id)
		got, span := types.Unit, stmt.Span
		if ret.Value.IsValid() {
			got, span = tc.typeExpr(ret.Value), tc.exprSpan(ret.Value)
		}
		tc.expectType(got, tc.fnResult, span, "return value")

	case ast.StmtPrint, ast.StmtExpr:
		tc.typeExpr(tc.builder.Stmts.ExprOf(id).Value)
	}
}

// expectType reports TypeMismatch unless got equals want. Error on either
// side is already reported elsewhere.
func (tc *typeChecker) expectType(got, want types.Type, span source.Span, context string, args ...any) bool {
	if got.IsError() || want.IsError() || got == want {
		return true
	}
	tc.fail(TypeMismatch, span, "%s: expected %s, found %s", fmt.Sprintf(context, args...), want, got)
	return false
}
