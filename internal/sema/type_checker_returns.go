package sema

import (
	"lang/internal/ast"
	"lang/internal/types"
)

// checkMissingReturn reports a function with a result type whose body has
// no return statement. Loop bodies do not count. A recovered body may have
// lost its return to the parser and is not checked.
func (tc *typeChecker) checkMissingReturn(fn *ast.FnItem) {
	if fn.Recovered || tc.fnResult == types.Unit || tc.fnResult.IsError() {
		return
	}
	if tc.hasReturn(fn.Body) {
		return
	}
	tc.fail(MissingReturn, fn.NameSpan, "function '%s' declares return type %s but has no return statement",
		tc.name(fn.Name), tc.fnResult)
}

func (tc *typeChecker) hasReturn(id ast.StmtID) bool {
	stmt := tc.builder.Stmts.Get(id)
	if stmt == nil {
		return false
	}
	switch stmt.Kind {
	case ast.StmtReturn:
		return true
	case ast.StmtBlock:
		for _, child := range tc.builder.Stmts.Block(id).Stmts {
			if tc.hasReturn(child) {
				return true
			}
		}
		return false
	case ast.StmtIf:
		ifStmt := tc.builder.Stmts.If(id)
		return tc.hasReturn(ifStmt.Then) || tc.hasReturn(ifStmt.Else)
	default:
		return false
	}
}
