package sema

import (
	"lang/internal/ast"
	"lang/internal/types"
)

// typeCall resolves the callee among global functions. Arguments are
// always analysed. On an arity mismatch only one error is reported and
// argument types are not compared.
func (tc *typeChecker) typeCall(id ast.ExprID, call *ast.ExprCallData) types.Type {
	args := make([]types.Type, len(call.Args))
	for i, arg := range call.Args {
		args[i] = tc.typeExpr(arg)
	}

	name := tc.name(call.Name)
	fnID, ok := tc.table.LookupFunction(call.Name)
	if !ok {
		if varID, isVar := tc.table.LookupVariable(call.Name); isVar {
			tc.failWithNote(UndeclaredFunction, call.NameSpan, tc.table.Get(varID).Span, "'"+name+"' is a variable declared here",
				"undeclared function '%s'", name)
		} else {
			tc.fail(UndeclaredFunction, call.NameSpan, "undeclared function '%s'", name)
		}
		return types.Error
	}

	fn := tc.table.Get(fnID)
	if len(args) != len(fn.Params) {
		tc.failWithNote(ArityMismatch, tc.exprSpan(id), fn.Span, "declared here",
			"function '%s' expects %d %s, found %d", name, len(fn.Params), plural(len(fn.Params), "argument"), len(args))
		return fn.Result
	}
	for i, want := range fn.Params {
		tc.expectType(args[i], want, tc.exprSpan(call.Args[i]), "argument %d of '%s'", i+1, name)
	}
	return fn.Result
}
