package sema

import (
	"lang/internal/ast"
	"lang/internal/symbols"
	"lang/internal/types"
)

// declareFn registers the signature in the global scope. The first
// declaration of a name wins.
func (tc *typeChecker) declareFn(itemID ast.ItemID, fn *ast.FnItem) {
	params := make([]types.Type, 0, len(fn.Params))
	for _, pid := range fn.Params {
		if param := tc.builder.Items.FnParam(pid); param != nil {
			params = append(params, types.FromTypeRef(param.Type))
		}
	}
	id, prev, ok := tc.table.Declare(symbols.Symbol{
		Name:   fn.Name,
		Kind:   symbols.SymbolFunction,
		Span:   fn.NameSpan,
		Decl:   symbols.SymbolDecl{Item: itemID},
		Params: params,
		Result: types.FromTypeRef(fn.ReturnType),
	})
	if !ok {
		tc.failWithNote(Redeclaration, fn.NameSpan, tc.table.Get(prev).Span, "previous declaration here",
			"function '%s' is already declared", tc.name(fn.Name))
		return
	}
	tc.result.Functions[tc.name(fn.Name)] = id
}

// declareVar binds a variable in the current scope.
func (tc *typeChecker) declareVar(sym symbols.Symbol) {
	sym.Kind = symbols.SymbolVariable
	if _, prev, ok := tc.table.Declare(sym); !ok {
		what := "variable"
		if sym.Flags&symbols.SymbolFlagParam != 0 {
			what = "parameter"
		}
		tc.failWithNote(Redeclaration, sym.Span, tc.table.Get(prev).Span, "previous declaration here",
			"%s '%s' is already declared in this scope", what, tc.name(sym.Name))
	}
}
