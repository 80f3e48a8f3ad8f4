package sema

import (
	"lang/internal/ast"
	"lang/internal/types"
)

// typeExpr infers the type of an expression bottom-up and records it.
func (tc *typeChecker) typeExpr(id ast.ExprID) types.Type {
	t := tc.inferExpr(id)
	if id.IsValid() {
		tc.result.ExprTypes[id] = t
	}
	return t
}

func (tc *typeChecker) inferExpr(id ast.ExprID) types.Type {
	expr := tc.builder.Exprs.Get(id)
	if expr == nil {
		return types.Error
	}
	switch expr.Kind {
	case ast.ExprIntLit:
		if lit, _ := tc.builder.Exprs.IntLit(id); lit != nil && lit.Malformed {
			return types.Error
		}
		return types.Int
	case ast.ExprBoolLit:
		return types.Bool
	case ast.ExprIdent:
		ident, _ := tc.builder.Exprs.Ident(id)
		return tc.typeIdent(id, ident)
	case ast.ExprUnary:
		data, _ := tc.builder.Exprs.Unary(id)
		return tc.typeUnary(id, data)
	case ast.ExprBinary:
		data, _ := tc.builder.Exprs.Binary(id)
		return tc.typeBinary(id, data)
	case ast.ExprCall:
		data, _ := tc.builder.Exprs.Call(id)
		return tc.typeCall(id, data)
	default:
		return types.Error
	}
}

func (tc *typeChecker) typeIdent(id ast.ExprID, ident *ast.ExprIdentData) types.Type {
	if symID, ok := tc.table.LookupVariable(ident.Name); ok {
		return tc.table.Get(symID).Type
	}
	name := tc.name(ident.Name)
	if fnID, ok := tc.table.LookupFunction(ident.Name); ok {
		tc.failWithNote(UndeclaredVariable, tc.exprSpan(id), tc.table.Get(fnID).Span, "a function with this name is declared here",
			"undeclared variable '%s'", name)
		return types.Error
	}
	tc.fail(UndeclaredVariable, tc.exprSpan(id), "undeclared variable '%s'", name)
	return types.Error
}

func (tc *typeChecker) typeUnary(id ast.ExprID, data *ast.ExprUnaryData) types.Type {
	operand := tc.typeExpr(data.Operand)
	if operand.IsError() {
		return types.Error
	}
	spec, ok := types.UnarySpecFor(data.Op)
	if !ok {
		return types.Error
	}
	if !spec.Accepts(operand) {
		tc.fail(TypeMismatch, tc.exprSpan(id), "operator '%s' expects %s, found %s",
			data.Op, familyLabel(spec.Operand), operand)
		return types.Error
	}
	return spec.Result
}

func (tc *typeChecker) typeBinary(id ast.ExprID, data *ast.ExprBinaryData) types.Type {
	left := tc.typeExpr(data.Left)
	right := tc.typeExpr(data.Right)
	if left.IsError() || right.IsError() {
		return types.Error
	}
	spec, ok := types.BinarySpecFor(data.Op)
	if !ok {
		return types.Error
	}
	if spec.Accepts(left, right) {
		return spec.Result
	}
	if spec.Flags&types.BinaryFlagSameType != 0 {
		tc.fail(TypeMismatch, tc.exprSpan(id), "operator '%s' requires operands of the same type, found %s and %s",
			data.Op, left, right)
	} else {
		tc.fail(TypeMismatch, tc.exprSpan(id), "operator '%s' expects %s operands, found %s and %s",
			data.Op, familyLabel(spec.Left), left, right)
	}
	return types.Error
}
