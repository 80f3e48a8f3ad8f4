package parser

import (
	"lang/internal/ast"
	"lang/internal/token"
)

// Таблица приоритетов для бинарных операторов.
// Чем больше число, тем выше приоритет; все бинарные левоассоциативны.
const (
	precLowest         = 0
	precLogicalOr      = 1 // ||
	precLogicalAnd     = 2 // &&
	precEquality       = 3 // == !=
	precComparison     = 4 // < <= > >=
	precAdditive       = 5 // + -
	precMultiplicative = 6 // * /
)

// binaryOperator returns precedence, right-associativity and the AST operator.
// prec is -1 for tokens that are not binary operators.
func binaryOperator(kind token.Kind) (prec int, rightAssoc bool, op ast.BinaryOp) {
	switch kind {
	case token.OrOr:
		return precLogicalOr, false, ast.BinOr
	case token.AndAnd:
		return precLogicalAnd, false, ast.BinAnd
	case token.EqEq:
		return precEquality, false, ast.BinEq
	case token.BangEq:
		return precEquality, false, ast.BinNe
	case token.Lt:
		return precComparison, false, ast.BinLt
	case token.LtEq:
		return precComparison, false, ast.BinLe
	case token.Gt:
		return precComparison, false, ast.BinGt
	case token.GtEq:
		return precComparison, false, ast.BinGe
	case token.Plus:
		return precAdditive, false, ast.BinAdd
	case token.Minus:
		return precAdditive, false, ast.BinSub
	case token.Star:
		return precMultiplicative, false, ast.BinMul
	case token.Slash:
		return precMultiplicative, false, ast.BinDiv
	default:
		return -1, false, 0
	}
}

// unaryOperator maps prefix tokens.
func unaryOperator(kind token.Kind) (ast.UnaryOp, bool) {
	switch kind {
	case token.Minus:
		return ast.UnNeg, true
	case token.Bang:
		return ast.UnNot, true
	default:
		return 0, false
	}
}

// exprStarters: то, с чего может начинаться выражение.
var exprStarters = []token.Kind{
	token.IntLit, token.Ident, token.KwTrue, token.KwFalse,
	token.LParen, token.Bang, token.Minus,
}
