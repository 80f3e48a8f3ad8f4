package parser

import (
	"strconv"

	"lang/internal/ast"
	"lang/internal/diag"
	"lang/internal/source"
	"lang/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(precLowest)
}

// parseBinaryExpr: precedence climbing: пока приоритет следующего оператора
// не ниже minPrec, съедаем его и разбираем правую часть с prec+1.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		prec, rightAssoc, op := binaryOperator(p.ts.Peek().Kind)
		if prec < 0 || prec < minPrec {
			break
		}
		p.advance()

		nextMinPrec := prec + 1
		if rightAssoc {
			nextMinPrec = prec
		}
		right, ok := p.parseBinaryExpr(nextMinPrec)
		if !ok {
			return ast.NoExprID, false
		}
		span := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.arenas.Exprs.NewBinary(span, op, left, right)
	}
	return left, true
}

// parseUnaryExpr собирает префиксы '!' и '-' и применяет их справа налево.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	type prefixOp struct {
		op   ast.UnaryOp
		span source.Span
	}
	var prefixes []prefixOp
	for {
		op, ok := unaryOperator(p.ts.Peek().Kind)
		if !ok {
			break
		}
		prefixes = append(prefixes, prefixOp{op: op, span: p.advance().Span})
	}

	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	for i := len(prefixes) - 1; i >= 0; i-- {
		span := prefixes[i].span.Cover(p.exprSpan(expr))
		expr = p.arenas.Exprs.NewUnary(span, prefixes[i].op, expr)
	}
	return expr, true
}

// parsePrimaryExpr: литерал, идентификатор, вызов, выражение в скобках.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.ts.Peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		v, err := strconv.ParseInt(tok.Text, 10, 32)
		if err != nil {
			v = 0 // лексер уже отверг такие литералы
		}
		return p.arenas.Exprs.NewIntLit(tok.Span, int32(v)), true

	case token.Invalid:
		// malformed number, already reported by the lexer
		p.advance()
		return p.arenas.Exprs.NewMalformedIntLit(tok.Span), true

	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.arenas.Exprs.NewBoolLit(tok.Span, tok.Kind == token.KwTrue), true

	case token.Ident:
		p.advance()
		name := p.arenas.StringsInterner.Intern(tok.Text)
		if p.at(token.LParen) {
			return p.parseCallExpr(tok, name)
		}
		return p.arenas.Exprs.NewIdent(tok.Span, name), true

	case token.LParen:
		open := p.advance()
		inner, ok := p.parseBinaryExpr(precLowest)
		if !ok {
			return ast.NoExprID, false
		}
		if !p.at(token.RParen) {
			p.errUnterminated(UnterminatedExpression, open.Span)
			return ast.NoExprID, false
		}
		closeTok := p.advance()
		// группа не материализуется: расширяем span внутреннего узла
		e := p.arenas.Exprs.Get(inner)
		e.Span = open.Span.Cover(closeTok.Span)
		return inner, true

	default:
		p.errUnexpected(diag.SynExpectExpression, exprStarters...)
		return ast.NoExprID, false
	}
}

// parseCallExpr := IDENT "(" (expr ("," expr)*)? ")"
func (p *Parser) parseCallExpr(nameTok token.Token, name source.StringID) (ast.ExprID, bool) {
	open := p.advance() // (
	var args []ast.ExprID
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if !p.at(token.RParen) {
		if p.atOr(exprStarters...) {
			p.errUnexpected(diag.SynUnexpectedToken, token.Comma, token.RParen)
		} else {
			p.errUnterminated(UnterminatedExpression, open.Span)
		}
		return ast.NoExprID, false
	}
	closeTok := p.advance()
	return p.arenas.Exprs.NewCall(nameTok.Span.Cover(closeTok.Span), ast.ExprCallData{
		Name:     name,
		NameSpan: nameTok.Span,
		Args:     args,
	}), true
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	if e := p.arenas.Exprs.Get(id); e != nil {
		return e.Span
	}
	return p.lastSpan
}
