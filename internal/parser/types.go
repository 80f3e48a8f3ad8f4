package parser

import (
	"lang/internal/ast"
	"lang/internal/diag"
	"lang/internal/token"
)

// parseType := "i32" | "bool"
func (p *Parser) parseType() (ast.TypeRef, bool) {
	tok := p.ts.Peek()
	switch tok.Kind {
	case token.KwI32:
		p.advance()
		return ast.TypeRef{Kind: ast.TypeI32, Span: tok.Span}, true
	case token.KwBool:
		p.advance()
		return ast.TypeRef{Kind: ast.TypeBool, Span: tok.Span}, true
	default:
		p.errUnexpected(diag.SynExpectType, token.KwI32, token.KwBool)
		return ast.TypeRef{Kind: ast.TypeInvalid, Span: p.diagnosticSpan()}, false
	}
}
