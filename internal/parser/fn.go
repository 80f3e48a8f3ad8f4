package parser

import (
	"lang/internal/ast"
	"lang/internal/diag"
	"lang/internal/token"
)

// parseFnItem := "func" IDENT "(" params? ")" "->" type block
//
// A broken header drops the whole function (NoItemID, false). Once the body
// starts the item is kept even if the body is incomplete.
func (p *Parser) parseFnItem() (ast.ItemID, bool) {
	fnTok := p.advance() // func

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.LParen, diag.SynUnexpectedToken); !ok {
		return ast.NoItemID, false
	}
	params, ok := p.parseFnParams()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.RParen, diag.SynUnexpectedToken); !ok {
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.Arrow, diag.SynUnexpectedToken); !ok {
		return ast.NoItemID, false
	}
	ret, ok := p.parseType()
	if !ok {
		return ast.NoItemID, false
	}

	p.recovered = false
	body, ok := p.parseBlock()
	if !body.IsValid() {
		return ast.NoItemID, false
	}
	id := p.arenas.Items.NewFn(ast.FnItem{
		Name:       name,
		NameSpan:   nameSpan,
		Params:     params,
		ReturnType: ret,
		Body:       body,
		Span:       fnTok.Span.Cover(p.lastSpan),
		Recovered:  p.recovered || !ok,
	})
	return id, ok
}

// parseFnParams := (param ("," param)*)?   param := IDENT ":" type
func (p *Parser) parseFnParams() ([]ast.FnParamID, bool) {
	var params []ast.FnParamID
	if p.at(token.RParen) {
		return params, true
	}
	for {
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		if _, ok = p.expect(token.Colon, diag.SynExpectColon); !ok {
			return nil, false
		}
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		params = append(params, p.arenas.Items.NewFnParam(name, typ, nameSpan.Cover(typ.Span)))
		if !p.at(token.Comma) {
			return params, true
		}
		p.advance()
	}
}
