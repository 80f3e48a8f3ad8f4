package parser

import (
	"lang/internal/diag"
	"lang/internal/source"
	"lang/internal/token"
)

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.ts.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagnosticSpan: лучший span для "expected X": на EOF это позиция
// сразу после последнего съеденного токена.
func (p *Parser) diagnosticSpan() source.Span {
	peek := p.ts.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return p.lastSpan.ZeroideToEnd()
	}
	return peek.Span
}

// expect: ожидаем конкретный токен. Если нет, репортим UnexpectedToken.
func (p *Parser) expect(k token.Kind, code diag.Code) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errUnexpected(code, k)
	return token.Token{Kind: token.Invalid, Span: p.diagnosticSpan()}, false
}

// errUnexpected records UnexpectedToken for the current token.
func (p *Parser) errUnexpected(code diag.Code, expected ...token.Kind) {
	p.record(Error{
		Kind:     UnexpectedToken,
		Code:     code,
		Span:     p.diagnosticSpan(),
		Expected: expected,
		Found:    p.ts.Peek(),
	})
}

// errUnterminated records an unclosed delimiter opened at opened.
func (p *Parser) errUnterminated(kind ErrorKind, opened source.Span) {
	code := diag.SynUnclosedBracket
	expected := token.RBracket
	if kind == UnterminatedExpression {
		code = diag.SynUnclosedParen
		expected = token.RParen
	}
	p.record(Error{
		Kind:     kind,
		Code:     code,
		Span:     p.diagnosticSpan(),
		Expected: []token.Kind{expected},
		Found:    p.ts.Peek(),
		Opened:   opened,
	})
}

func (p *Parser) record(e Error) {
	p.errCount++
	if p.opts.MaxErrors != 0 && p.errCount > p.opts.MaxErrors {
		return // достигли максимального количества ошибок
	}
	p.errs = append(p.errs, e)
	diag.Emit(p.opts.Reporter, e.Diagnostic())
}

// parseIdent ожидает Ident и интернирует его.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		return source.NoStringID, tok.Span, false
	}
	return p.arenas.StringsInterner.Intern(tok.Text), tok.Span, true
}
