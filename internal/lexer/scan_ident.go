package lexer

import (
	"lang/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword сканирует [A-Za-z_][A-Za-z0-9_]* и проверяет через LookupKeyword.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanInvalidRune consumes one whole UTF-8 sequence (or one broken byte)
// and reports it. Identifiers are ASCII only.
func (lx *Lexer) scanInvalidRune() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(InvalidCharacter, sp)
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
