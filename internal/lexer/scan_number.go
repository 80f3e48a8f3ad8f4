package lexer

import (
	"strconv"

	"lang/internal/token"
)

// scanNumber читает максимальную серию цифр. Хвост из буквенных символов
// (12abc) и значения вне i32 дают MalformedNumericLiteral.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	malformed := false
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
		malformed = true
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if !malformed {
		if _, err := strconv.ParseInt(text, 10, 32); err != nil {
			malformed = true
		}
	}
	if malformed {
		lx.errLex(MalformedNumericLiteral, sp)
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: token.IntLit, Span: sp, Text: text}
}
