package parser

import (
	"lang/internal/token"
)

// tokenStream: общий курсор по токенам с просмотром на два вперёд.
// Invalid tokens of unknown characters are dropped: the lexer already
// reported them. Malformed numbers stay so the expression keeps its operand.
type tokenStream struct {
	toks []token.Token
	pos  int
}

func newTokenStream(tokens []token.Token) *tokenStream {
	kept := make([]token.Token, 0, len(tokens)+1)
	for _, tok := range tokens {
		if tok.Kind == token.Invalid && !isNumericLexeme(tok.Text) {
			continue
		}
		kept = append(kept, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	if len(kept) == 0 || kept[len(kept)-1].Kind != token.EOF {
		var eof token.Token
		eof.Kind = token.EOF
		if len(kept) > 0 {
			last := kept[len(kept)-1].Span
			eof.Span = last.ZeroideToEnd()
		}
		kept = append(kept, eof)
	}
	return &tokenStream{toks: kept}
}

// Peek returns the current token; at the end it is always EOF.
func (s *tokenStream) Peek() token.Token {
	return s.toks[s.pos]
}

// Peek2 returns the token after the current one.
func (s *tokenStream) Peek2() token.Token {
	if s.pos+1 < len(s.toks) {
		return s.toks[s.pos+1]
	}
	return s.toks[len(s.toks)-1]
}

// Next consumes the current token. EOF is never consumed.
func (s *tokenStream) Next() token.Token {
	tok := s.toks[s.pos]
	if tok.Kind != token.EOF {
		s.pos++
	}
	return tok
}

func (s *tokenStream) Pos() int {
	return s.pos
}

func isNumericLexeme(text string) bool {
	return text != "" && text[0] >= '0' && text[0] <= '9'
}
