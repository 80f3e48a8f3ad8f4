package lexer

import (
	"lang/internal/source"
	"lang/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
	errs   []Error
	done   bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its Leading trivia.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		// хвостовые trivia приклеиваем к EOF, чтобы покрыть весь файл
		tok := token.Token{Kind: token.EOF, Span: lx.emptySpan()}
		if !lx.done {
			tok.Leading = lx.hold
		}
		lx.hold = nil
		lx.done = true
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token
	switch {
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch >= utf8RuneSelf:
		tok = lx.scanInvalidRune()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// Errors returns lexical errors seen so far, in source order.
func (lx *Lexer) Errors() []Error {
	return lx.errs
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

// Result is the complete output of Tokenize.
type Result struct {
	Tokens []token.Token // always ends with exactly one EOF
	Errors []Error
}

// Tokenize scans the whole file. It never stops early on errors.
func Tokenize(file *source.File, opts Options) Result {
	lx := New(file, opts)
	tokens := make([]token.Token, 0, len(file.Content)/3+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return Result{Tokens: tokens, Errors: lx.errs}
}
