package parser

import (
	"slices"
	"strconv"

	"lang/internal/ast"
	"lang/internal/diag"
	"lang/internal/lexer"
	"lang/internal/source"
	"lang/internal/token"
	"lang/internal/trace"
)

type Options struct {
	// MaxErrors caps recorded syntax errors; 0 means unlimited.
	MaxErrors uint
	Reporter  diag.Reporter
	Tracer    trace.Tracer
}

type Result struct {
	File   ast.FileID
	Errors []Error
	// LexErrors is filled only by ParseFile.
	LexErrors []lexer.Error
}

// Parser: состояние парсера на один файл
type Parser struct {
	ts       *tokenStream
	arenas   *ast.Builder
	file     ast.FileID
	opts     Options
	lastSpan source.Span // span последнего съеденного токена
	// recovered: в теле текущей функции был сбой оператора
	recovered bool
	errs     []Error
	errCount uint
}

// ParseTokens builds the Program node from an already lexed token stream.
// It always returns a file node, possibly with fewer functions than written.
func ParseTokens(tokens []token.Token, arenas *ast.Builder, opts Options) Result {
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	p := Parser{
		ts:     newTokenStream(tokens),
		arenas: arenas,
		opts:   opts,
	}
	first := p.ts.Peek().Span
	p.lastSpan = first.ZeroideToStart()
	p.file = arenas.NewFile(first)
	p.parseItems()
	return Result{File: p.file, Errors: p.errs}
}

// ParseFile tokenizes file and parses the result.
func ParseFile(file *source.File, arenas *ast.Builder, opts Options) Result {
	lexed := lexer.Tokenize(file, lexer.Options{Reporter: opts.Reporter})
	res := ParseTokens(lexed.Tokens, arenas, opts)
	res.LexErrors = lexed.Errors
	return res
}

func (p *Parser) at(k token.Kind) bool {
	return p.ts.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.ts.Peek().Kind)
}

// parseItems: основной цикл верхнего уровня, parseFnItem до EOF.
func (p *Parser) parseItems() {
	for !p.at(token.EOF) {
		if !p.at(token.KwFunc) {
			p.errUnexpected(diag.SynUnexpectedTopLevel, token.KwFunc)
			p.advance()
			p.resyncTop()
			continue
		}
		itemID, ok := p.parseFnItem()
		if itemID.IsValid() {
			p.arenas.PushItem(p.file, itemID)
		}
		if !ok {
			p.resyncTop()
		}
	}
	f := p.arenas.Files.Get(p.file)
	f.Span = f.Span.Cover(p.ts.Peek().Span)
}

// resyncTop прокручивает до следующего 'func' или EOF.
func (p *Parser) resyncTop() {
	skipped := p.resyncUntil(token.KwFunc)
	p.traceResync(skipped, "func")
}

// resyncUntil съедает токены, пока не встретит один из stop (или EOF).
// Returns the number of discarded tokens.
func (p *Parser) resyncUntil(stop ...token.Kind) int {
	n := 0
	for !p.at(token.EOF) && !p.atOr(stop...) {
		p.advance()
		n++
	}
	return n
}

func (p *Parser) traceResync(skipped int, to string) {
	if !p.opts.Tracer.Enabled() {
		return
	}
	trace.Point(p.opts.Tracer, trace.ScopeNode, "resync", "skipped "+strconv.Itoa(skipped)+" tokens to "+to, 0)
}
