package driver

import (
	"context"

	"lang/internal/ast"
	"lang/internal/diag"
	"lang/internal/lexer"
	"lang/internal/observ"
	"lang/internal/parser"
	"lang/internal/source"
)

type ParseResult struct {
	FileSet     *source.FileSet
	File        *source.File
	Builder     *ast.Builder
	FileID      ast.FileID
	LexErrors   []lexer.Error
	ParseErrors []parser.Error
	Bag         *diag.Bag
	Timing      *observ.Report
}

// ParseSource lexes and parses in-memory text registered under name.
func ParseSource(name, src string) *ParseResult {
	fs, file := virtualFile(name, src)
	res, _ := parseFile(context.Background(), fs, file, Options{}) //nolint:errcheck
	return res
}

// Parse loads path, lexes and parses it.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs, file, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	return parseFile(ctx, fs, file, opts)
}

func parseFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (*ParseResult, error) {
	p, err := newPipeline(ctx, opts, 0)
	if err != nil {
		return nil, err
	}
	res := p.runParse(fs, file)
	res.Timing = p.report()
	return res, nil
}

func (p *pipeline) runParse(fs *source.FileSet, file *source.File) *ParseResult {
	lexed := p.lex(file)
	builder := ast.NewBuilder(ast.Hints{}, nil)
	parsed := p.parse(lexed.Tokens, builder)
	return &ParseResult{
		FileSet:     fs,
		File:        file,
		Builder:     builder,
		FileID:      parsed.File,
		LexErrors:   lexed.Errors,
		ParseErrors: parsed.Errors,
		Bag:         p.bag,
	}
}
