package driver

import (
	"context"

	"lang/internal/diag"
	"lang/internal/lexer"
	"lang/internal/observ"
	"lang/internal/source"
	"lang/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Errors  []lexer.Error
	Bag     *diag.Bag
	Timing  *observ.Report
}

// TokenizeSource lexes in-memory text registered under name.
func TokenizeSource(name, src string) *TokenizeResult {
	fs, file := virtualFile(name, src)
	res, _ := tokenizeFile(context.Background(), fs, file, Options{}) //nolint:errcheck
	return res
}

// Tokenize loads path and lexes it.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs, file, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(ctx, fs, file, opts)
}

func tokenizeFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (*TokenizeResult, error) {
	p, err := newPipeline(ctx, opts, 0)
	if err != nil {
		return nil, err
	}
	lexed := p.lex(file)
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lexed.Tokens,
		Errors:  lexed.Errors,
		Bag:     p.bag,
		Timing:  p.report(),
	}, nil
}
