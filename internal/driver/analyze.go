package driver

import (
	"context"

	"lang/internal/ast"
	"lang/internal/diag"
	"lang/internal/lexer"
	"lang/internal/observ"
	"lang/internal/parser"
	"lang/internal/sema"
	"lang/internal/source"
)

// AnalyzeResult holds every artefact of the full front-end run. Bag lists
// the diagnostics of all three stages in pipeline order, not re-sorted.
type AnalyzeResult struct {
	FileSet     *source.FileSet
	File        *source.File
	Builder     *ast.Builder
	FileID      ast.FileID
	LexErrors   []lexer.Error
	ParseErrors []parser.Error
	Sema        sema.Result
	Bag         *diag.Bag
	Timing      *observ.Report
}

// SemaErrors returns the semantic errors of the run.
func (r *AnalyzeResult) SemaErrors() []sema.Error {
	if r == nil {
		return nil
	}
	return r.Sema.Errors
}

// HasErrors reports whether any stage produced an error.
func (r *AnalyzeResult) HasErrors() bool {
	if r == nil {
		return false
	}
	return len(r.LexErrors)+len(r.ParseErrors)+len(r.Sema.Errors) > 0
}

// AnalyzeSource runs the whole pipeline over in-memory text.
func AnalyzeSource(name, src string) *AnalyzeResult {
	fs, file := virtualFile(name, src)
	res, _ := analyzeFile(context.Background(), fs, file, Options{}) //nolint:errcheck
	return res
}

// Analyze loads path and runs the whole pipeline over it.
func Analyze(ctx context.Context, path string, opts Options) (*AnalyzeResult, error) {
	fs, file, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	return analyzeFile(ctx, fs, file, opts)
}

func analyzeFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (*AnalyzeResult, error) {
	p, err := newPipeline(ctx, opts, 0)
	if err != nil {
		return nil, err
	}
	res := p.runAnalyze(fs, file)
	res.Timing = p.report()
	return res, nil
}

func (p *pipeline) runAnalyze(fs *source.FileSet, file *source.File) *AnalyzeResult {
	parsed := p.runParse(fs, file)
	checked := p.check(parsed.Builder, parsed.FileID)
	return &AnalyzeResult{
		FileSet:     fs,
		File:        file,
		Builder:     parsed.Builder,
		FileID:      parsed.FileID,
		LexErrors:   parsed.LexErrors,
		ParseErrors: parsed.ParseErrors,
		Sema:        checked,
		Bag:         p.bag,
	}
}
