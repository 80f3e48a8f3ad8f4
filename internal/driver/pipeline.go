package driver

import (
	"context"
	"fmt"

	"fortio.org/safecast"

	"lang/internal/ast"
	"lang/internal/diag"
	"lang/internal/lexer"
	"lang/internal/observ"
	"lang/internal/parser"
	"lang/internal/sema"
	"lang/internal/source"
	"lang/internal/token"
	"lang/internal/trace"
)

// Options tune a single-file run.
type Options struct {
	// MaxDiagnostics caps the bag and the parser error count; 0 means unlimited.
	MaxDiagnostics int
	// EnableTimings fills the Timing report of the result.
	EnableTimings bool
}

// pipeline runs the stages for one file. Diagnostics land in bag in stage
// order: lexical, then syntax, then semantic.
type pipeline struct {
	tracer   trace.Tracer
	parent   uint64
	timer    *observ.Timer
	bag      *diag.Bag
	reporter diag.Reporter
	sink     ProgressSink
	display  string
	maxErrs  uint
}

func newPipeline(ctx context.Context, opts Options, parent uint64) (*pipeline, error) {
	maxErrs, err := safecast.Conv[uint](max(opts.MaxDiagnostics, 0))
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	p := &pipeline{
		tracer:   trace.FromContext(ctx),
		parent:   parent,
		bag:      bag,
		reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
		maxErrs:  maxErrs,
	}
	if opts.EnableTimings {
		p.timer = observ.NewTimer()
	}
	return p, nil
}

// stage wraps fn in a pass span, a timer phase and progress events.
// fn returns the note attached to the phase.
func (p *pipeline) stage(st Stage, fn func() string) {
	span := trace.Begin(p.tracer, trace.ScopePass, string(st), p.parent)
	endPhase := p.timer.Track(string(st))
	emit(p.sink, Event{File: p.display, Stage: st, Status: StatusWorking})

	note := fn()

	endPhase(note)
	span.End(note)
}

func (p *pipeline) lex(file *source.File) lexer.Result {
	var res lexer.Result
	p.stage(StageLex, func() string {
		res = lexer.Tokenize(file, lexer.Options{Reporter: p.reporter})
		return fmt.Sprintf("tokens=%d errors=%d", len(res.Tokens), len(res.Errors))
	})
	return res
}

func (p *pipeline) parse(tokens []token.Token, builder *ast.Builder) parser.Result {
	var res parser.Result
	p.stage(StageParse, func() string {
		res = parser.ParseTokens(tokens, builder, parser.Options{
			MaxErrors: p.maxErrs,
			Reporter:  p.reporter,
			Tracer:    p.tracer,
		})
		items := 0
		if file := builder.Files.Get(res.File); file != nil {
			items = len(file.Items)
		}
		return fmt.Sprintf("items=%d errors=%d", items, len(res.Errors))
	})
	return res
}

func (p *pipeline) check(builder *ast.Builder, fileID ast.FileID) sema.Result {
	var res sema.Result
	p.stage(StageSema, func() string {
		res = sema.Check(builder, fileID, sema.Options{Reporter: p.reporter})
		return fmt.Sprintf("errors=%d", len(res.Errors))
	})
	return res
}

func (p *pipeline) report() *observ.Report {
	if p.timer == nil {
		return nil
	}
	r := p.timer.Report()
	return &r
}

// loadFile reads path into a fresh file set.
func loadFile(path string) (*source.FileSet, *source.File, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return fs, fs.Get(fileID), nil
}

func virtualFile(name, src string) (*source.FileSet, *source.File) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(src))
	return fs, fs.Get(fileID)
}
