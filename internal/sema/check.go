package sema

import (
	"fmt"

	"lang/internal/ast"
	"lang/internal/diag"
	"lang/internal/source"
	"lang/internal/symbols"
	"lang/internal/types"
)

// Options configure a semantic pass over a file.
type Options struct {
	Reporter diag.Reporter
}

// Result stores semantic artefacts produced by the checker.
type Result struct {
	Errors    []Error
	ExprTypes map[ast.ExprID]types.Type
	// Functions maps names to their (first) declaration.
	Functions map[string]symbols.SymbolID
	Symbols   *symbols.Table
}

// Check runs the declaration pass and then the body pass over every
// function. Errors accumulate; nothing stops the walk early.
func Check(builder *ast.Builder, fileID ast.FileID, opts Options) Result {
	res := Result{
		ExprTypes: make(map[ast.ExprID]types.Type),
		Functions: make(map[string]symbols.SymbolID),
	}
	if builder == nil || fileID == ast.NoFileID {
		return res
	}
	res.Symbols = symbols.NewTable(symbols.Hints{}, builder.StringsInterner)

	checker := typeChecker{
		builder:  builder,
		fileID:   fileID,
		reporter: opts.Reporter,
		table:    res.Symbols,
		result:   &res,
	}
	checker.run()
	return res
}

type typeChecker struct {
	builder  *ast.Builder
	fileID   ast.FileID
	reporter diag.Reporter
	table    *symbols.Table
	result   *Result

	// fnResult is the declared result of the function being walked.
	fnResult types.Type
}

func (tc *typeChecker) run() {
	file := tc.builder.Files.Get(tc.fileID)
	if file == nil {
		return
	}
	fns := make([]*ast.FnItem, 0, len(file.Items))
	for _, itemID := range file.Items {
		if fn, ok := tc.builder.Items.Fn(itemID); ok {
			fns = append(fns, fn)
			tc.declareFn(itemID, fn)
		}
	}
	for _, fn := range fns {
		tc.checkFn(fn)
	}
}

func (tc *typeChecker) report(kind ErrorKind, span source.Span, format string, args ...any) *Error {
	tc.result.Errors = append(tc.result.Errors, Error{
		Kind:    kind,
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	})
	return &tc.result.Errors[len(tc.result.Errors)-1]
}

// emit forwards the record once its notes are attached.
func (tc *typeChecker) emit(e *Error) {
	diag.Emit(tc.reporter, e.Diagnostic())
}

func (tc *typeChecker) fail(kind ErrorKind, span source.Span, format string, args ...any) {
	tc.emit(tc.report(kind, span, format, args...))
}

func (tc *typeChecker) failWithNote(kind ErrorKind, span, noteSpan source.Span, note, format string, args ...any) {
	e := tc.report(kind, span, format, args...)
	e.Notes = append(e.Notes, diag.Note{Span: noteSpan, Msg: note})
	tc.emit(e)
}

func (tc *typeChecker) name(id source.StringID) string {
	return tc.builder.Name(id)
}

func (tc *typeChecker) exprSpan(id ast.ExprID) source.Span {
	if e := tc.builder.Exprs.Get(id); e != nil {
		return e.Span
	}
	return source.Span{}
}
