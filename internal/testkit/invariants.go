// Package testkit holds structural checks shared by package tests and fuzz
// harnesses.
package testkit

import (
	"fmt"
	"sort"

	"fortio.org/safecast"

	"lang/internal/ast"
	"lang/internal/source"
	"lang/internal/token"
)

// CheckTokenCoverage verifies that tokens and their leading trivia cover
// every byte of sf exactly once.
func CheckTokenCoverage(tokens []token.Token, sf *source.File) error {
	var spans []source.Span
	for _, tok := range tokens {
		for _, tr := range tok.Leading {
			spans = append(spans, tr.Span)
		}
		if !tok.Span.Empty() {
			spans = append(spans, tok.Span)
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	var off uint32
	for _, sp := range spans {
		if sp.Start != off {
			return fmt.Errorf("gap or overlap at byte %d (span %v)", off, sp)
		}
		off = sp.End
	}
	if off != sf.Len() {
		return fmt.Errorf("covered %d of %d bytes", off, sf.Len())
	}
	return nil
}

// CheckSpanInvariants runs span invariants on a parsed file:
//  1. file.Span lies within the content and points at sf
//  2. every item span is non-empty and inside file.Span
//  3. every statement span is inside its parent's span
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End > lenContent || f.Span.Start > f.Span.End {
		return fmt.Errorf("file span %v outside content of %d bytes", f.Span, lenContent)
	}

	for _, itemID := range f.Items {
		fn, ok := b.Items.Fn(itemID)
		if !ok {
			return fmt.Errorf("item %d is not a function", itemID)
		}
		if fn.Span.Empty() {
			return fmt.Errorf("empty item span: %v", fn.Span)
		}
		if !inside(fn.Span, f.Span) {
			return fmt.Errorf("item span %v is outside file span %v", fn.Span, f.Span)
		}
		if err := checkStmt(b, fn.Body, fn.Span); err != nil {
			return fmt.Errorf("func %s: %w", b.Name(fn.Name), err)
		}
	}
	return nil
}

func checkStmt(b *ast.Builder, id ast.StmtID, parent source.Span) error {
	stmt := b.Stmts.Get(id)
	if stmt == nil {
		return fmt.Errorf("nil stmt for id=%d", id)
	}
	if !inside(stmt.Span, parent) {
		return fmt.Errorf("%s span %v is outside parent span %v", stmt.Kind, stmt.Span, parent)
	}
	var children []ast.StmtID
	switch stmt.Kind {
	case ast.StmtBlock:
		children = b.Stmts.Block(id).Stmts
	case ast.StmtIf:
		ifStmt := b.Stmts.If(id)
		children = append(children, ifStmt.Then)
		if ifStmt.Else.IsValid() {
			children = append(children, ifStmt.Else)
		}
	case ast.StmtWhile:
		children = append(children, b.Stmts.While(id).Body)
	}
	for _, child := range children {
		if err := checkStmt(b, child, stmt.Span); err != nil {
			return err
		}
	}
	return nil
}

func inside(sp, outer source.Span) bool {
	return sp.File == outer.File && sp.Start >= outer.Start && sp.End <= outer.End
}
