package lexer

import (
	"testing"

	"lang/internal/source"
)

func TestCursorBasics(t *testing.T) {
	fs := source.NewFileSet()
	c := NewCursor(fs.Get(fs.AddVirtual("c.lang", []byte("ab"))))

	if c.Peek() != 'a' {
		t.Fatalf("Peek = %q", c.Peek())
	}
	m := c.Mark()
	if b0, b1, ok := c.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if !c.Eat('a') || c.Eat('a') {
		t.Fatalf("Eat mismatch")
	}
	if _, _, ok := c.Peek2(); ok {
		t.Fatalf("Peek2 past end ok")
	}
	c.Bump()
	if !c.EOF() || c.Bump() != 0 || c.Peek() != 0 {
		t.Fatalf("EOF behaviour broken")
	}
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Fatalf("Reset: Off = %d", c.Off)
	}
}

func TestErrorDiagnostic(t *testing.T) {
	e := Error{Kind: MalformedNumericLiteral, Text: "12abc"}
	d := e.Diagnostic()
	if d.Code.ID() != "LEX1004" || d.Message != `malformed numeric literal "12abc"` {
		t.Fatalf("diagnostic = %+v", d)
	}
	if (Error{Kind: InvalidCharacter, Text: "@"}).Code().ID() != "LEX1001" {
		t.Fatalf("invalid character code mismatch")
	}
}
