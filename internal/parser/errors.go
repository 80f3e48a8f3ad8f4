package parser

import (
	"fmt"
	"strings"

	"lang/internal/diag"
	"lang/internal/source"
	"lang/internal/token"
)

// ErrorKind classifies syntax errors.
type ErrorKind uint8

const (
	// UnexpectedToken: the next token is not in the expected set.
	UnexpectedToken ErrorKind = iota + 1
	// UnterminatedBlock: input (or the enclosing function) ended before ']'.
	UnterminatedBlock
	// UnterminatedExpression: a '(' group or argument list was not closed.
	UnterminatedExpression
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnterminatedBlock:
		return "UnterminatedBlock"
	case UnterminatedExpression:
		return "UnterminatedExpression"
	default:
		return "ErrorKind(?)"
	}
}

// Error is a syntax error record.
type Error struct {
	Kind     ErrorKind
	Code     diag.Code
	Span     source.Span
	Expected []token.Kind
	Found    token.Token
	// Opened points at the unclosed delimiter for the Unterminated kinds.
	Opened source.Span
}

func (e Error) Message() string {
	switch e.Kind {
	case UnterminatedBlock:
		return fmt.Sprintf("unterminated block: expected ']', found %s", describeFound(e.Found))
	case UnterminatedExpression:
		return fmt.Sprintf("unterminated expression: expected ')', found %s", describeFound(e.Found))
	default:
		return fmt.Sprintf("expected %s, found %s", describeExpected(e.Expected), describeFound(e.Found))
	}
}

func (e Error) Error() string {
	return e.Message()
}

// Diagnostic converts the record for display.
func (e Error) Diagnostic() diag.Diagnostic {
	d := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     e.Code,
		Message:  e.Message(),
		Primary:  e.Span,
	}
	if e.Kind == UnterminatedBlock || e.Kind == UnterminatedExpression {
		d.Notes = []diag.Note{{Span: e.Opened, Msg: "opened here"}}
	}
	return d
}

func describeExpected(kinds []token.Kind) string {
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, "'"+k.Describe()+"'")
	}
	switch len(parts) {
	case 0:
		return "nothing"
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
	}
}

func describeFound(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident:
		return fmt.Sprintf("identifier '%s'", tok.Text)
	case token.IntLit:
		return fmt.Sprintf("integer '%s'", tok.Text)
	default:
		return "'" + tok.Text + "'"
	}
}
