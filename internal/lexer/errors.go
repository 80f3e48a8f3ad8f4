package lexer

import (
	"fmt"

	"lang/internal/diag"
	"lang/internal/source"
)

// ErrorKind classifies lexical errors.
type ErrorKind uint8

const (
	// InvalidCharacter is a character that starts no token.
	InvalidCharacter ErrorKind = iota + 1
	// MalformedNumericLiteral is a digit run that is not a valid i32.
	MalformedNumericLiteral
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case MalformedNumericLiteral:
		return "MalformedNumericLiteral"
	default:
		return "ErrorKind(?)"
	}
}

// Error is a lexical error record. Scanning always continues after one.
type Error struct {
	Kind ErrorKind
	Span source.Span
	Text string // offending lexeme
}

func (e Error) Code() diag.Code {
	if e.Kind == MalformedNumericLiteral {
		return diag.LexBadNumber
	}
	return diag.LexUnknownChar
}

func (e Error) Message() string {
	switch e.Kind {
	case MalformedNumericLiteral:
		return fmt.Sprintf("malformed numeric literal %q", e.Text)
	default:
		return fmt.Sprintf("invalid character %q", e.Text)
	}
}

func (e Error) Error() string {
	return e.Message()
}

// Diagnostic converts the record for display.
func (e Error) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     e.Code(),
		Message:  e.Message(),
		Primary:  e.Span,
	}
}

func (lx *Lexer) errLex(kind ErrorKind, sp source.Span) {
	e := Error{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	lx.errs = append(lx.errs, e)
	diag.Emit(lx.opts.Reporter, e.Diagnostic())
}
