package sema

import (
	"lang/internal/diag"
	"lang/internal/source"
)

// ErrorKind classifies semantic errors.
type ErrorKind uint8

const (
	UndeclaredVariable ErrorKind = iota + 1
	UndeclaredFunction
	Redeclaration
	TypeMismatch
	ArityMismatch
	// MissingReturn: a function with a result type has no return on any branch.
	MissingReturn
)

func (k ErrorKind) String() string {
	switch k {
	case UndeclaredVariable:
		return "UndeclaredVariable"
	case UndeclaredFunction:
		return "UndeclaredFunction"
	case Redeclaration:
		return "Redeclaration"
	case TypeMismatch:
		return "TypeMismatch"
	case ArityMismatch:
		return "ArityMismatch"
	case MissingReturn:
		return "MissingReturn"
	default:
		return "ErrorKind(?)"
	}
}

// Code maps the kind onto its diagnostic code.
func (k ErrorKind) Code() diag.Code {
	switch k {
	case UndeclaredVariable:
		return diag.SemaUnresolvedSymbol
	case UndeclaredFunction:
		return diag.SemaUnresolvedFunc
	case Redeclaration:
		return diag.SemaDuplicateSymbol
	case TypeMismatch:
		return diag.SemaTypeMismatch
	case ArityMismatch:
		return diag.SemaArityMismatch
	case MissingReturn:
		return diag.SemaMissingReturn
	default:
		return diag.SemaError
	}
}

// Error is one semantic error record.
type Error struct {
	Kind    ErrorKind
	Span    source.Span
	Message string
	Notes   []diag.Note
}

func (e Error) Error() string {
	return e.Message
}

// Diagnostic converts the record for display.
func (e Error) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     e.Kind.Code(),
		Message:  e.Message,
		Primary:  e.Span,
		Notes:    e.Notes,
	}
}
