package ast

import "lang/internal/source"

type TypeRefKind uint8

const (
	// TypeInvalid is left when the type annotation could not be parsed.
	TypeInvalid TypeRefKind = iota
	TypeI32
	TypeBool
)

func (k TypeRefKind) String() string {
	switch k {
	case TypeI32:
		return "i32"
	case TypeBool:
		return "bool"
	default:
		return "<invalid>"
	}
}

// TypeRef is a type annotation as written.
type TypeRef struct {
	Kind TypeRefKind
	Span source.Span
}
