package types

import (
	"fmt"

	"lang/internal/ast"
)

// Type is the closed set of value types of the language.
type Type uint8

const (
	// Error marks an ill-typed expression. Checks against it are skipped so
	// one mistake is reported once.
	Error Type = iota
	Unit
	Bool
	Int
)

func (t Type) String() string {
	switch t {
	case Error:
		return "<error>"
	case Unit:
		return "unit"
	case Bool:
		return "bool"
	case Int:
		return "i32"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// IsError reports whether t is the error placeholder.
func (t Type) IsError() bool { return t == Error }

// Family returns the operator family of t.
func (t Type) Family() FamilyMask {
	switch t {
	case Bool:
		return FamilyBool
	case Int:
		return FamilyInt
	case Unit:
		return FamilyUnit
	default:
		return FamilyNone
	}
}

// FromTypeRef maps a written annotation to its type; unparsed annotations become Error.
func FromTypeRef(ref ast.TypeRef) Type {
	switch ref.Kind {
	case ast.TypeI32:
		return Int
	case ast.TypeBool:
		return Bool
	default:
		return Error
	}
}

// Label renders a list of types like a parameter list: "(i32, bool)".
func Label(ts []Type) string {
	out := "("
	for i, t := range ts {
		if i > 0 {
			out += ", "
		}
		out += t.String()
	}
	return out + ")"
}
