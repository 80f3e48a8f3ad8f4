package symbols

import (
	"lang/internal/ast"
	"lang/internal/source"
	"lang/internal/types"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVariable
	SymbolFunction
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolFunction:
		return "function"
	default:
		return "invalid"
	}
}

// SymbolFlags encode misc attributes for quick checks.
type SymbolFlags uint8

const (
	SymbolFlagParam SymbolFlags = 1 << iota
)

// SymbolDecl focuses on the AST origin for diagnostics.
type SymbolDecl struct {
	Item ast.ItemID
	Stmt ast.StmtID
}

// Symbol describes a named entity available in a scope.
//
// Variables carry Type; functions carry Params and Result.
type Symbol struct {
	Name   source.StringID
	Kind   SymbolKind
	Flags  SymbolFlags
	Scope  ScopeID
	Span   source.Span
	Decl   SymbolDecl
	Type   types.Type
	Params []types.Type
	Result types.Type
}

// IsParam reports whether the variable was bound as a parameter.
func (s *Symbol) IsParam() bool { return s.Flags&SymbolFlagParam != 0 }
