package symbols

import (
	"lang/internal/source"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeGlobal             // functions of the program
	ScopeFunction           // parameters plus the top level of a body
	ScopeBlock              // if/else/while bodies and nested blocks
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// Scope is one level of the lexical stack: a name→symbol mapping.
type Scope struct {
	Kind     ScopeKind
	Parent   ScopeID
	Span     source.Span
	Names    map[source.StringID]SymbolID
	Symbols  []SymbolID // declaration order
	Children []ScopeID
}
