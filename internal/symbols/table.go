package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"lang/internal/source"
)

// Hints provide optional capacity suggestions for the symbol table arenas.
type Hints struct{ Scopes, Symbols uint }

// Table aggregates the arenas and the current scope stack. The global
// scope is created up front and is never popped.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Strings *source.Interner
	global  ScopeID
	stack   []ScopeID
}

// NewTable builds a fresh table with optional capacity hints.
// If strings is nil, a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	t := &Table{
		Scopes:  NewScopes(scopeCap),
		Symbols: NewSymbols(symCap),
		Strings: strings,
	}
	t.global = t.Scopes.New(ScopeGlobal, NoScopeID, source.Span{})
	t.stack = append(t.stack, t.global)
	return t
}

// Global returns the root scope.
func (t *Table) Global() ScopeID { return t.global }

// Current returns the innermost scope.
func (t *Table) Current() ScopeID { return t.stack[len(t.stack)-1] }

// Depth reports the number of open scopes including the global one.
func (t *Table) Depth() int { return len(t.stack) }

// Push opens a nested scope under the current one.
func (t *Table) Push(kind ScopeKind, span source.Span) ScopeID {
	id := t.Scopes.New(kind, t.Current(), span)
	t.stack = append(t.stack, id)
	return id
}

// Pop closes the innermost scope. The global scope stays.
func (t *Table) Pop() {
	if len(t.stack) > 1 {
		t.stack = t.stack[:len(t.stack)-1]
	}
}

// Declare binds sym in the current scope. When the name is already taken in
// that same scope nothing is bound and prev is the earlier symbol.
func (t *Table) Declare(sym Symbol) (id, prev SymbolID, ok bool) {
	scopeID := t.Current()
	scope := t.Scopes.Get(scopeID)
	if existing, found := scope.Names[sym.Name]; found {
		return NoSymbolID, existing, false
	}
	sym.Scope = scopeID
	id = t.Symbols.New(&sym)
	scope.Names[sym.Name] = id
	scope.Symbols = append(scope.Symbols, id)
	return id, NoSymbolID, true
}

// Lookup finds name from the innermost scope outwards.
func (t *Table) Lookup(name source.StringID) (SymbolID, bool) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if id, ok := t.Scopes.Get(t.stack[i]).Names[name]; ok {
			return id, true
		}
	}
	return NoSymbolID, false
}

// LookupVariable is Lookup restricted to variables.
func (t *Table) LookupVariable(name source.StringID) (SymbolID, bool) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		id, ok := t.Scopes.Get(t.stack[i]).Names[name]
		if ok && t.Symbols.Get(id).Kind == SymbolVariable {
			return id, true
		}
	}
	return NoSymbolID, false
}

// LookupFunction searches only the global scope.
func (t *Table) LookupFunction(name source.StringID) (SymbolID, bool) {
	id, ok := t.Scopes.Get(t.global).Names[name]
	if !ok || t.Symbols.Get(id).Kind != SymbolFunction {
		return NoSymbolID, false
	}
	return id, true
}

// Get returns a symbol by ID.
func (t *Table) Get(id SymbolID) *Symbol {
	return t.Symbols.Get(id)
}
