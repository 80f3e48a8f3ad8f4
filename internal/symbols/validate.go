package symbols

import (
	"errors"
	"fmt"
	"slices"
)

// Validate walks internal arenas checking structural invariants. Returns nil if
// everything is consistent; otherwise aggregates all detected issues.
func (t *Table) Validate() error {
	var errs []error

	for idx := 1; idx < len(t.Scopes.data); idx++ {
		scopeID, err := toScopeID(idx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scope := t.Scopes.data[idx]
		if scope.Kind == ScopeInvalid {
			errs = append(errs, fmt.Errorf("scope %d has invalid kind", scopeID))
		}
		if scope.Kind == ScopeGlobal && scope.Parent.IsValid() {
			errs = append(errs, fmt.Errorf("global scope %d has a parent", scopeID))
		}
		if scope.Parent.IsValid() {
			parent := t.Scopes.Get(scope.Parent)
			if parent == nil || scope.Parent == scopeID {
				errs = append(errs, fmt.Errorf("scope %d has invalid parent %d", scopeID, scope.Parent))
			} else if !slices.Contains(parent.Children, scopeID) {
				errs = append(errs, fmt.Errorf("scope %d parent %d missing backlink", scopeID, scope.Parent))
			}
		}
		for name, symID := range scope.Names {
			sym := t.Symbols.Get(symID)
			switch {
			case sym == nil:
				errs = append(errs, fmt.Errorf("scope %d maps name %d to missing symbol %d", scopeID, name, symID))
			case sym.Scope != scopeID:
				errs = append(errs, fmt.Errorf("symbol %d indexed in scope %d but owned by %d", symID, scopeID, sym.Scope))
			case sym.Kind == SymbolFunction && scope.Kind != ScopeGlobal:
				errs = append(errs, fmt.Errorf("function symbol %d outside the global scope", symID))
			}
		}
	}

	return errors.Join(errs...)
}
