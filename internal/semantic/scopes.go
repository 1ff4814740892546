package semantic

import (
	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/symboltable"
)

// pushScope makes id the active scope, returning the previous one so the
// caller can restore it (typically via defer a.popScope(prev)).
func (a *Analyzer) pushScope(id symboltable.ScopeID) symboltable.ScopeID {
	prev := a.scope
	a.scope = id
	return prev
}

func (a *Analyzer) popScope(prev symboltable.ScopeID) {
	a.scope = prev
}

// newChildScope allocates and records a scope range for a new child of
// a.scope, introduced by node (which may be nil).
func (a *Analyzer) newChildScope(kind symboltable.ScopeKind, node ast.Node) symboltable.ScopeID {
	id := a.symbols.NewScope(kind, a.scope, node)
	if node != nil {
		pos := node.Pos()
		a.symbols.RecordScopeRange(id, pos.Line, pos.Column)
	}
	return id
}

// declareSymbol defines sym in scope, raising a redefinition diagnostic
// if another symbol of the same name is already defined directly in
// that scope (shadowing an outer scope's symbol is fine).
func (a *Analyzer) declareSymbol(scope symboltable.ScopeID, sym *symboltable.Symbol) {
	scopeObj := a.symbols.Scope(scope)
	if scopeObj == nil {
		return
	}
	if existing, ok := scopeObj.Lookup(sym.Name); ok {
		a.diags.Errorf(sym.DeclarationLocation, len(sym.Name),
			"%q is already declared in this scope (previous declaration at %s)",
			sym.Name, existing.DeclarationLocation.String())
		return
	}
	scopeObj.Define(sym)
}

// lookupOrDeclare returns the symbol already defined for name in scope
// (from a predeclare pass), falling back to declareFn for member/local
// declarations that never went through a separate predeclare step.
func (a *Analyzer) lookupOrDeclare(scope symboltable.ScopeID, name string, declareFn func() *symboltable.Symbol) *symboltable.Symbol {
	if scopeObj := a.symbols.Scope(scope); scopeObj != nil {
		if sym, ok := scopeObj.Lookup(name); ok {
			return sym
		}
	}
	return declareFn()
}

func typeRefString(t ast.TypeRef) string {
	if t == nil {
		return ""
	}
	return t.String()
}
