package symboltable

import (
	"github.com/google/uuid"

	"github.com/novalang/nova/internal/ast"
)

// endLineEstimate and endByteEstimate are the generous constants used to
// approximate a scope's end location when the AST carries no real end
// position (see spec's note on end-location estimation). Downstream
// queries tolerate the resulting overlap by picking the latest-starting
// containing range.
const (
	endLineEstimate = 100
	endByteEstimate = 1000
)

// ScopeRange supports "innermost scope at position (line, column)"
// queries. ID is a stable external handle (independent of the scope
// arena's integer indices) so an LSP-style caller can cache ranges across
// incremental re-analysis without the indices shifting under it.
type ScopeRange struct {
	ID                  string
	Scope               ScopeID
	StartLine, StartCol int
	EndLine, EndCol     int
}

func (r ScopeRange) contains(line, col int) bool {
	if line < r.StartLine || line > r.EndLine {
		return false
	}
	if line == r.StartLine && col < r.StartCol {
		return false
	}
	if line == r.EndLine && col > r.EndCol {
		return false
	}
	return true
}

// SuperTypeInfo records one class's declared inheritance relation.
type SuperTypeInfo struct {
	SuperClassName string
	InterfaceNames []string
}

// SymbolTable owns every scope created during one analysis pass, the
// node-to-scope index, the position index, and the super-type registry.
type SymbolTable struct {
	scopes      []*Scope
	globalScope ScopeID
	nodeScopes  map[ast.Node]ScopeID
	ranges      []ScopeRange
	superTypes  map[string]SuperTypeInfo
}

// New creates a SymbolTable with its global scope already allocated.
func New() *SymbolTable {
	st := &SymbolTable{
		nodeScopes: make(map[ast.Node]ScopeID),
		superTypes: make(map[string]SuperTypeInfo),
	}
	st.globalScope = st.newScopeHandle(Global, NoScope, nil)
	return st
}

// GlobalScope returns the handle of the root scope.
func (st *SymbolTable) GlobalScope() ScopeID { return st.globalScope }

// Scope dereferences a handle. Returns nil if id is out of range.
func (st *SymbolTable) Scope(id ScopeID) *Scope {
	if id < 0 || int(id) >= len(st.scopes) {
		return nil
	}
	return st.scopes[id]
}

func (st *SymbolTable) newScopeHandle(kind ScopeKind, parent ScopeID, node ast.Node) ScopeID {
	id := ScopeID(len(st.scopes))
	scope := &Scope{id: id, Kind: kind, Parent: parent, AssociatedNode: node}
	st.scopes = append(st.scopes, scope)
	if parent != NoScope {
		if p := st.Scope(parent); p != nil {
			p.Children = append(p.Children, id)
		}
	}
	return id
}

// NewScope allocates a child scope of parent, introduced by node
// (may be nil for scopes with no single introducing node), and records
// the node→scope mapping when node is non-nil.
func (st *SymbolTable) NewScope(kind ScopeKind, parent ScopeID, node ast.Node) ScopeID {
	id := st.newScopeHandle(kind, parent, node)
	if node != nil {
		st.nodeScopes[node] = id
	}
	return id
}

// ScopeOf returns the scope a given AST node introduced, if any.
func (st *SymbolTable) ScopeOf(node ast.Node) (ScopeID, bool) {
	id, ok := st.nodeScopes[node]
	return id, ok
}

// RecordScopeRange registers a scope's source span, starting at
// (startLine, startCol) and estimating an end position from the
// constants above when no real end is known.
func (st *SymbolTable) RecordScopeRange(scope ScopeID, startLine, startCol int) ScopeRange {
	r := ScopeRange{
		ID:        uuid.NewString(),
		Scope:     scope,
		StartLine: startLine,
		StartCol:  startCol,
		EndLine:   startLine + endLineEstimate,
		EndCol:    startCol + endByteEstimate,
	}
	st.ranges = append(st.ranges, r)
	return r
}

// ScopeRangeAtPosition returns the innermost ScopeRange containing
// (line, col): among every containing range, the one whose start is
// latest. The returned range's ID is the stable handle an LSP-style caller
// uses to cache results across incremental re-analysis.
func (st *SymbolTable) ScopeRangeAtPosition(line, col int) (ScopeRange, bool) {
	best := -1
	for i, r := range st.ranges {
		if !r.contains(line, col) {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		cur := st.ranges[best]
		if r.StartLine > cur.StartLine || (r.StartLine == cur.StartLine && r.StartCol > cur.StartCol) {
			best = i
		}
	}
	if best == -1 {
		return ScopeRange{}, false
	}
	return st.ranges[best], true
}

// GetScopeAtPosition returns the innermost scope containing (line, col).
func (st *SymbolTable) GetScopeAtPosition(line, col int) (ScopeID, bool) {
	r, ok := st.ScopeRangeAtPosition(line, col)
	if !ok {
		return NoScope, false
	}
	return r.Scope, true
}

// Resolve walks the parent chain starting at scope, returning the first
// symbol named name it finds.
func (st *SymbolTable) Resolve(scope ScopeID, name string) (*Symbol, bool) {
	for s := st.Scope(scope); s != nil; s = st.Scope(s.Parent) {
		if sym, ok := s.Lookup(name); ok {
			return sym, true
		}
	}
	return nil, false
}

// ResolveAt resolves name starting from the innermost scope at
// (line, col).
func (st *SymbolTable) ResolveAt(line, col int, name string) (*Symbol, bool) {
	scope, ok := st.GetScopeAtPosition(line, col)
	if !ok {
		scope = st.globalScope
	}
	return st.Resolve(scope, name)
}

// GetVisibleSymbols returns every symbol visible at (line, col): every
// local symbol of every scope on the parent chain from the innermost
// scope at that position up to the global scope, innermost first.
func (st *SymbolTable) GetVisibleSymbols(line, col int) []*Symbol {
	scope, ok := st.GetScopeAtPosition(line, col)
	if !ok {
		scope = st.globalScope
	}
	var out []*Symbol
	for s := st.Scope(scope); s != nil; s = st.Scope(s.Parent) {
		out = append(out, s.Symbols()...)
	}
	return out
}

// GetAllSymbolsOfKind scans every scope in the arena and returns every
// symbol whose Kind is one of kinds.
func (st *SymbolTable) GetAllSymbolsOfKind(kinds ...SymbolKind) []*Symbol {
	want := make(map[SymbolKind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var out []*Symbol
	for _, s := range st.scopes {
		for _, sym := range s.Symbols() {
			if want[sym.Kind] {
				out = append(out, sym)
			}
		}
	}
	return out
}

// RegisterSuperType records className's declared inheritance relation.
func (st *SymbolTable) RegisterSuperType(className string, info SuperTypeInfo) {
	st.superTypes[className] = info
}

// SuperTypeOf returns the recorded inheritance relation for className.
func (st *SymbolTable) SuperTypeOf(className string) (SuperTypeInfo, bool) {
	info, ok := st.superTypes[className]
	return info, ok
}

// IsSubtype reports whether super is sub itself, sub's superclass
// (transitively), or one of sub's interfaces (transitively), as recorded
// by RegisterSuperType. Cycle-safe: a class that (incorrectly) appears in its
// own ancestry is treated as not-a-subtype of itself beyond the direct
// match, rather than looping forever.
func (st *SymbolTable) IsSubtype(sub, super string) bool {
	return st.isSubtype(sub, super, make(map[string]bool))
}

func (st *SymbolTable) isSubtype(sub, super string, visited map[string]bool) bool {
	if sub == super {
		return true
	}
	if visited[sub] {
		return false
	}
	visited[sub] = true

	info, ok := st.superTypes[sub]
	if !ok {
		return false
	}
	if info.SuperClassName != "" && st.isSubtype(info.SuperClassName, super, visited) {
		return true
	}
	for _, iface := range info.InterfaceNames {
		if st.isSubtype(iface, super, visited) {
			return true
		}
	}
	return false
}
