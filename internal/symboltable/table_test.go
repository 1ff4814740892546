package symboltable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novalang/nova/internal/token"
)

func TestNewTableHasGlobalScope(t *testing.T) {
	st := New()
	assert.Equal(t, ScopeID(0), st.GlobalScope())
	require.NotNil(t, st.Scope(st.GlobalScope()))
}

func TestDefineAndResolveWalksParentChain(t *testing.T) {
	st := New()
	global := st.Scope(st.GlobalScope())
	global.Define(&Symbol{Name: "x", Kind: Variable})

	child := st.NewScope(BlockScope, st.GlobalScope(), nil)

	sym, ok := st.Resolve(child, "x")
	require.True(t, ok)
	assert.Equal(t, "x", sym.Name)

	_, ok = st.Resolve(child, "nope")
	assert.False(t, ok)
}

func TestScopeOfNode(t *testing.T) {
	st := New()
	node := &fakeNode{}
	id := st.NewScope(FunctionScope, st.GlobalScope(), node)

	got, ok := st.ScopeOf(node)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestGetScopeAtPositionPicksLatestStarting(t *testing.T) {
	st := New()
	outer := st.NewScope(FunctionScope, st.GlobalScope(), nil)
	inner := st.NewScope(BlockScope, outer, nil)

	st.RecordScopeRange(outer, 1, 1)
	st.RecordScopeRange(inner, 5, 1)

	got, ok := st.GetScopeAtPosition(6, 1)
	require.True(t, ok)
	assert.Equal(t, inner, got)

	got, ok = st.GetScopeAtPosition(2, 1)
	require.True(t, ok)
	assert.Equal(t, outer, got)
}

func TestScopeRangeAtPositionReturnsStableID(t *testing.T) {
	st := New()
	outer := st.NewScope(FunctionScope, st.GlobalScope(), nil)
	inner := st.NewScope(BlockScope, outer, nil)

	st.RecordScopeRange(outer, 1, 1)
	recorded := st.RecordScopeRange(inner, 5, 1)
	require.NotEmpty(t, recorded.ID)

	got, ok := st.ScopeRangeAtPosition(6, 1)
	require.True(t, ok)
	assert.Equal(t, recorded.ID, got.ID)
	assert.Equal(t, inner, got.Scope)
}

func TestGetVisibleSymbolsIncludesAncestors(t *testing.T) {
	st := New()
	st.Scope(st.GlobalScope()).Define(&Symbol{Name: "g", Kind: Variable})

	fn := st.NewScope(FunctionScope, st.GlobalScope(), nil)
	st.Scope(fn).Define(&Symbol{Name: "p", Kind: Parameter})
	st.RecordScopeRange(fn, 1, 1)

	visible := st.GetVisibleSymbols(1, 1)
	names := map[string]bool{}
	for _, s := range visible {
		names[s.Name] = true
	}
	assert.True(t, names["g"])
	assert.True(t, names["p"])
}

func TestGetAllSymbolsOfKind(t *testing.T) {
	st := New()
	st.Scope(st.GlobalScope()).Define(&Symbol{Name: "Foo", Kind: ClassSym})
	fn := st.NewScope(FunctionScope, st.GlobalScope(), nil)
	st.Scope(fn).Define(&Symbol{Name: "bar", Kind: Function})

	classes := st.GetAllSymbolsOfKind(ClassSym)
	require.Len(t, classes, 1)
	assert.Equal(t, "Foo", classes[0].Name)
}

func TestSuperTypeRegistryTransitiveSubtype(t *testing.T) {
	st := New()
	st.RegisterSuperType("Cat", SuperTypeInfo{SuperClassName: "Animal", InterfaceNames: []string{"Pettable"}})
	st.RegisterSuperType("Animal", SuperTypeInfo{SuperClassName: "Any"})

	assert.True(t, st.IsSubtype("Cat", "Animal"))
	assert.True(t, st.IsSubtype("Cat", "Any"))
	assert.True(t, st.IsSubtype("Cat", "Pettable"))
	assert.True(t, st.IsSubtype("Cat", "Cat"))
	assert.False(t, st.IsSubtype("Cat", "Dog"))
}

func TestSuperTypeRegistryCycleSafe(t *testing.T) {
	st := New()
	st.RegisterSuperType("A", SuperTypeInfo{SuperClassName: "B"})
	st.RegisterSuperType("B", SuperTypeInfo{SuperClassName: "A"})

	assert.False(t, st.IsSubtype("A", "C"))
}

func TestSymbolMembers(t *testing.T) {
	sym := &Symbol{Name: "Foo", Kind: ClassSym}
	sym.AddMember(&Symbol{Name: "bar", Kind: Property})
	sym.AddMember(&Symbol{Name: "baz", Kind: Function})

	members := sym.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "bar", members[0].Name)
	assert.Equal(t, "baz", members[1].Name)

	m, ok := sym.Member("bar")
	require.True(t, ok)
	assert.Equal(t, Property, m.Kind)
}

type fakeNode struct{}

func (f *fakeNode) TokenLiteral() string   { return "" }
func (f *fakeNode) String() string         { return "" }
func (f *fakeNode) Pos() token.Position    { return token.Position{} }
