package typeresolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/types"
)

func simple(name string) *ast.SimpleType {
	return &ast.SimpleType{QualifiedName: []string{name}}
}

func TestResolveNilIsNoType(t *testing.T) {
	r := New()
	assert.Nil(t, r.Resolve(nil))
}

func TestResolvePrimitive(t *testing.T) {
	r := New()
	resolved := r.Resolve(simple("Int"))
	assert.Equal(t, types.Primitive{Name: "Int"}, resolved)
}

func TestResolveSentinels(t *testing.T) {
	r := New()
	assert.Equal(t, types.Unit{}, r.Resolve(simple("Unit")))
	assert.Equal(t, types.Nothing{}, r.Resolve(simple("Nothing")))
	assert.Equal(t, types.Any(), r.Resolve(simple("Any")))
}

func TestResolveUnknownNameBecomesPlaceholderClass(t *testing.T) {
	r := New()
	resolved := r.Resolve(simple("Widget"))
	assert.Equal(t, types.Class{Name: "Widget"}, resolved)
}

func TestResolveNullable(t *testing.T) {
	r := New()
	resolved := r.Resolve(&ast.NullableType{Inner: simple("String")})
	require.True(t, resolved.IsNullable())
	assert.Equal(t, "String?", resolved.String())
}

func TestResolveTypeParameter(t *testing.T) {
	r := New()
	r.EnterTypeParams([]*ast.TypeParameter{{Name: "T"}})
	defer r.ExitTypeParams()

	resolved := r.Resolve(simple("T"))
	tp, ok := resolved.(types.TypeParameter)
	require.True(t, ok)
	assert.Equal(t, "T", tp.Name)
	assert.Equal(t, types.Any(), tp.UpperBound)
}

func TestResolveTypeParameterShadowing(t *testing.T) {
	r := New()
	r.EnterTypeParams([]*ast.TypeParameter{{Name: "T"}})
	r.EnterTypeParams([]*ast.TypeParameter{{Name: "T", UpperBound: simple("Comparable")}})

	resolved := r.Resolve(simple("T")).(types.TypeParameter)
	assert.Equal(t, types.Class{Name: "Comparable"}, resolved.UpperBound)

	r.ExitTypeParams()
	resolved = r.Resolve(simple("T")).(types.TypeParameter)
	assert.Equal(t, types.Any(), resolved.UpperBound)
}

func TestResolveGeneric(t *testing.T) {
	r := New()
	ref := &ast.GenericType{
		QualifiedName: []string{"List"},
		TypeArgs: []*ast.TypeArgument{
			{Variance: ast.Out, Type: simple("String")},
		},
	}
	resolved := r.Resolve(ref).(types.Class)
	assert.Equal(t, "List", resolved.Name)
	require.Len(t, resolved.TypeArgs, 1)
	assert.Equal(t, types.Out, resolved.TypeArgs[0].Variance)
	assert.Equal(t, types.StringT(), resolved.TypeArgs[0].Type)
}

func TestResolveFunctionTypeDefaultsReturnToUnit(t *testing.T) {
	r := New()
	ref := &ast.FunctionType{ParamTypes: []ast.TypeRef{simple("Int")}}
	resolved := r.Resolve(ref).(types.Function)
	assert.Equal(t, types.Unit{}, resolved.ReturnType)
	assert.Len(t, resolved.ParamTypes, 1)
}

func TestRegisterAndLookupTypeDeclaration(t *testing.T) {
	r := New()
	params := []*ast.TypeParameter{{Name: "T"}}
	r.RegisterTypeDeclaration("Box", params)
	assert.Equal(t, params, r.TypeParamsOf("Box"))
	assert.Nil(t, r.TypeParamsOf("Unknown"))
}
