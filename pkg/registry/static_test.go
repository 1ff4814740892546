package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticRegistryRoundTrip(t *testing.T) {
	reg := NewStatic().
		AddFunction("println", "Unit").
		AddConstant("PI", "Double").
		AddMethod("String", MethodSig{Name: "length", ReturnType: "Int"})

	assert.Equal(t, []FunctionSig{{Name: "println", ReturnType: "Unit"}}, reg.GetBuiltinFunctions())
	assert.Equal(t, []ConstantSig{{Name: "PI", Type: "Double"}}, reg.GetBuiltinConstants())
	assert.Len(t, reg.GetMethodsForType("String"), 1)
	assert.Empty(t, reg.GetMethodsForType("Unknown"))
}

func TestLoadYAML(t *testing.T) {
	data := []byte(`
functions:
  - name: println
    returns: Unit
constants:
  - name: PI
    type: Double
methods:
  String:
    - name: length
      returns: Int
      static: false
  List:
    - name: of
      returns: List
      params: ["Any"]
      static: true
`)
	reg, err := LoadYAML(data)
	assert.NoError(t, err)
	assert.Equal(t, []FunctionSig{{Name: "println", ReturnType: "Unit"}}, reg.GetBuiltinFunctions())
	assert.Equal(t, []ConstantSig{{Name: "PI", Type: "Double"}}, reg.GetBuiltinConstants())

	methods := reg.GetMethodsForType("List")
	assert.Len(t, methods, 1)
	assert.True(t, methods[0].Static)
	assert.Equal(t, []string{"Any"}, methods[0].ParamTypes)
}

func TestLoadYAMLInvalid(t *testing.T) {
	_, err := LoadYAML([]byte("not: [valid"))
	assert.Error(t, err)
}
