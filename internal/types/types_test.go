package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimitiveString(t *testing.T) {
	assert.Equal(t, "Int", Int().String())
	assert.Equal(t, "Int?", Int().WithNullable(true).String())
}

func TestClassWithTypeArgs(t *testing.T) {
	c := Class{Name: "List", TypeArgs: []TypeArgument{{Type: StringT()}}}
	assert.Equal(t, "List<String>", c.String())

	cov := Class{Name: "List", TypeArgs: []TypeArgument{{Variance: Out, Type: StringT()}}}
	assert.Equal(t, "List<out String>", cov.String())

	wild := Class{Name: "List", TypeArgs: []TypeArgument{{IsWildcard: true}}}
	assert.Equal(t, "List<*>", wild.String())
}

func TestNothingNullability(t *testing.T) {
	n := Nothing{}
	assert.False(t, n.IsNullable())
	assert.Equal(t, "Nothing", n.String())

	nn := n.WithNullable(true)
	assert.True(t, nn.IsNullable())
	assert.Equal(t, "Nothing?", nn.String())
}

func TestErrorIsAlwaysNullable(t *testing.T) {
	var e Type = Error{}
	assert.True(t, e.IsNullable())
	assert.Equal(t, e, e.WithNullable(false))
}

func TestWidenNumeric(t *testing.T) {
	assert.Equal(t, "Long", WidenNumeric("Int", "Long"))
	assert.Equal(t, "Double", WidenNumeric("Float", "Double"))
	assert.Equal(t, "Int", WidenNumeric("Int", "Int"))
}

func TestIsPrimitiveName(t *testing.T) {
	assert.True(t, IsPrimitiveName("Int"))
	assert.False(t, IsPrimitiveName("List"))
}

func TestFunctionTypeString(t *testing.T) {
	f := Function{ParamTypes: []Type{Int(), StringT()}, ReturnType: Boolean()}
	assert.Equal(t, "(Int, String) -> Boolean", f.String())

	withReceiver := Function{Receiver: StringT(), ParamTypes: nil, ReturnType: nil}
	assert.Equal(t, "String.() -> Unit", withReceiver.String())
}
