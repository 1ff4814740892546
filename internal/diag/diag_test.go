package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novalang/nova/internal/token"
)

func TestBagAccumulatesInOrder(t *testing.T) {
	var b Bag
	b.Errorf(token.Position{Line: 1, Column: 1}, 3, "redefinition of %q", "x")
	b.Warnf(token.Position{Line: 2, Column: 1}, 1, "type mismatch")

	all := b.All()
	require.Len(t, all, 2)
	assert.Equal(t, Error, all[0].Severity)
	assert.Equal(t, `redefinition of "x"`, all[0].Message)
	assert.Equal(t, Warning, all[1].Severity)
}

func TestBagHasErrors(t *testing.T) {
	var b Bag
	assert.False(t, b.HasErrors())
	b.Warnf(token.Position{}, 1, "just a warning")
	assert.False(t, b.HasErrors())
	b.Errorf(token.Position{}, 1, "a real problem")
	assert.True(t, b.HasErrors())
}

func TestNewFloorsLengthToOne(t *testing.T) {
	d := New(Info, "note", token.Position{}, 0)
	assert.Equal(t, 1, d.Length)
}
