package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/novalang/nova/internal/token"
)

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	src := "val x =\nval y = 1"
	e := New(token.Position{Line: 1, Column: 8}, "expected expression", src, "demo.nova")

	out := e.Format(false)
	assert.Contains(t, out, "demo.nova:1:8")
	assert.Contains(t, out, "val x =")
	assert.Contains(t, out, "^")
	assert.Contains(t, out, "expected expression")
}

func TestFormatWithoutFileOmitsFileHeader(t *testing.T) {
	e := New(token.Position{Line: 1, Column: 1}, "bad token", "x", "")
	out := e.Format(false)
	assert.Contains(t, out, "error at 1:1")
}

func TestFormatErrorsBatchesMultiple(t *testing.T) {
	errs := []*CompilerError{
		New(token.Position{Line: 1, Column: 1}, "first", "a", "f.nova"),
		New(token.Position{Line: 2, Column: 1}, "second", "a\nb", "f.nova"),
	}
	out := FormatErrors(errs, false)
	assert.Contains(t, out, "2 error(s)")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
}

func TestFormatErrorsEmpty(t *testing.T) {
	assert.Equal(t, "", FormatErrors(nil, false))
}
