package semantic

import (
	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/diag"
	"github.com/novalang/nova/internal/symboltable"
	"github.com/novalang/nova/internal/types"
)

// AnalysisResult is the output of one Analyze pass: the symbol table built
// while walking the program, the accumulated diagnostics, and the
// per-expression type map inference recorded along the way.
type AnalysisResult struct {
	SymbolTable *symboltable.SymbolTable
	Diagnostics []diag.Diagnostic

	exprTypes map[ast.Expression]types.Type
}

// TypeOf returns the type inferred for e, if any.
func (r *AnalysisResult) TypeOf(e ast.Expression) (types.Type, bool) {
	t, ok := r.exprTypes[e]
	return t, ok
}

// HasErrors reports whether any diagnostic in the result is Error severity.
func (r *AnalysisResult) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == diag.Error {
			return true
		}
	}
	return false
}
