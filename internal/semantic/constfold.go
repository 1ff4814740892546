package semantic

import (
	"github.com/spf13/cast"

	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/token"
)

// constValue is the folded value of a `const val` initializer, kept in
// its widest representation so later const expressions that reference it
// can keep folding without re-walking the AST.
type constValue struct {
	kind  ast.LiteralKind
	value any
}

// checkConstVal enforces that a `const val`'s initializer is a
// compile-time constant expression (literal, or an arithmetic/string
// combination of literals and other const vals) and records its folded
// value for use by further const expressions.
func (a *Analyzer) checkConstVal(d *ast.PropertyDecl) {
	if d.Initializer == nil {
		a.diags.Errorf(d.NamePos, len(d.Name), "const val %q must have an initializer", d.Name)
		return
	}
	cv, ok := a.evalConst(d.Initializer)
	if !ok {
		a.diags.Errorf(d.NamePos, len(d.Name),
			"const val %q initializer is not a compile-time constant", d.Name)
		return
	}
	a.constVals[d.Name] = cv
}

// evalConst attempts to fold e to a constant value, returning false when
// e contains anything beyond literals, const-val references, and the
// arithmetic/string-concatenation operators constant expressions allow.
func (a *Analyzer) evalConst(e ast.Expression) (constValue, bool) {
	switch ex := e.(type) {
	case *ast.Literal:
		return literalToConst(ex), true
	case *ast.Identifier:
		cv, ok := a.constVals[ex.Name]
		return cv, ok
	case *ast.UnaryExpr:
		operand, ok := a.evalConst(ex.Operand)
		if !ok {
			return constValue{}, false
		}
		return a.evalConstUnary(ex.Op, operand)
	case *ast.BinaryExpr:
		left, ok := a.evalConst(ex.Left)
		if !ok {
			return constValue{}, false
		}
		right, ok := a.evalConst(ex.Right)
		if !ok {
			return constValue{}, false
		}
		return a.evalConstBinary(ex.Op, left, right)
	default:
		return constValue{}, false
	}
}

func literalToConst(lit *ast.Literal) constValue {
	return constValue{kind: lit.Kind, value: lit.Value}
}

func isNumericKind(k ast.LiteralKind) bool {
	switch k {
	case ast.LiteralInt, ast.LiteralLong, ast.LiteralFloat, ast.LiteralDouble:
		return true
	}
	return false
}

// widerLiteralKind returns whichever of two numeric literal kinds a
// result should be folded to, by the same Int < Long < Float < Double
// order the runtime type model widens with.
func widerLiteralKind(a, b ast.LiteralKind) ast.LiteralKind {
	rank := map[ast.LiteralKind]int{
		ast.LiteralInt: 0, ast.LiteralLong: 1, ast.LiteralFloat: 2, ast.LiteralDouble: 3,
	}
	if rank[a] >= rank[b] {
		return a
	}
	return b
}

func (a *Analyzer) evalConstUnary(op token.Type, operand constValue) (constValue, bool) {
	switch op {
	case token.MINUS:
		if !isNumericKind(operand.kind) {
			return constValue{}, false
		}
		switch operand.kind {
		case ast.LiteralFloat, ast.LiteralDouble:
			return constValue{kind: operand.kind, value: -cast.ToFloat64(operand.value)}, true
		default:
			return constValue{kind: operand.kind, value: -cast.ToInt64(operand.value)}, true
		}
	case token.EXCLAMATION:
		if operand.kind != ast.LiteralBoolean {
			return constValue{}, false
		}
		return constValue{kind: ast.LiteralBoolean, value: !cast.ToBool(operand.value)}, true
	default:
		return constValue{}, false
	}
}

func (a *Analyzer) evalConstBinary(op token.Type, left, right constValue) (constValue, bool) {
	if op == token.PLUS && (left.kind == ast.LiteralString || right.kind == ast.LiteralString) {
		return constValue{kind: ast.LiteralString, value: cast.ToString(left.value) + cast.ToString(right.value)}, true
	}
	if !isNumericKind(left.kind) || !isNumericKind(right.kind) {
		return constValue{}, false
	}

	resultKind := widerLiteralKind(left.kind, right.kind)
	if resultKind == ast.LiteralFloat || resultKind == ast.LiteralDouble {
		lf, rf := cast.ToFloat64(left.value), cast.ToFloat64(right.value)
		var result float64
		switch op {
		case token.PLUS:
			result = lf + rf
		case token.MINUS:
			result = lf - rf
		case token.STAR:
			result = lf * rf
		case token.SLASH:
			result = lf / rf
		default:
			return constValue{}, false
		}
		return constValue{kind: resultKind, value: result}, true
	}

	li, ri := cast.ToInt64(left.value), cast.ToInt64(right.value)
	var result int64
	switch op {
	case token.PLUS:
		result = li + ri
	case token.MINUS:
		result = li - ri
	case token.STAR:
		result = li * ri
	case token.SLASH:
		if ri == 0 {
			return constValue{}, false
		}
		result = li / ri
	case token.PERCENT:
		if ri == 0 {
			return constValue{}, false
		}
		result = li % ri
	default:
		return constValue{}, false
	}
	return constValue{kind: resultKind, value: result}, true
}
