package semantic

import (
	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/types"
)

// isAssignable implements §4.7: whether a value of type source can be
// used where target is expected.
func (a *Analyzer) isAssignable(target, source types.Type) bool {
	if target == nil || source == nil {
		return true
	}
	if _, ok := target.(types.Error); ok {
		return true
	}
	if _, ok := source.(types.Error); ok {
		return true
	}
	if srcNothing, ok := source.(types.Nothing); ok {
		if srcNothing.Nullable {
			return target.IsNullable()
		}
		return true
	}
	if target.IsNullable() && isNullLiteralType(source) {
		return true
	}
	if source.IsNullable() && !target.IsNullable() {
		return false
	}
	if tc, ok := target.(types.Class); ok && tc.Name == "Any" && len(tc.TypeArgs) == 0 {
		return true
	}

	switch t := target.(type) {
	case types.Primitive:
		return a.primitiveAssignable(t, source)
	case types.Class:
		return a.classAssignable(t, source)
	case types.TypeParameter:
		return a.isAssignable(t.UpperBound, source)
	case types.Function:
		return a.functionAssignable(t, source)
	case types.Unit:
		_, ok := source.(types.Unit)
		return ok
	case types.Nothing:
		return false
	}
	return false
}

func isNullLiteralType(t types.Type) bool {
	n, ok := t.(types.Nothing)
	return ok && n.Nullable
}

func (a *Analyzer) primitiveAssignable(target types.Primitive, source types.Type) bool {
	switch s := source.(type) {
	case types.Primitive:
		if s.Name == target.Name {
			return true
		}
		return types.IsNumeric(target.Name) && types.IsNumeric(s.Name) &&
			numericRankLE(s.Name, target.Name)
	case types.Class:
		// Any/Number as a bare Class can flow into a matching primitive slot
		// when the primitive is numeric and the class is the Number supertype.
		return s.Name == "Number" && types.IsNumeric(target.Name)
	}
	return false
}

func numericRankLE(from, to string) bool {
	return types.WidenNumeric(from, to) == to
}

func (a *Analyzer) classAssignable(target types.Class, source types.Type) bool {
	if target.Name == "Number" && len(target.TypeArgs) == 0 {
		if p, ok := source.(types.Primitive); ok {
			return types.IsNumeric(p.Name)
		}
		if c, ok := source.(types.Class); ok {
			return c.Name == "Number"
		}
		return false
	}

	switch s := source.(type) {
	case types.Primitive:
		return target.Name == s.Name && len(target.TypeArgs) == 0
	case types.Class:
		if !a.symbols.IsSubtype(s.Name, target.Name) && s.Name != target.Name {
			return false
		}
		if len(target.TypeArgs) == 0 {
			return true
		}
		if len(s.TypeArgs) != len(target.TypeArgs) {
			return false
		}
		for i, targetArg := range target.TypeArgs {
			if !a.typeArgAssignable(target.Name, i, targetArg, s.TypeArgs[i]) {
				return false
			}
		}
		return true
	case types.TypeParameter:
		return a.isAssignable(target, s.UpperBound)
	}
	return false
}

// typeArgAssignable compares one type-argument position of a generic class
// target against the matching position of the source. Explicit use-site
// variance on the target argument (e.g. `Box<out Int>`) wins; otherwise the
// position falls back to className's declaration-site variance (`class
// Box<out T>`), found via the resolver's cached type parameters. An Out
// position only needs the actual to be a subtype, In only needs it a
// supertype, Invariant needs exact structural equality.
func (a *Analyzer) typeArgAssignable(className string, index int, target, actual types.TypeArgument) bool {
	if target.IsWildcard {
		return true
	}
	variance := target.Variance
	if variance == types.Invariant {
		variance = a.declaredVariance(className, index)
	}
	switch variance {
	case types.Out:
		return a.isAssignable(target.Type, actual.Type)
	case types.In:
		return a.isAssignable(actual.Type, target.Type)
	default:
		return target.Type.String() == actual.Type.String()
	}
}

// declaredVariance looks up the declaration-site variance of the index'th
// type parameter of className, as registered by RegisterTypeDeclaration
// when its class/interface declaration was analyzed. Unknown declarations
// and out-of-range indices are treated as invariant.
func (a *Analyzer) declaredVariance(className string, index int) types.Variance {
	params := a.resolver.TypeParamsOf(className)
	if index < 0 || index >= len(params) {
		return types.Invariant
	}
	switch params[index].Variance {
	case ast.Out:
		return types.Out
	case ast.In:
		return types.In
	default:
		return types.Invariant
	}
}

// functionAssignable checks param contravariance / return covariance.
func (a *Analyzer) functionAssignable(target types.Function, source types.Type) bool {
	s, ok := source.(types.Function)
	if !ok {
		return false
	}
	if len(s.ParamTypes) != len(target.ParamTypes) {
		return false
	}
	for i, tp := range target.ParamTypes {
		if !a.isAssignable(s.ParamTypes[i], tp) {
			return false
		}
	}
	return a.isAssignable(target.ReturnType, s.ReturnType)
}
