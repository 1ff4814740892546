package semantic

import "github.com/novalang/nova/internal/types"

// commonSupertype (lub) computes the narrowest common supertype of two
// branch types — used for if/when/try expression results and collection
// element inference.
func (a *Analyzer) commonSupertype(t1, t2 types.Type) types.Type {
	if t1 == nil {
		return t2
	}
	if t2 == nil {
		return t1
	}
	if t1.String() == t2.String() {
		return t1
	}
	if n, ok := t1.(types.Nothing); ok && !n.Nullable {
		return t2
	}
	if n, ok := t2.(types.Nothing); ok && !n.Nullable {
		return t1
	}

	nullable := t1.IsNullable() || t2.IsNullable()

	p1, ok1 := t1.(types.Primitive)
	p2, ok2 := t2.(types.Primitive)
	if ok1 && ok2 && types.IsNumeric(p1.Name) && types.IsNumeric(p2.Name) {
		return types.Primitive{Name: types.WidenNumeric(p1.Name, p2.Name), Nullable: nullable}
	}

	c1, ok1 := t1.(types.Class)
	c2, ok2 := t2.(types.Class)
	if ok1 && ok2 {
		if a.symbols.IsSubtype(c1.Name, c2.Name) {
			return c2.WithNullable(nullable)
		}
		if a.symbols.IsSubtype(c2.Name, c1.Name) {
			return c1.WithNullable(nullable)
		}
	}
	return types.Any().WithNullable(nullable)
}

// unifyOne binds formal's type parameters against actual's structure,
// recording each discovered binding in bindings.
func (a *Analyzer) unifyOne(formal, actual types.Type, bindings map[string]types.Type) {
	if formal == nil || actual == nil {
		return
	}
	switch f := formal.(type) {
	case types.TypeParameter:
		if _, bound := bindings[f.Name]; !bound {
			bindings[f.Name] = actual
		}
	case types.Class:
		ac, ok := actual.(types.Class)
		if !ok || len(f.TypeArgs) == 0 || len(ac.TypeArgs) != len(f.TypeArgs) {
			return
		}
		for i, fa := range f.TypeArgs {
			a.unifyOne(fa.Type, ac.TypeArgs[i].Type, bindings)
		}
	case types.Function:
		af, ok := actual.(types.Function)
		if !ok {
			return
		}
		for i, fp := range f.ParamTypes {
			if i < len(af.ParamTypes) {
				a.unifyOne(fp, af.ParamTypes[i], bindings)
			}
		}
		a.unifyOne(f.ReturnType, af.ReturnType, bindings)
	}
}

// substituteTypeParams replaces every TypeParameter occurrence in t with
// its bound type, leaving unbound parameters as the TypeParameter itself.
func (a *Analyzer) substituteTypeParams(t types.Type, bindings map[string]types.Type) types.Type {
	if t == nil {
		return nil
	}
	switch v := t.(type) {
	case types.TypeParameter:
		if bound, ok := bindings[v.Name]; ok {
			if v.Nullable {
				return bound.WithNullable(true)
			}
			return bound
		}
		return v
	case types.Class:
		if len(v.TypeArgs) == 0 {
			return v
		}
		newArgs := make([]types.TypeArgument, len(v.TypeArgs))
		for i, arg := range v.TypeArgs {
			newArgs[i] = types.TypeArgument{
				Variance: arg.Variance,
				Type:     a.substituteTypeParams(arg.Type, bindings),
			}
		}
		v.TypeArgs = newArgs
		return v
	case types.Function:
		newParams := make([]types.Type, len(v.ParamTypes))
		for i, p := range v.ParamTypes {
			newParams[i] = a.substituteTypeParams(p, bindings)
		}
		v.ParamTypes = newParams
		v.ReturnType = a.substituteTypeParams(v.ReturnType, bindings)
		return v
	default:
		return t
	}
}
