package semantic

import "github.com/novalang/nova/internal/ast"

// checkVariance enforces §4.8: a declaration-site `out` type parameter
// may only appear in covariant (return/val-property) positions; an `in`
// type parameter may only appear in contravariant (parameter) positions.
func (a *Analyzer) checkVariance(typeParams []*ast.TypeParameter, decl ast.Declaration) {
	if len(typeParams) == 0 {
		return
	}
	varianceOf := make(map[string]ast.Variance, len(typeParams))
	for _, tp := range typeParams {
		if tp.Variance != ast.Invariant {
			varianceOf[tp.Name] = tp.Variance
		}
	}
	if len(varianceOf) == 0 {
		return
	}

	var members []ast.Declaration
	switch d := decl.(type) {
	case *ast.ClassDecl:
		members = d.Members
	case *ast.InterfaceDecl:
		members = d.Members
	default:
		return
	}

	for _, member := range members {
		switch m := member.(type) {
		case *ast.PropertyDecl:
			if m.Type == nil {
				continue
			}
			if m.Mutable {
				// A var property both reads and writes, so an `out` parameter
				// used there would leak into a contravariant position too (and
				// an `in` parameter into a covariant one): check it as both.
				a.checkVarianceInType(m.Type, varianceOf, ast.Out)
				a.checkVarianceInType(m.Type, varianceOf, ast.In)
				continue
			}
			a.checkVarianceInType(m.Type, varianceOf, ast.Out)
		case *ast.FunDecl:
			for _, p := range m.Params {
				if p.Type != nil {
					a.checkVarianceInType(p.Type, varianceOf, ast.In)
				}
			}
			if m.ReturnType != nil {
				a.checkVarianceInType(m.ReturnType, varianceOf, ast.Out)
			}
		}
	}
}

// checkVarianceInType walks a type reference for bare occurrences of a
// variance-annotated type parameter, reporting a diagnostic when the
// occurrence's position conflicts with its declared variance.
func (a *Analyzer) checkVarianceInType(t ast.TypeRef, varianceOf map[string]ast.Variance, position ast.Variance) {
	switch tt := t.(type) {
	case *ast.SimpleType:
		name := tt.String()
		declared, ok := varianceOf[name]
		if !ok || declared == ast.Invariant {
			return
		}
		if position != ast.Invariant && declared != position {
			kw := "out"
			posKw := "in"
			if declared == ast.In {
				kw = "in"
			}
			if position == ast.Out {
				posKw = "out"
			}
			a.diags.Errorf(tt.Pos(), len(name),
				"type parameter %q declared %q cannot be used in %s position", name, kw, posKw)
		}
	case *ast.NullableType:
		a.checkVarianceInType(tt.Inner, varianceOf, position)
	case *ast.GenericType:
		for _, arg := range tt.TypeArgs {
			if arg.IsWildcard || arg.Type == nil {
				continue
			}
			argPosition := position
			if arg.Variance == ast.In {
				argPosition = flipVariance(position)
			}
			a.checkVarianceInType(arg.Type, varianceOf, argPosition)
		}
	case *ast.FunctionType:
		for _, p := range tt.ParamTypes {
			a.checkVarianceInType(p, varianceOf, flipVariance(position))
		}
		if tt.ReturnType != nil {
			a.checkVarianceInType(tt.ReturnType, varianceOf, position)
		}
	}
}

func flipVariance(v ast.Variance) ast.Variance {
	switch v {
	case ast.Out:
		return ast.In
	case ast.In:
		return ast.Out
	default:
		return ast.Invariant
	}
}
