package semantic

import (
	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/symboltable"
	"github.com/novalang/nova/internal/types"
)

// collectionFactories maps the built-in collection-factory function names
// to the Class name their call produces.
var collectionFactories = map[string]string{
	"listOf": "List", "mutableListOf": "List",
	"setOf": "Set", "mutableSetOf": "Set",
	"mapOf": "Map", "mutableMapOf": "Map",
	"arrayOf": "Array",
}

// inferCall implements the call-expression inference procedure: resolve
// the callee, analyze arguments, then attempt (in order) a declared
// function/builtin, a class/enum constructor, a recognized collection
// factory, and finally a generic member-callee fallback.
func (a *Analyzer) inferCall(ex *ast.CallExpr) types.Type {
	for _, arg := range ex.Args {
		if arg.Value != nil {
			a.analyzeExpression(arg.Value)
		}
	}
	var lambdaType types.Type
	if ex.TrailingLambda != nil {
		lambdaType = a.analyzeExpression(ex.TrailingLambda)
	}

	switch callee := ex.Callee.(type) {
	case *ast.Identifier:
		if t, ok := a.inferCallByName(ex, callee.Name); ok {
			return t
		}
		a.analyzeExpression(callee)
		return types.Any()
	case *ast.MemberExpr:
		recv := a.analyzeExpression(callee.Receiver)
		return a.callResultOf(a.memberType(recv, callee.Name))
	default:
		funcType := a.analyzeExpression(ex.Callee)
		if lambdaType != nil {
			return a.callResultOf(funcType)
		}
		return a.callResultOf(funcType)
	}
}

func (a *Analyzer) inferCallByName(ex *ast.CallExpr, name string) (types.Type, bool) {
	// Attempt 1: a declared function or builtin in scope.
	if sym, ok := a.symbols.Resolve(a.scope, name); ok {
		a.checkCallArity(ex, sym)
		a.checkCallArgTypes(ex, sym)
		if fn, ok := sym.StructuralType.(types.Function); ok {
			return a.substituteCallTypeArgs(ex, sym, fn.ReturnType), true
		}
		return types.Any(), true
	}

	// Attempt 2: a class or enum constructor.
	if classSym := a.lookupClassSymbol(name); classSym != nil {
		typeArgs := make([]types.TypeArgument, 0, len(ex.TypeArgs))
		for _, ta := range ex.TypeArgs {
			t := a.resolver.Resolve(ta)
			if t == nil {
				t = types.Error{}
			}
			typeArgs = append(typeArgs, types.TypeArgument{Type: t})
		}
		return types.Class{Name: name, TypeArgs: typeArgs}, true
	}

	// Attempt 3: a recognized collection-factory name.
	if className, ok := collectionFactories[name]; ok {
		return a.inferCollectionFactory(ex, className), true
	}

	return nil, false
}

// inferCollectionFactory infers a collection-factory call's element (or
// key/value) types from its arguments. mapOf's arguments are typically
// `k to v` pair expressions, recognized by their BinaryExpr(TO, ...) shape.
func (a *Analyzer) inferCollectionFactory(ex *ast.CallExpr, className string) types.Type {
	if className == "Map" {
		var keyTypes, valTypes []types.Type
		for _, arg := range ex.Args {
			if pair, ok := arg.Value.(*ast.BinaryExpr); ok {
				keyTypes = append(keyTypes, a.exprTypes[pair.Left])
				valTypes = append(valTypes, a.exprTypes[pair.Right])
			}
		}
		k := a.leastCommonSupertypeAll(keyTypes)
		v := a.leastCommonSupertypeAll(valTypes)
		if k == nil || v == nil {
			return types.Class{Name: "Map"}
		}
		return types.Class{Name: "Map", TypeArgs: []types.TypeArgument{{Type: k}, {Type: v}}}
	}

	elemTypes := make([]types.Type, 0, len(ex.Args))
	for _, arg := range ex.Args {
		if arg.Value != nil {
			elemTypes = append(elemTypes, a.exprTypes[arg.Value])
		}
	}
	elem := a.leastCommonSupertypeAll(elemTypes)
	return types.Class{Name: className, TypeArgs: typeArgsOrEmpty(elem)}
}

// checkCallArity reports a diagnostic when a user function is called with
// too few non-defaulted parameters or too many positional arguments.
// Builtins (which carry no Parameters list here) are left unchecked.
func (a *Analyzer) checkCallArity(ex *ast.CallExpr, sym *symboltable.Symbol) {
	if sym.Kind != symboltable.Function || sym.Parameters == nil {
		return
	}
	required := 0
	for _, p := range sym.Parameters {
		if p.DefaultValue == nil && !p.IsVararg {
			required++
		}
	}
	positional := 0
	named := make(map[string]bool)
	for _, arg := range ex.Args {
		if arg.Name != "" {
			named[arg.Name] = true
		} else {
			positional++
		}
	}
	if positional+len(named) < required {
		a.diags.Errorf(ex.Pos(), 1, "not enough arguments in call to %q: expected at least %d, got %d",
			sym.Name, required, positional+len(named))
	}
	hasVararg := len(sym.Parameters) > 0 && sym.Parameters[len(sym.Parameters)-1].IsVararg
	if !hasVararg && positional > len(sym.Parameters) {
		a.diags.Errorf(ex.Pos(), 1, "too many arguments in call to %q: expected %d, got %d",
			sym.Name, len(sym.Parameters), positional)
	}
}

// checkCallArgTypes reports a diagnostic for each positional argument
// whose inferred type isn't assignable to the corresponding declared
// parameter type. Named and vararg arguments are left unchecked.
func (a *Analyzer) checkCallArgTypes(ex *ast.CallExpr, sym *symboltable.Symbol) {
	if sym.Kind != symboltable.Function || sym.Parameters == nil {
		return
	}
	for i, arg := range ex.Args {
		if arg.Name != "" || arg.IsSpread || i >= len(sym.Parameters) {
			continue
		}
		param := sym.Parameters[i]
		if param.IsVararg || param.Type == nil {
			continue
		}
		paramType := a.resolver.Resolve(param.Type)
		argType := a.exprTypes[arg.Value]
		if paramType != nil && argType != nil && !a.isAssignable(paramType, argType) {
			a.diags.Warnf(arg.Value.Pos(), 1,
				"argument of type %q is not assignable to parameter %q of type %q",
				argType.String(), param.Name, paramType.String())
		}
	}
}

// substituteCallTypeArgs attempts generic return-type inference (§4.6)
// when the callee declares type parameters: unify each parameter's
// declared type against its corresponding argument's inferred type, then
// substitute into the declared return type.
func (a *Analyzer) substituteCallTypeArgs(ex *ast.CallExpr, sym *symboltable.Symbol, declaredReturn types.Type) types.Type {
	if len(sym.Parameters) == 0 || declaredReturn == nil {
		return declaredReturn
	}
	bindings := make(map[string]types.Type)
	for i, arg := range ex.Args {
		if i >= len(sym.Parameters) || arg.Name != "" {
			continue
		}
		p := sym.Parameters[i]
		if p.Type == nil {
			continue
		}
		formal := a.resolver.Resolve(p.Type)
		actual := a.exprTypes[arg.Value]
		a.unifyOne(formal, actual, bindings)
	}
	if len(bindings) == 0 {
		return declaredReturn
	}
	return a.substituteTypeParams(declaredReturn, bindings)
}

// callResultOf returns a function type's return type, or Any when t isn't
// a known function type (the receiver is unresolved or external).
func (a *Analyzer) callResultOf(t types.Type) types.Type {
	if fn, ok := t.(types.Function); ok {
		return coalesceUnit(fn.ReturnType)
	}
	return types.Any()
}
