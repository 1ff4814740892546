// Package typeresolver turns parsed ast.TypeRef nodes into structural
// types.Type values, consulting a stack of type-parameter scopes pushed by
// the analyzer around each class/interface/function declaration.
package typeresolver

import (
	"strings"

	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/types"
)

// typeParamScope holds the type parameters visible while resolving types
// inside one class or function declaration.
type typeParamScope struct {
	params map[string]*ast.TypeParameter
}

// declInfo caches declaration-level generic information for a class or
// function, consulted by the semantic package's unifier (§4.6).
type declInfo struct {
	name       string
	typeParams []*ast.TypeParameter
}

// Resolver resolves ast.TypeRef nodes to types.Type, tracking nested
// type-parameter scopes (innermost first) and a registry of known
// declarations for generic unification.
type Resolver struct {
	scopes []*typeParamScope
	decls  map[string]*declInfo
}

// New creates an empty Resolver.
func New() *Resolver {
	return &Resolver{decls: make(map[string]*declInfo)}
}

// EnterTypeParams pushes a new type-parameter scope for the duration of
// resolving one class/interface/function declaration. The caller must
// call ExitTypeParams when done, typically via defer.
func (r *Resolver) EnterTypeParams(params []*ast.TypeParameter) {
	scope := &typeParamScope{params: make(map[string]*ast.TypeParameter, len(params))}
	for _, p := range params {
		scope.params[p.Name] = p
	}
	r.scopes = append(r.scopes, scope)
}

// ExitTypeParams pops the innermost type-parameter scope.
func (r *Resolver) ExitTypeParams() {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// RegisterTypeDeclaration caches a class's or function's type parameters
// for later generic unification by the semantic package.
func (r *Resolver) RegisterTypeDeclaration(name string, params []*ast.TypeParameter) {
	r.decls[name] = &declInfo{name: name, typeParams: params}
}

// TypeParamsOf returns the cached type parameters for a declaration name,
// or nil if none were registered (a non-generic or unknown declaration).
func (r *Resolver) TypeParamsOf(name string) []*ast.TypeParameter {
	if d, ok := r.decls[name]; ok {
		return d.typeParams
	}
	return nil
}

// lookupTypeParam searches the scope stack innermost-first.
func (r *Resolver) lookupTypeParam(name string) (*ast.TypeParameter, bool) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if p, ok := r.scopes[i].params[name]; ok {
			return p, true
		}
	}
	return nil, false
}

// Resolve maps a parsed type reference to a structural type. A nil ref
// resolves to nil ("no type"), matching the contract that "no type" is
// returned only for nil input.
func (r *Resolver) Resolve(ref ast.TypeRef) types.Type {
	if ref == nil {
		return nil
	}
	switch t := ref.(type) {
	case *ast.SimpleType:
		return r.resolveSimple(t)
	case *ast.NullableType:
		inner := r.Resolve(t.Inner)
		if inner == nil {
			return nil
		}
		return inner.WithNullable(true)
	case *ast.GenericType:
		return r.resolveGeneric(t)
	case *ast.FunctionType:
		return r.resolveFunction(t)
	default:
		return types.Error{}
	}
}

func (r *Resolver) resolveSimple(t *ast.SimpleType) types.Type {
	name := t.String()
	if p, ok := r.lookupTypeParam(name); ok {
		bound := r.Resolve(p.UpperBound)
		if bound == nil {
			bound = types.Any()
		}
		return types.TypeParameter{Name: name, UpperBound: bound}
	}
	if types.IsPrimitiveName(name) {
		return types.Primitive{Name: name}
	}
	switch name {
	case "Unit":
		return types.Unit{}
	case "Nothing":
		return types.Nothing{}
	case "Any":
		return types.Any()
	case "Number":
		return types.Number()
	}
	return types.Class{Name: name}
}

func (r *Resolver) resolveGeneric(t *ast.GenericType) types.Type {
	name := strings.Join(t.QualifiedName, ".")
	args := make([]types.TypeArgument, len(t.TypeArgs))
	for i, a := range t.TypeArgs {
		if a.IsWildcard {
			args[i] = types.TypeArgument{IsWildcard: true}
			continue
		}
		resolved := r.Resolve(a.Type)
		if resolved == nil {
			resolved = types.Error{}
		}
		args[i] = types.TypeArgument{Variance: types.Variance(a.Variance), Type: resolved}
	}
	return types.Class{Name: name, TypeArgs: args}
}

func (r *Resolver) resolveFunction(t *ast.FunctionType) types.Type {
	var receiver types.Type
	if t.Receiver != nil {
		receiver = r.Resolve(t.Receiver)
	}
	params := make([]types.Type, len(t.ParamTypes))
	for i, p := range t.ParamTypes {
		pt := r.Resolve(p)
		if pt == nil {
			pt = types.Error{}
		}
		params[i] = pt
	}
	ret := r.Resolve(t.ReturnType)
	if ret == nil {
		ret = types.Unit{}
	}
	return types.Function{Receiver: receiver, ParamTypes: params, ReturnType: ret}
}
