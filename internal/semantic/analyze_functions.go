package semantic

import (
	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/symboltable"
	"github.com/novalang/nova/internal/types"
)

func coalesceUnit(t types.Type) types.Type {
	if t == nil {
		return types.Unit{}
	}
	return t
}

func (a *Analyzer) predeclareFun(d *ast.FunDecl, scope symboltable.ScopeID) *symboltable.Symbol {
	sym := &symboltable.Symbol{
		Name:                d.Name,
		Kind:                symboltable.Function,
		TypeName:            typeRefString(d.ReturnType),
		Parameters:          d.Params,
		Visibility:          d.Modifiers.Visibility,
		DeclarationLocation: d.NamePos,
		DeclarationNode:     d,
	}
	a.declareSymbol(scope, sym)
	return sym
}

// analyzeFunDecl resolves the declared (or inferred, for an
// expression-bodied function) signature, binds its receiver and
// parameters in a fresh function scope, and walks its body.
func (a *Analyzer) analyzeFunDecl(d *ast.FunDecl, scope symboltable.ScopeID) *symboltable.Symbol {
	sym := a.lookupOrDeclare(scope, d.Name, func() *symboltable.Symbol { return a.predeclareFun(d, scope) })

	a.resolver.EnterTypeParams(d.TypeParams)
	defer a.resolver.ExitTypeParams()
	if len(d.TypeParams) > 0 {
		a.resolver.RegisterTypeDeclaration(d.Name, d.TypeParams)
	}

	var declaredReturn types.Type
	if d.ReturnType != nil {
		declaredReturn = a.resolver.Resolve(d.ReturnType)
	}

	funcScope := a.newChildScope(symboltable.FunctionScope, d)
	prev := a.pushScope(funcScope)
	defer a.popScope(prev)

	if d.Receiver != nil {
		recvType := a.resolver.Resolve(d.Receiver)
		a.declareSymbol(funcScope, &symboltable.Symbol{
			Name:                "this",
			Kind:                symboltable.Variable,
			TypeName:            d.Receiver.String(),
			StructuralType:      recvType,
			DeclarationLocation: d.NamePos,
		})
	}

	paramTypes := make([]types.Type, 0, len(d.Params))
	for _, p := range d.Params {
		var pt types.Type
		if p.Type != nil {
			pt = a.resolver.Resolve(p.Type)
		}
		if p.DefaultValue != nil {
			defaultType := a.analyzeExpression(p.DefaultValue)
			if pt == nil {
				pt = defaultType
			}
		}
		paramTypes = append(paramTypes, pt)
		a.declareSymbol(funcScope, &symboltable.Symbol{
			Name:                p.Name,
			Kind:                symboltable.Parameter,
			TypeName:            typeRefString(p.Type),
			StructuralType:      pt,
			DeclarationLocation: p.NamePos,
			DeclarationNode:     p,
		})
	}

	sym.StructuralType = types.Function{ParamTypes: paramTypes, ReturnType: coalesceUnit(declaredReturn)}

	if d.Body != nil {
		a.analyzeStatement(d.Body)
		if declaredReturn != nil {
			a.checkReturnAssignable(d, declaredReturn, a.lastReturnType(d.Body))
		}
	}
	if d.ExprBody != nil {
		exprType := a.analyzeExpression(d.ExprBody)
		if declaredReturn == nil {
			if fn, ok := sym.StructuralType.(types.Function); ok {
				fn.ReturnType = coalesceUnit(exprType)
				sym.StructuralType = fn
			}
		} else {
			a.checkReturnAssignable(d, declaredReturn, exprType)
		}
	}

	return sym
}

// lastReturnType finds the type a block's tail produces for return-type
// checking purposes: the value of an explicit return statement if the
// block's last statement is one, else Unit.
func (a *Analyzer) lastReturnType(b *ast.Block) types.Type {
	if b == nil || len(b.Statements) == 0 {
		return types.Unit{}
	}
	ret, ok := b.Statements[len(b.Statements)-1].(*ast.ReturnStmt)
	if !ok {
		return types.Unit{}
	}
	if ret.Value == nil {
		return types.Unit{}
	}
	return a.exprTypes[ret.Value]
}

// checkReturnAssignable warns when a function body's produced type isn't
// assignable to its declared return type (§4.7).
func (a *Analyzer) checkReturnAssignable(d *ast.FunDecl, declaredReturn, bodyType types.Type) {
	if bodyType == nil || a.isAssignable(declaredReturn, bodyType) {
		return
	}
	a.diags.Warnf(d.NamePos, len(d.Name),
		"function %q returns %q, not assignable to declared return type %q",
		d.Name, bodyType.String(), declaredReturn.String())
}

func (a *Analyzer) predeclareProperty(d *ast.PropertyDecl, scope symboltable.ScopeID) *symboltable.Symbol {
	sym := &symboltable.Symbol{
		Name:                d.Name,
		Kind:                symboltable.Property,
		TypeName:            typeRefString(d.Type),
		Mutable:             d.Mutable,
		Visibility:          d.Modifiers.Visibility,
		DeclarationLocation: d.NamePos,
		DeclarationNode:     d,
	}
	a.declareSymbol(scope, sym)
	return sym
}

func (a *Analyzer) analyzePropertyDecl(d *ast.PropertyDecl, scope symboltable.ScopeID) *symboltable.Symbol {
	sym := a.lookupOrDeclare(scope, d.Name, func() *symboltable.Symbol { return a.predeclareProperty(d, scope) })

	var declared types.Type
	if d.Type != nil {
		declared = a.resolver.Resolve(d.Type)
	}

	var initType types.Type
	if d.Initializer != nil {
		initType = a.analyzeExpression(d.Initializer)
	}
	if d.Delegate != nil {
		a.analyzeExpression(d.Delegate)
	}

	resolved := declared
	if resolved == nil {
		resolved = initType
	}
	sym.StructuralType = resolved
	if sym.TypeName == "" && resolved != nil {
		sym.TypeName = resolved.String()
	}

	if declared != nil && initType != nil && !a.isAssignable(declared, initType) {
		a.diags.Warnf(d.NamePos, len(d.Name),
			"initializer type %q is not assignable to declared type %q for %q",
			initType.String(), declared.String(), d.Name)
	}

	if d.Modifiers.Const {
		a.checkConstVal(d)
	}

	if d.Getter != nil {
		a.analyzeFunDecl(d.Getter, scope)
	}
	if d.Setter != nil {
		a.analyzeFunDecl(d.Setter, scope)
	}

	return sym
}

func (a *Analyzer) analyzeDestructuring(d *ast.DestructuringDecl, scope symboltable.ScopeID) {
	initType := a.analyzeExpression(d.Initializer)
	for i, name := range d.Names {
		var t types.Type
		if i < len(d.Types) && d.Types[i] != nil {
			t = a.resolver.Resolve(d.Types[i])
		} else {
			compName := componentName(i)
			t = a.memberType(initType, compName)
		}
		pos := d.Pos()
		if i < len(d.NamePositions) {
			pos = d.NamePositions[i]
		}
		a.declareSymbol(scope, &symboltable.Symbol{
			Name:                name,
			Kind:                symboltable.Variable,
			Mutable:             d.Mutable,
			StructuralType:      t,
			DeclarationLocation: pos,
			DeclarationNode:     d,
		})
	}
}

func componentName(index int) string {
	digits := "123456789"
	if index < len(digits) {
		return "component" + string(digits[index])
	}
	return "component"
}
