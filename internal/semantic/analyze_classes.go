package semantic

import (
	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/symboltable"
	"github.com/novalang/nova/internal/types"
)

func (a *Analyzer) predeclareClass(d *ast.ClassDecl, scope symboltable.ScopeID) *symboltable.Symbol {
	sym := &symboltable.Symbol{
		Name:                d.Name,
		Kind:                symboltable.ClassSym,
		TypeName:            d.Name,
		StructuralType:      types.Class{Name: d.Name},
		Visibility:          d.Modifiers.Visibility,
		DeclarationLocation: d.NamePos,
		DeclarationNode:     d,
	}
	a.declareSymbol(scope, sym)
	return sym
}

func (a *Analyzer) predeclareInterface(d *ast.InterfaceDecl, scope symboltable.ScopeID) *symboltable.Symbol {
	sym := &symboltable.Symbol{
		Name:                d.Name,
		Kind:                symboltable.InterfaceSym,
		TypeName:            d.Name,
		StructuralType:      types.Class{Name: d.Name},
		Visibility:          d.Modifiers.Visibility,
		DeclarationLocation: d.NamePos,
		DeclarationNode:     d,
	}
	a.declareSymbol(scope, sym)
	return sym
}

func (a *Analyzer) predeclareObject(d *ast.ObjectDecl, scope symboltable.ScopeID) *symboltable.Symbol {
	sym := &symboltable.Symbol{
		Name:                d.Name,
		Kind:                symboltable.ObjectSym,
		TypeName:            d.Name,
		StructuralType:      types.Class{Name: d.Name},
		Visibility:          d.Modifiers.Visibility,
		DeclarationLocation: d.NamePos,
		DeclarationNode:     d,
	}
	a.declareSymbol(scope, sym)
	return sym
}

func (a *Analyzer) predeclareEnum(d *ast.EnumDecl, scope symboltable.ScopeID) *symboltable.Symbol {
	sym := &symboltable.Symbol{
		Name:                d.Name,
		Kind:                symboltable.EnumSym,
		TypeName:            d.Name,
		StructuralType:      types.Class{Name: d.Name},
		Visibility:          d.Modifiers.Visibility,
		DeclarationLocation: d.NamePos,
		DeclarationNode:     d,
	}
	a.declareSymbol(scope, sym)
	return sym
}

func (a *Analyzer) predeclareTypeAlias(d *ast.TypeAliasDecl, scope symboltable.ScopeID) *symboltable.Symbol {
	sym := &symboltable.Symbol{
		Name:                d.Name,
		Kind:                symboltable.TypeAlias,
		TypeName:            typeRefString(d.Aliased),
		DeclarationLocation: d.NamePos,
		DeclarationNode:     d,
	}
	a.declareSymbol(scope, sym)
	return sym
}

// analyzeClassDecl follows the eight-step order: define the class symbol
// (already done by predeclareClass, unless this is a nested declaration
// reached only here), register and enter its type-parameter scope,
// register inheritance, enter the class body scope and bind `this`, bind
// primary-constructor parameters (promoting property ones to members),
// run the variance checker, visit members, then exit both scopes.
func (a *Analyzer) analyzeClassDecl(d *ast.ClassDecl, scope symboltable.ScopeID) *symboltable.Symbol {
	sym := a.lookupOrDeclare(scope, d.Name, func() *symboltable.Symbol { return a.predeclareClass(d, scope) })

	a.resolver.EnterTypeParams(d.TypeParams)
	defer a.resolver.ExitTypeParams()
	if len(d.TypeParams) > 0 {
		a.resolver.RegisterTypeDeclaration(d.Name, d.TypeParams)
	}

	var superName string
	if d.SuperClass != nil {
		superName = d.SuperClass.String()
	}
	ifaceNames := make([]string, 0, len(d.Interfaces))
	for _, iface := range d.Interfaces {
		ifaceNames = append(ifaceNames, iface.String())
	}
	a.symbols.RegisterSuperType(d.Name, symboltable.SuperTypeInfo{SuperClassName: superName, InterfaceNames: ifaceNames})
	sym.SuperClassName = superName
	sym.InterfaceNames = ifaceNames

	classScope := a.newChildScope(symboltable.ClassScope, d)
	a.symbols.Scope(classScope).OwnerTypeName = d.Name
	prev := a.pushScope(classScope)
	defer a.popScope(prev)

	a.declareSymbol(classScope, &symboltable.Symbol{
		Name:                "this",
		Kind:                symboltable.Variable,
		TypeName:            d.Name,
		StructuralType:      types.Class{Name: d.Name},
		DeclarationLocation: d.NamePos,
	})

	for _, p := range d.PrimaryCtorParams {
		a.bindCtorParam(p, classScope, sym)
	}
	for _, arg := range d.SuperClassArgs {
		a.analyzeExpression(arg)
	}

	a.checkVariance(d.TypeParams, d)

	prevClass := a.currentClass
	a.currentClass = sym
	for _, member := range d.Members {
		a.analyzeClassMember(member, classScope, sym)
	}
	a.currentClass = prevClass

	return sym
}

func (a *Analyzer) bindCtorParam(p *ast.Parameter, classScope symboltable.ScopeID, owner *symboltable.Symbol) {
	var pt types.Type
	if p.Type != nil {
		pt = a.resolver.Resolve(p.Type)
	}
	if p.DefaultValue != nil {
		a.analyzeExpression(p.DefaultValue)
	}
	paramSym := &symboltable.Symbol{
		Name:                p.Name,
		Kind:                symboltable.Parameter,
		TypeName:            typeRefString(p.Type),
		StructuralType:      pt,
		Mutable:             p.IsProperty && p.PropertyMut,
		DeclarationLocation: p.NamePos,
		DeclarationNode:     p,
	}
	a.declareSymbol(classScope, paramSym)

	if p.IsProperty && owner != nil {
		owner.AddMember(&symboltable.Symbol{
			Name:                p.Name,
			Kind:                symboltable.Property,
			TypeName:            typeRefString(p.Type),
			StructuralType:      pt,
			Mutable:             p.PropertyMut,
			Visibility:          p.Visibility,
			DeclarationLocation: p.NamePos,
			DeclarationNode:     p,
		})
	}
}

func (a *Analyzer) analyzeClassMember(member ast.Declaration, classScope symboltable.ScopeID, owner *symboltable.Symbol) {
	switch m := member.(type) {
	case *ast.PropertyDecl:
		sym := a.analyzePropertyDecl(m, classScope)
		if owner != nil && sym != nil {
			owner.AddMember(sym)
		}
	case *ast.FunDecl:
		sym := a.analyzeFunDecl(m, classScope)
		if owner != nil && sym != nil {
			owner.AddMember(sym)
		}
	case *ast.ConstructorDecl:
		a.analyzeConstructorDecl(m, classScope, owner)
	case *ast.InitBlockDecl:
		a.analyzeBlock(m.Body)
	case *ast.ClassDecl:
		sym := a.analyzeClassDecl(m, classScope)
		if owner != nil {
			owner.AddMember(sym)
		}
	case *ast.InterfaceDecl:
		sym := a.analyzeInterfaceDecl(m, classScope)
		if owner != nil {
			owner.AddMember(sym)
		}
	case *ast.ObjectDecl:
		sym := a.analyzeObjectDecl(m, classScope)
		if owner != nil {
			owner.AddMember(sym)
		}
	case *ast.EnumDecl:
		sym := a.analyzeEnumDecl(m, classScope)
		if owner != nil {
			owner.AddMember(sym)
		}
	}
}

func (a *Analyzer) analyzeConstructorDecl(d *ast.ConstructorDecl, classScope symboltable.ScopeID, owner *symboltable.Symbol) {
	ctorScope := a.newChildScope(symboltable.FunctionScope, d)
	prev := a.pushScope(ctorScope)
	defer a.popScope(prev)

	for _, p := range d.Params {
		var pt types.Type
		if p.Type != nil {
			pt = a.resolver.Resolve(p.Type)
		}
		a.declareSymbol(ctorScope, &symboltable.Symbol{
			Name:                p.Name,
			Kind:                symboltable.Parameter,
			TypeName:            typeRefString(p.Type),
			StructuralType:      pt,
			DeclarationLocation: p.NamePos,
			DeclarationNode:     p,
		})
	}
	for _, arg := range d.DelegateArgs {
		a.analyzeExpression(arg)
	}
	if d.Body != nil {
		a.analyzeBlock(d.Body)
	}
	_ = owner
}

// analyzeInterfaceDecl has no `this` binding and no primary constructor,
// but otherwise follows the same scope/type-parameter/member structure.
func (a *Analyzer) analyzeInterfaceDecl(d *ast.InterfaceDecl, scope symboltable.ScopeID) *symboltable.Symbol {
	sym := a.lookupOrDeclare(scope, d.Name, func() *symboltable.Symbol { return a.predeclareInterface(d, scope) })

	a.resolver.EnterTypeParams(d.TypeParams)
	defer a.resolver.ExitTypeParams()
	if len(d.TypeParams) > 0 {
		a.resolver.RegisterTypeDeclaration(d.Name, d.TypeParams)
	}

	ifaceNames := make([]string, 0, len(d.Interfaces))
	for _, iface := range d.Interfaces {
		ifaceNames = append(ifaceNames, iface.String())
	}
	a.symbols.RegisterSuperType(d.Name, symboltable.SuperTypeInfo{InterfaceNames: ifaceNames})
	sym.InterfaceNames = ifaceNames

	ifaceScope := a.newChildScope(symboltable.ClassScope, d)
	a.symbols.Scope(ifaceScope).OwnerTypeName = d.Name
	prev := a.pushScope(ifaceScope)
	defer a.popScope(prev)

	for _, member := range d.Members {
		a.analyzeClassMember(member, ifaceScope, sym)
	}
	return sym
}

func (a *Analyzer) analyzeObjectDecl(d *ast.ObjectDecl, scope symboltable.ScopeID) *symboltable.Symbol {
	sym := a.lookupOrDeclare(scope, d.Name, func() *symboltable.Symbol { return a.predeclareObject(d, scope) })

	var superName string
	if d.SuperClass != nil {
		superName = d.SuperClass.String()
	}
	ifaceNames := make([]string, 0, len(d.Interfaces))
	for _, iface := range d.Interfaces {
		ifaceNames = append(ifaceNames, iface.String())
	}
	a.symbols.RegisterSuperType(d.Name, symboltable.SuperTypeInfo{SuperClassName: superName, InterfaceNames: ifaceNames})
	sym.SuperClassName = superName
	sym.InterfaceNames = ifaceNames

	objScope := a.newChildScope(symboltable.ClassScope, d)
	a.symbols.Scope(objScope).OwnerTypeName = d.Name
	prev := a.pushScope(objScope)
	defer a.popScope(prev)

	a.declareSymbol(objScope, &symboltable.Symbol{
		Name:                "this",
		Kind:                symboltable.Variable,
		TypeName:            d.Name,
		StructuralType:      types.Class{Name: d.Name},
		DeclarationLocation: d.NamePos,
	})
	for _, member := range d.Members {
		a.analyzeClassMember(member, objScope, sym)
	}
	return sym
}

// analyzeEnumDecl binds each entry as an ENUM_ENTRY symbol of the enum's
// own class type, then visits shared members the same as a class body.
func (a *Analyzer) analyzeEnumDecl(d *ast.EnumDecl, scope symboltable.ScopeID) *symboltable.Symbol {
	sym := a.lookupOrDeclare(scope, d.Name, func() *symboltable.Symbol { return a.predeclareEnum(d, scope) })

	ifaceNames := make([]string, 0, len(d.Interfaces))
	for _, iface := range d.Interfaces {
		ifaceNames = append(ifaceNames, iface.String())
	}
	a.symbols.RegisterSuperType(d.Name, symboltable.SuperTypeInfo{InterfaceNames: ifaceNames})
	sym.InterfaceNames = ifaceNames

	enumScope := a.newChildScope(symboltable.EnumScope, d)
	a.symbols.Scope(enumScope).OwnerTypeName = d.Name
	prev := a.pushScope(enumScope)
	defer a.popScope(prev)

	a.declareSymbol(enumScope, &symboltable.Symbol{
		Name:                "this",
		Kind:                symboltable.Variable,
		TypeName:            d.Name,
		StructuralType:      types.Class{Name: d.Name},
		DeclarationLocation: d.NamePos,
	})
	for _, p := range d.PrimaryCtorParams {
		a.bindCtorParam(p, enumScope, sym)
	}

	for _, entry := range d.Entries {
		for _, arg := range entry.Args {
			a.analyzeExpression(arg)
		}
		entrySym := &symboltable.Symbol{
			Name:                entry.Name,
			Kind:                symboltable.EnumEntry,
			TypeName:            d.Name,
			StructuralType:      types.Class{Name: d.Name},
			DeclarationLocation: entry.NamePos,
			DeclarationNode:     entry,
		}
		a.declareSymbol(enumScope, entrySym)
		sym.AddMember(entrySym)
		if len(entry.Body) > 0 {
			entryScope := a.newChildScope(symboltable.ClassScope, entry)
			entryPrev := a.pushScope(entryScope)
			for _, member := range entry.Body {
				a.analyzeClassMember(member, entryScope, entrySym)
			}
			a.popScope(entryPrev)
		}
	}

	for _, member := range d.Members {
		a.analyzeClassMember(member, enumScope, sym)
	}
	return sym
}
