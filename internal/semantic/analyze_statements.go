package semantic

import (
	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/symboltable"
)

func (a *Analyzer) analyzeStatement(s ast.Statement) {
	if s == nil {
		return
	}
	switch st := s.(type) {
	case *ast.Block:
		a.analyzeBlock(st)
	case *ast.ExpressionStmt:
		a.analyzeExpression(st.Expr)
	case *ast.DeclarationStmt:
		a.predeclare(st.Decl, a.scope)
		a.analyzeDeclaration(st.Decl, a.scope)
	case *ast.IfStmt:
		a.analyzeExpression(st.Condition)
		a.analyzeStatement(st.Then)
		if st.Else != nil {
			a.analyzeStatement(st.Else)
		}
	case *ast.WhenStmt:
		a.analyzeWhenStmt(st)
	case *ast.ForStmt:
		a.analyzeForStmt(st)
	case *ast.WhileStmt:
		a.analyzeExpression(st.Condition)
		a.loopDepth++
		a.analyzeStatement(st.Body)
		a.loopDepth--
	case *ast.DoWhileStmt:
		a.loopDepth++
		a.analyzeStatement(st.Body)
		a.loopDepth--
		a.analyzeExpression(st.Condition)
	case *ast.TryStmt:
		a.analyzeTryStmt(st)
	case *ast.ReturnStmt:
		if st.Value != nil {
			a.analyzeExpression(st.Value)
		}
	case *ast.BreakStmt, *ast.ContinueStmt:
		// No expression to type; no check is made here (or in the parser)
		// that break/continue appears inside a loop.
	case *ast.ThrowStmt:
		a.analyzeExpression(st.Value)
	case *ast.GuardStmt:
		a.analyzeExpression(st.Condition)
		a.analyzeBlock(st.ElseBody)
	case *ast.UseStmt:
		a.analyzeUseStmt(st)
	}
}

func (a *Analyzer) analyzeBlock(b *ast.Block) {
	if b == nil {
		return
	}
	blockScope := a.newChildScope(symboltable.BlockScope, b)
	prev := a.pushScope(blockScope)
	defer a.popScope(prev)
	for _, s := range b.Statements {
		a.analyzeStatement(s)
	}
}

func (a *Analyzer) analyzeWhenStmt(st *ast.WhenStmt) {
	subjType := a.analyzeExpression(st.Subject)

	if st.Binding != "" {
		whenScope := a.newChildScope(symboltable.BlockScope, st)
		prev := a.pushScope(whenScope)
		a.declareSymbol(whenScope, &symboltable.Symbol{
			Name:                st.Binding,
			Kind:                symboltable.Variable,
			StructuralType:      subjType,
			DeclarationLocation: st.Pos(),
		})
		defer a.popScope(prev)
	}

	for _, br := range st.Branches {
		for _, cond := range br.Conditions {
			a.analyzeExpression(cond)
		}
		a.analyzeStatement(br.Body)
	}
}

func (a *Analyzer) analyzeForStmt(st *ast.ForStmt) {
	iterableType := a.analyzeExpression(st.Iterable)

	forScope := a.newChildScope(symboltable.BlockScope, st)
	prev := a.pushScope(forScope)
	defer a.popScope(prev)

	elemType := a.elementTypeOf(iterableType)
	if len(st.DestructNames) > 0 {
		for i, name := range st.DestructNames {
			compType := a.memberType(elemType, componentName(i))
			a.declareSymbol(forScope, &symboltable.Symbol{
				Name:                name,
				Kind:                symboltable.Variable,
				StructuralType:      compType,
				DeclarationLocation: st.Pos(),
			})
		}
	} else {
		varType := elemType
		if st.VarType != nil {
			varType = a.resolver.Resolve(st.VarType)
		}
		a.declareSymbol(forScope, &symboltable.Symbol{
			Name:                st.VarName,
			Kind:                symboltable.Variable,
			StructuralType:      varType,
			DeclarationLocation: st.Pos(),
		})
	}

	a.loopDepth++
	a.analyzeStatement(st.Body)
	a.loopDepth--
}

func (a *Analyzer) analyzeTryStmt(st *ast.TryStmt) {
	a.analyzeBlock(st.Body)
	for _, c := range st.Catches {
		catchScope := a.newChildScope(symboltable.BlockScope, c.Body)
		prev := a.pushScope(catchScope)
		a.declareSymbol(catchScope, &symboltable.Symbol{
			Name:                c.VarName,
			Kind:                symboltable.Variable,
			TypeName:            typeRefString(c.VarType),
			StructuralType:      a.resolver.Resolve(c.VarType),
			DeclarationLocation: c.Token.Pos,
		})
		for _, s := range c.Body.Statements {
			a.analyzeStatement(s)
		}
		a.popScope(prev)
	}
	if st.Finally != nil {
		a.analyzeBlock(st.Finally)
	}
}

func (a *Analyzer) analyzeUseStmt(st *ast.UseStmt) {
	resourceType := a.analyzeExpression(st.Resource)
	useScope := a.newChildScope(symboltable.BlockScope, st)
	prev := a.pushScope(useScope)
	defer a.popScope(prev)
	a.declareSymbol(useScope, &symboltable.Symbol{
		Name:                st.VarName,
		Kind:                symboltable.Variable,
		StructuralType:      resourceType,
		DeclarationLocation: st.Pos(),
	})
	for _, s := range st.Body.Statements {
		a.analyzeStatement(s)
	}
}
