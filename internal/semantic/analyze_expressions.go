package semantic

import (
	"github.com/samber/lo"

	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/symboltable"
	"github.com/novalang/nova/internal/token"
	"github.com/novalang/nova/internal/types"
)

// analyzeExpression infers e's type, recording it in the analyzer's
// expression-type map before returning it.
func (a *Analyzer) analyzeExpression(e ast.Expression) types.Type {
	if e == nil {
		return nil
	}
	t := a.inferExpression(e)
	a.exprTypes[e] = t
	return t
}

func (a *Analyzer) inferExpression(e ast.Expression) types.Type {
	switch ex := e.(type) {
	case *ast.Literal:
		return a.inferLiteral(ex)
	case *ast.Identifier:
		return a.inferIdentifier(ex)
	case *ast.ThisExpr:
		return a.inferThis(ex)
	case *ast.SuperExpr:
		return a.inferSuper(ex)
	case *ast.MemberExpr:
		recv := a.analyzeExpression(ex.Receiver)
		return a.memberType(recv, ex.Name)
	case *ast.CallExpr:
		return a.inferCall(ex)
	case *ast.AssignExpr:
		return a.inferAssign(ex)
	case *ast.BinaryExpr:
		return a.inferBinary(ex)
	case *ast.UnaryExpr:
		return a.inferUnary(ex)
	case *ast.IndexExpr:
		recv := a.analyzeExpression(ex.Receiver)
		a.analyzeExpression(ex.Index)
		return a.elementTypeOf(recv)
	case *ast.SliceExpr:
		recv := a.analyzeExpression(ex.Receiver)
		a.analyzeExpression(ex.From)
		a.analyzeExpression(ex.To)
		return recv
	case *ast.LambdaExpr:
		return a.inferLambda(ex, nil)
	case *ast.IfExpr:
		a.analyzeExpression(ex.Condition)
		t1 := a.analyzeExpression(ex.Then)
		t2 := a.analyzeExpression(ex.Else)
		return a.commonSupertype(t1, t2)
	case *ast.WhenExpr:
		return a.inferWhenExpr(ex)
	case *ast.TryExpr:
		return a.inferTryExpr(ex)
	case *ast.AwaitExpr:
		return a.analyzeExpression(ex.Value)
	case *ast.CollectionLiteral:
		return a.inferCollectionLiteral(ex)
	case *ast.RangeExpr:
		a.analyzeExpression(ex.From)
		a.analyzeExpression(ex.To)
		if ex.Step != nil {
			a.analyzeExpression(ex.Step)
		}
		return types.Class{Name: "Range"}
	case *ast.StringInterpolation:
		for _, p := range ex.Parts {
			if p.Expr != nil {
				a.analyzeExpression(p.Expr)
			}
		}
		return types.StringT()
	case *ast.TypeCheckExpr:
		a.analyzeExpression(ex.Value)
		return types.Boolean()
	case *ast.TypeCastExpr:
		a.analyzeExpression(ex.Value)
		t := a.resolver.Resolve(ex.Type)
		if ex.Safe && t != nil {
			t = t.WithNullable(true)
		}
		return t
	case *ast.SpreadExpr:
		return a.analyzeExpression(ex.Value)
	case *ast.PipelineExpr:
		return a.inferPipeline(ex)
	case *ast.MethodRefExpr:
		return a.inferMethodRef(ex)
	case *ast.ObjectLiteralExpr:
		return a.inferObjectLiteral(ex)
	case *ast.ElvisExpr:
		left := a.analyzeExpression(ex.Left)
		fallback := a.analyzeExpression(ex.Fallback)
		if left == nil {
			return fallback
		}
		return left.WithNullable(false)
	case *ast.SafeCallExpr:
		recv := a.analyzeExpression(ex.Receiver)
		t := a.memberType(recv, ex.Name)
		if t == nil {
			return nil
		}
		return t.WithNullable(true)
	case *ast.SafeIndexExpr:
		recv := a.analyzeExpression(ex.Receiver)
		a.analyzeExpression(ex.Index)
		elem := a.elementTypeOf(recv)
		if elem == nil {
			return nil
		}
		return elem.WithNullable(true)
	case *ast.NotNullExpr:
		t := a.analyzeExpression(ex.Value)
		if t == nil {
			return nil
		}
		return t.WithNullable(false)
	case *ast.ErrorPropagationExpr:
		return a.analyzeExpression(ex.Value)
	case *ast.ScopeShorthandExpr:
		// An implicit-receiver continuation has no statically known
		// receiver type in this analyzer; left unresolved.
		return nil
	case *ast.JumpExpr:
		if ex.Value != nil {
			a.analyzeExpression(ex.Value)
		}
		return types.Nothing{}
	case *ast.PlaceholderExpr:
		if sym, ok := a.symbols.Resolve(a.scope, "it"); ok {
			return a.symbolType(sym)
		}
		return nil
	case *ast.ConditionalExpr:
		a.analyzeExpression(ex.Condition)
		t1 := a.analyzeExpression(ex.Then)
		t2 := a.analyzeExpression(ex.Else)
		return a.commonSupertype(t1, t2)
	default:
		return nil
	}
}

func (a *Analyzer) inferLiteral(ex *ast.Literal) types.Type {
	switch ex.Kind {
	case ast.LiteralInt:
		return types.Int()
	case ast.LiteralLong:
		return types.Long()
	case ast.LiteralFloat:
		return types.Float()
	case ast.LiteralDouble:
		return types.Double()
	case ast.LiteralBoolean:
		return types.Boolean()
	case ast.LiteralChar:
		return types.Char()
	case ast.LiteralString:
		return types.StringT()
	case ast.LiteralNull:
		return types.Nothing{Nullable: true}
	}
	return nil
}

// symbolType returns a symbol's structural type, resolving its stored
// type-name string as a fallback when inference hasn't touched it yet.
func (a *Analyzer) symbolType(sym *symboltable.Symbol) types.Type {
	if sym.StructuralType != nil {
		return sym.StructuralType
	}
	if sym.TypeName != "" {
		return a.resolveTypeName(sym.TypeName)
	}
	return nil
}

func (a *Analyzer) inferIdentifier(ex *ast.Identifier) types.Type {
	if ex.Name == "it" {
		if sym, ok := a.symbols.Resolve(a.scope, "it"); ok {
			return a.symbolType(sym)
		}
	}
	sym, ok := a.symbols.Resolve(a.scope, ex.Name)
	if !ok {
		return nil
	}
	return a.symbolType(sym)
}

func (a *Analyzer) inferThis(ex *ast.ThisExpr) types.Type {
	sym, ok := a.symbols.Resolve(a.scope, "this")
	if !ok {
		return nil
	}
	return a.symbolType(sym)
}

func (a *Analyzer) inferSuper(ex *ast.SuperExpr) types.Type {
	if ex.Qualifier != "" {
		return types.Class{Name: ex.Qualifier}
	}
	if a.currentClass != nil && a.currentClass.SuperClassName != "" {
		return types.Class{Name: a.currentClass.SuperClassName}
	}
	return nil
}

// baseClassName extracts the bare name a member/method lookup keys on.
func baseClassName(t types.Type) string {
	switch v := t.(type) {
	case types.Class:
		return v.Name
	case types.Primitive:
		return v.Name
	case types.TypeParameter:
		return baseClassName(v.UpperBound)
	}
	return ""
}

func (a *Analyzer) lookupClassSymbol(name string) *symboltable.Symbol {
	syms := a.symbols.GetAllSymbolsOfKind(
		symboltable.ClassSym, symboltable.InterfaceSym,
		symboltable.ObjectSym, symboltable.EnumSym,
	)
	found, ok := lo.Find(syms, func(s *symboltable.Symbol) bool { return s.Name == name })
	if !ok {
		return nil
	}
	return found
}

// memberType resolves receiver.name: first against the receiver's own
// class symbol and its superclass chain, then against the external
// TypeRegistry's methods for the receiver's base type, falling back to
// Any for a known-but-unresolvable receiver.
func (a *Analyzer) memberType(recv types.Type, name string) types.Type {
	if recv == nil {
		return nil
	}
	base := baseClassName(recv)
	if base == "" {
		return types.Any()
	}

	for classSym, superName := a.lookupClassSymbol(base), ""; classSym != nil; classSym, superName = a.lookupClassSymbol(superName), "" {
		if m, ok := classSym.Member(name); ok {
			return a.symbolType(m)
		}
		if classSym.SuperClassName == "" {
			break
		}
		superName = classSym.SuperClassName
	}

	for _, m := range a.registry.GetMethodsForType(base) {
		if m.Name == name {
			return a.resolveTypeName(m.ReturnType)
		}
	}
	return types.Any()
}

func (a *Analyzer) inferAssign(ex *ast.AssignExpr) types.Type {
	valType := a.analyzeExpression(ex.Value)
	targetType := a.analyzeExpression(ex.Target)

	if id, ok := ex.Target.(*ast.Identifier); ok {
		if sym, found := a.symbols.Resolve(a.scope, id.Name); found {
			if !sym.Mutable && (sym.Kind == symboltable.Variable || sym.Kind == symboltable.Property) {
				a.diags.Errorf(id.Pos(), len(id.Name), "val %q cannot be reassigned", id.Name)
			}
		}
	}

	if targetType != nil && valType != nil && !a.isAssignable(targetType, valType) {
		a.diags.Warnf(ex.Pos(), 1, "value of type %q is not assignable to %q", valType.String(), targetType.String())
	}
	return types.Unit{}
}

func isStringType(t types.Type) bool {
	p, ok := t.(types.Primitive)
	return ok && p.Name == "String"
}

func primName(t types.Type) (string, bool) {
	p, ok := t.(types.Primitive)
	if !ok {
		return "", false
	}
	return p.Name, true
}

func (a *Analyzer) numericPromote(lt, rt types.Type) types.Type {
	ln, lok := primName(lt)
	rn, rok := primName(rt)
	if lok && rok && types.IsNumeric(ln) && types.IsNumeric(rn) {
		return types.Primitive{Name: types.WidenNumeric(ln, rn)}
	}
	return nil
}

func (a *Analyzer) pairType(lt, rt types.Type) types.Type {
	if lt == nil || rt == nil {
		return types.Class{Name: "Pair"}
	}
	return types.Class{Name: "Pair", TypeArgs: []types.TypeArgument{{Type: lt}, {Type: rt}}}
}

func (a *Analyzer) inferBinary(ex *ast.BinaryExpr) types.Type {
	lt := a.analyzeExpression(ex.Left)
	rt := a.analyzeExpression(ex.Right)

	switch ex.Op {
	case token.PLUS:
		if isStringType(lt) || isStringType(rt) {
			return types.StringT()
		}
		return a.numericPromote(lt, rt)
	case token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		return a.numericPromote(lt, rt)
	case token.EQ_EQ, token.EXCL_EQ, token.EQ_EQ_EQ, token.EXCL_EQ_EQ,
		token.LESS, token.GREATER, token.LESS_EQ, token.GREATER_EQ,
		token.AMP_AMP, token.PIPE_PIPE, token.IN, token.INSOFT:
		return types.Boolean()
	case token.DOTDOT, token.DOTDOT_LESS:
		return types.Class{Name: "Range"}
	case token.TO:
		return a.pairType(lt, rt)
	default:
		return nil
	}
}

func (a *Analyzer) inferUnary(ex *ast.UnaryExpr) types.Type {
	operand := a.analyzeExpression(ex.Operand)
	if ex.Op == token.EXCLAMATION {
		return types.Boolean()
	}
	return operand
}

func (a *Analyzer) elementTypeOf(t types.Type) types.Type {
	switch v := t.(type) {
	case types.Primitive:
		if v.Name == "String" {
			return types.StringT()
		}
		return nil
	case types.Class:
		switch v.Name {
		case "List", "Array", "Set":
			if len(v.TypeArgs) > 0 {
				return v.TypeArgs[0].Type
			}
		case "Map":
			if len(v.TypeArgs) > 1 {
				return v.TypeArgs[1].Type
			}
		case "Range":
			return types.Int()
		}
	}
	return nil
}

func (a *Analyzer) inferLambda(ex *ast.LambdaExpr, expectedParamTypes []types.Type) types.Type {
	lambdaScope := a.newChildScope(symboltable.LambdaScope, ex)
	prev := a.pushScope(lambdaScope)
	defer a.popScope(prev)

	var paramTypes []types.Type
	if len(ex.Params) > 0 {
		paramTypes = make([]types.Type, 0, len(ex.Params))
		for i, p := range ex.Params {
			var pt types.Type
			if p.Type != nil {
				pt = a.resolver.Resolve(p.Type)
			} else if i < len(expectedParamTypes) {
				pt = expectedParamTypes[i]
			}
			paramTypes = append(paramTypes, pt)
			a.declareSymbol(lambdaScope, &symboltable.Symbol{
				Name:                p.Name,
				Kind:                symboltable.Parameter,
				StructuralType:      pt,
				DeclarationLocation: p.NamePos,
				DeclarationNode:     p,
			})
		}
	} else {
		var itType types.Type
		if len(expectedParamTypes) > 0 {
			itType = expectedParamTypes[0]
		}
		paramTypes = []types.Type{itType}
		a.declareSymbol(lambdaScope, &symboltable.Symbol{
			Name:           "it",
			Kind:           symboltable.Parameter,
			StructuralType: itType,
		})
	}

	var resultType types.Type
	for i, st := range ex.Body {
		if i == len(ex.Body)-1 {
			if es, ok := st.(*ast.ExpressionStmt); ok {
				resultType = a.analyzeExpression(es.Expr)
				continue
			}
		}
		a.analyzeStatement(st)
	}
	return types.Function{ParamTypes: paramTypes, ReturnType: coalesceUnit(resultType)}
}

func (a *Analyzer) inferWhenExpr(ex *ast.WhenExpr) types.Type {
	subjType := a.analyzeExpression(ex.Subject)

	if ex.Binding != "" {
		whenScope := a.newChildScope(symboltable.BlockScope, ex)
		prev := a.pushScope(whenScope)
		defer a.popScope(prev)
		a.declareSymbol(whenScope, &symboltable.Symbol{
			Name:                ex.Binding,
			Kind:                symboltable.Variable,
			StructuralType:      subjType,
			DeclarationLocation: ex.Pos(),
		})
	}

	var result types.Type
	first := true
	for _, br := range ex.Branches {
		for _, c := range br.Conditions {
			a.analyzeExpression(c)
		}
		bt := a.analyzeExpression(br.Body)
		if first {
			result = bt
			first = false
		} else {
			result = a.commonSupertype(result, bt)
		}
	}
	return result
}

func (a *Analyzer) inferTryExpr(ex *ast.TryExpr) types.Type {
	result := a.analyzeExpression(ex.Body)
	for _, c := range ex.Catches {
		catchScope := a.newChildScope(symboltable.BlockScope, nil)
		prev := a.pushScope(catchScope)
		a.declareSymbol(catchScope, &symboltable.Symbol{
			Name:                c.VarName,
			Kind:                symboltable.Variable,
			TypeName:            typeRefString(c.VarType),
			StructuralType:      a.resolver.Resolve(c.VarType),
			DeclarationLocation: ex.Pos(),
		})
		ct := a.analyzeExpression(c.Body)
		a.popScope(prev)
		result = a.commonSupertype(result, ct)
	}
	if ex.Finally != nil {
		a.analyzeBlock(ex.Finally)
	}
	return result
}

func mapAnalyzeAll(a *Analyzer, exprs []ast.Expression) []types.Type {
	out := make([]types.Type, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, a.analyzeExpression(e))
	}
	return out
}

func typeArgsOrEmpty(t types.Type) []types.TypeArgument {
	if t == nil {
		return nil
	}
	return []types.TypeArgument{{Type: t}}
}

func (a *Analyzer) leastCommonSupertypeAll(ts []types.Type) types.Type {
	var result types.Type
	for _, t := range ts {
		if t == nil {
			continue
		}
		if result == nil {
			result = t
			continue
		}
		result = a.commonSupertype(result, t)
	}
	return result
}

func (a *Analyzer) inferCollectionLiteral(ex *ast.CollectionLiteral) types.Type {
	switch ex.Kind {
	case ast.CollectionMap:
		keyTypes := mapAnalyzeAll(a, ex.Keys)
		valTypes := mapAnalyzeAll(a, ex.Values)
		k := a.leastCommonSupertypeAll(keyTypes)
		v := a.leastCommonSupertypeAll(valTypes)
		if k == nil || v == nil {
			return types.Class{Name: "Map"}
		}
		return types.Class{Name: "Map", TypeArgs: []types.TypeArgument{{Type: k}, {Type: v}}}
	case ast.CollectionSet:
		elemTypes := mapAnalyzeAll(a, ex.Elements)
		elem := a.leastCommonSupertypeAll(elemTypes)
		return types.Class{Name: "Set", TypeArgs: typeArgsOrEmpty(elem)}
	default:
		elemTypes := mapAnalyzeAll(a, ex.Elements)
		elem := a.leastCommonSupertypeAll(elemTypes)
		return types.Class{Name: "List", TypeArgs: typeArgsOrEmpty(elem)}
	}
}

func (a *Analyzer) inferPipeline(ex *ast.PipelineExpr) types.Type {
	a.analyzeExpression(ex.Value)
	funcType := a.analyzeExpression(ex.Func)
	return a.callResultOf(funcType)
}

func (a *Analyzer) inferMethodRef(ex *ast.MethodRefExpr) types.Type {
	var recvType types.Type
	if ex.Receiver != nil {
		recvType = a.analyzeExpression(ex.Receiver)
	} else if ex.TypeName != nil {
		recvType = a.resolver.Resolve(ex.TypeName)
	}
	if recvType == nil {
		return nil
	}
	return types.Function{Receiver: recvType, ReturnType: a.memberType(recvType, ex.Method)}
}

func (a *Analyzer) inferObjectLiteral(ex *ast.ObjectLiteralExpr) types.Type {
	name := "<anonymous>"
	if ex.SuperClass != nil {
		name = ex.SuperClass.String()
	}
	for _, arg := range ex.SuperArgs {
		a.analyzeExpression(arg)
	}

	objScope := a.newChildScope(symboltable.ClassScope, ex)
	prev := a.pushScope(objScope)
	defer a.popScope(prev)

	a.declareSymbol(objScope, &symboltable.Symbol{
		Name:           "this",
		Kind:           symboltable.Variable,
		TypeName:       name,
		StructuralType: types.Class{Name: name},
	})

	fake := &symboltable.Symbol{Name: name, Kind: symboltable.ObjectSym, StructuralType: types.Class{Name: name}}
	if ex.SuperClass != nil {
		fake.SuperClassName = name
	}
	for _, m := range ex.Members {
		a.analyzeClassMember(m, objScope, fake)
	}
	return types.Class{Name: name}
}
