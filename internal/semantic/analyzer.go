// Package semantic builds the symbol table and type information for a
// parsed Nova program: scope/symbol construction (§4.4), type inference
// (§4.5), generic unification (§4.6), assignability (§4.7), variance
// (§4.8), and the remaining compile-time checks (§4.9), consulting a
// registry.TypeRegistry for the built-in surface (§4.10).
package semantic

import (
	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/diag"
	"github.com/novalang/nova/internal/symboltable"
	"github.com/novalang/nova/internal/token"
	"github.com/novalang/nova/internal/typeresolver"
	"github.com/novalang/nova/internal/types"
	"github.com/novalang/nova/pkg/registry"
)

// Analyzer walks a Program, building a SymbolTable and a diagnostic bag
// while computing a type for every expression it visits.
type Analyzer struct {
	registry registry.TypeRegistry
	resolver *typeresolver.Resolver
	symbols  *symboltable.SymbolTable
	diags    diag.Bag

	exprTypes map[ast.Expression]types.Type
	constVals map[string]constValue

	scope        symboltable.ScopeID
	currentClass *symboltable.Symbol
	loopDepth    int
}

// NewAnalyzer creates an Analyzer against reg, pre-populating the global
// scope from reg's built-in functions and constants. A nil reg behaves
// like an empty registry (no built-ins beyond the language's own).
func NewAnalyzer(reg registry.TypeRegistry) *Analyzer {
	if reg == nil {
		reg = registry.NewStatic()
	}
	a := &Analyzer{
		registry:  reg,
		resolver:  typeresolver.New(),
		symbols:   symboltable.New(),
		exprTypes: make(map[ast.Expression]types.Type),
		constVals: make(map[string]constValue),
	}
	a.scope = a.symbols.GlobalScope()
	a.populateBuiltins()
	return a
}

// Analyze runs a full pass over program, wrapping any top-level
// statements collected outside a declaration into a synthetic `main`
// first. Declarations are predeclared (so forward references within the
// same scope resolve) before being fully analyzed.
func (a *Analyzer) Analyze(program *ast.Program, topLevelStatements []ast.Statement) *AnalysisResult {
	if len(topLevelStatements) > 0 {
		program = a.wrapTopLevel(program, topLevelStatements)
	}

	for _, decl := range program.Declarations {
		a.predeclare(decl, a.scope)
	}
	for _, decl := range program.Declarations {
		a.analyzeDeclaration(decl, a.scope)
	}

	return &AnalysisResult{
		SymbolTable: a.symbols,
		Diagnostics: a.diags.All(),
		exprTypes:   a.exprTypes,
	}
}

// wrapTopLevel appends a synthetic `fun main()` holding every top-level
// statement that wasn't itself a declaration, so a script-style file
// analyzes the same way a function body would.
func (a *Analyzer) wrapTopLevel(program *ast.Program, stmts []ast.Statement) *ast.Program {
	pos := token.Position{Line: 1, Column: 1}
	if len(stmts) > 0 {
		pos = stmts[0].Pos()
	}
	tok := token.Token{Type: token.FUN, Literal: "fun", Pos: pos}

	main := &ast.FunDecl{
		Token:   tok,
		Name:    "main",
		NamePos: pos,
		Body:    &ast.Block{Token: tok, Statements: stmts},
	}

	out := &ast.Program{Package: program.Package, Imports: program.Imports}
	out.Declarations = append(append([]ast.Declaration{}, program.Declarations...), main)
	return out
}

func (a *Analyzer) predeclare(decl ast.Declaration, scope symboltable.ScopeID) {
	switch d := decl.(type) {
	case *ast.ClassDecl:
		a.predeclareClass(d, scope)
	case *ast.InterfaceDecl:
		a.predeclareInterface(d, scope)
	case *ast.ObjectDecl:
		a.predeclareObject(d, scope)
	case *ast.EnumDecl:
		a.predeclareEnum(d, scope)
	case *ast.FunDecl:
		a.predeclareFun(d, scope)
	case *ast.PropertyDecl:
		a.predeclareProperty(d, scope)
	case *ast.TypeAliasDecl:
		a.predeclareTypeAlias(d, scope)
	}
}

func (a *Analyzer) analyzeDeclaration(decl ast.Declaration, scope symboltable.ScopeID) {
	switch d := decl.(type) {
	case *ast.ClassDecl:
		a.analyzeClassDecl(d, scope)
	case *ast.InterfaceDecl:
		a.analyzeInterfaceDecl(d, scope)
	case *ast.ObjectDecl:
		a.analyzeObjectDecl(d, scope)
	case *ast.EnumDecl:
		a.analyzeEnumDecl(d, scope)
	case *ast.FunDecl:
		a.analyzeFunDecl(d, scope)
	case *ast.PropertyDecl:
		a.analyzePropertyDecl(d, scope)
	case *ast.TypeAliasDecl:
		// Aliased types resolve lazily through resolveTypeName at use sites;
		// nothing further to check at the declaration itself.
	case *ast.DestructuringDecl:
		a.analyzeDestructuring(d, scope)
	}
}
