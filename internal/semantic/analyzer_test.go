package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/diag"
	"github.com/novalang/nova/internal/lexer"
	"github.com/novalang/nova/internal/parser"
	"github.com/novalang/nova/internal/types"
	"github.com/novalang/nova/pkg/registry"
)

// analyzeSource parses input tolerantly and runs it through a fresh
// Analyzer backed by a small registry stocked with the built-ins the
// integration tests below exercise.
func analyzeSource(t *testing.T, input string) *AnalysisResult {
	t.Helper()
	lx := lexer.New("test.nova", input)
	p := parser.New(lx, "test.nova", input)
	result := p.ParseTolerant()
	require.Empty(t, p.Errors(), "parser errors: %v", p.Errors())

	a := NewAnalyzer(testRegistry())
	return a.Analyze(result.Program, result.TopLevelStatements)
}

func testRegistry() registry.TypeRegistry {
	reg := registry.NewStatic()
	reg.AddFunction("println", "Unit")
	reg.AddFunction("print", "Unit")
	reg.AddMethod("String", registry.MethodSig{Name: "length", ReturnType: "Int"})
	reg.AddMethod("List", registry.MethodSig{Name: "size", ReturnType: "Int"})
	reg.AddMethod("List", registry.MethodSig{Name: "map", ReturnType: "List"})
	reg.AddMethod("List", registry.MethodSig{Name: "firstOrNull", ReturnType: "Int?"})
	return reg
}

func expectNoErrors(t *testing.T, input string) *AnalysisResult {
	t.Helper()
	result := analyzeSource(t, input)
	assert.False(t, result.HasErrors(), "unexpected diagnostics: %s", diag.Format(result.Diagnostics))
	return result
}

func TestAnalyzeSimpleClass(t *testing.T) {
	input := `
		class Point(val x: Int, val y: Int) {
			fun sum(): Int {
				return x + y
			}
		}
	`
	expectNoErrors(t, input)
}

func TestAnalyzeValReassignmentIsError(t *testing.T) {
	input := `
		val x = 1
		x = 2
	`
	result := analyzeSource(t, input)
	require.True(t, result.HasErrors())
}

func TestAnalyzeFunctionReturnTypeInference(t *testing.T) {
	input := `
		fun double(n: Int): Int {
			return n * 2
		}
		val result = double(21)
	`
	expectNoErrors(t, input)
}

func TestAnalyzeNestedScopes(t *testing.T) {
	input := `
		val x = 10
		fun outer() {
			val x = "shadow"
			fun inner() {
				val x = 3.14
				println(x)
			}
		}
	`
	expectNoErrors(t, input)
}

func TestAnalyzeIfExpressionCommonSupertype(t *testing.T) {
	input := `
		val y: Any = if (true) 1 else "two"
	`
	expectNoErrors(t, input)
}

func TestAnalyzeCollectionLiteralElementInference(t *testing.T) {
	input := `
		val xs = [1, 2, 3]
		val n = xs.size
	`
	expectNoErrors(t, input)
}

func TestAnalyzeConstValRejectsNonConstant(t *testing.T) {
	input := `
		fun random(): Int {
			return 4
		}
		const val LUCKY = random()
	`
	result := analyzeSource(t, input)
	require.True(t, result.HasErrors())
}

func TestAnalyzeConstValFoldsArithmetic(t *testing.T) {
	input := `
		const val A = 1 + 2 * 3
	`
	expectNoErrors(t, input)
}

func TestAnalyzeInterfaceAndImplementingClass(t *testing.T) {
	input := `
		interface Greeter {
			fun greet(): String
		}
		class Hello : Greeter {
			fun greet(): String {
				return "hi"
			}
		}
	`
	expectNoErrors(t, input)
}

func TestAnalyzeEnumEntries(t *testing.T) {
	input := `
		enum class Direction {
			NORTH, SOUTH, EAST, WEST
		}
		val d = Direction.NORTH
	`
	expectNoErrors(t, input)
}

func TestAnalyzeLambdaImplicitParameter(t *testing.T) {
	input := `
		val doubled = [1, 2, 3].map { it * 2 }
	`
	expectNoErrors(t, input)
}

func TestAnalyzeElvisOperator(t *testing.T) {
	input := `
		fun firstOrDefault(xs: List<Int>): Int {
			return xs.firstOrNull() ?: 0
		}
	`
	expectNoErrors(t, input)
}

func TestAnalyzeTopLevelStatementsWrapInMain(t *testing.T) {
	input := `
		val greeting = "hello"
		println(greeting)
	`
	result := expectNoErrors(t, input)
	mainSym, ok := result.SymbolTable.Resolve(result.SymbolTable.GlobalScope(), "main")
	require.True(t, ok)
	assert.Equal(t, types.Unit{}, mainSym.StructuralType.(types.Function).ReturnType)
	assert.IsType(t, &ast.FunDecl{}, mainSym.DeclarationNode)
}
