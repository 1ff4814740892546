package parser_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/novalang/nova/internal/lexer"
	"github.com/novalang/nova/internal/parser"
)

// TestParseProgramSnapshot parses a representative Nova program exercising
// classes, interfaces, generics, lambdas, and control-flow expressions, and
// snapshots its String() form so accidental grammar
// regressions show up as a diff instead of a silent behavior change.
func TestParseProgramSnapshot(t *testing.T) {
	src := `
interface Shape {
    fun area(): Double
}

class Circle(val radius: Double) : Shape {
    override fun area(): Double = PI * radius * radius
}

class Box<T>(val value: T)

fun describe(shapes: List<Shape>): String {
    val areas = shapes.map { it.area() }
    val total = areas.fold(0.0) { acc, a -> acc + a }
    return when {
        total > 100.0 -> "large"
        total > 0.0 -> "small"
        else -> "empty"
    }
}

val box: Box<Int>? = Box(42)
val label = box?.value ?: -1
`

	lx := lexer.New("snapshot.nova", src)
	p := parser.New(lx, "snapshot.nova", src)
	result := p.ParseTolerant()

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected parse errors: %v", result.Errors)
	}

	snaps.MatchSnapshot(t, result.Program.String())
}
