// Package diag defines the semantic analyzer's diagnostic records:
// severity-tagged messages with a source location and a length, distinct
// from the parser's CompilerError because a diagnostic never aborts
// analysis — the analyzer simply accumulates them and continues.
package diag

import (
	"fmt"
	"strings"

	"github.com/novalang/nova/internal/token"
)

// Severity is how serious a Diagnostic is.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "info"
	}
}

// Diagnostic is one semantic finding: redefinition, val reassignment,
// const-val violations, wrong argument count/type, variance violations,
// and type-mismatch warnings all take this shape.
type Diagnostic struct {
	Severity Severity
	Message  string
	Location token.Position
	Length   int // floored to 1 by New
}

// New creates a Diagnostic, flooring Length to 1 (a diagnostic with no
// real span still needs to underline at least one column).
func New(sev Severity, message string, loc token.Position, length int) Diagnostic {
	if length < 1 {
		length = 1
	}
	return Diagnostic{Severity: sev, Message: message, Location: loc, Length: length}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (%s)", d.Severity, d.Message, d.Location)
}

// Bag accumulates diagnostics during one analysis pass.
type Bag struct {
	items []Diagnostic
}

// Add appends a diagnostic to the bag.
func (b *Bag) Add(d Diagnostic) { b.items = append(b.items, d) }

// Errorf appends an ERROR-severity diagnostic.
func (b *Bag) Errorf(loc token.Position, length int, format string, args ...any) {
	b.Add(New(Error, fmt.Sprintf(format, args...), loc, length))
}

// Warnf appends a WARNING-severity diagnostic.
func (b *Bag) Warnf(loc token.Position, length int, format string, args ...any) {
	b.Add(New(Warning, fmt.Sprintf(format, args...), loc, length))
}

// All returns every diagnostic added so far, in insertion order.
func (b *Bag) All() []Diagnostic { return b.items }

// HasErrors reports whether any ERROR-severity diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Format renders every diagnostic, one per line, sorted by nothing but
// insertion order (callers that want position-sorted output should sort
// All() themselves).
func Format(diags []Diagnostic) string {
	var sb strings.Builder
	for _, d := range diags {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
