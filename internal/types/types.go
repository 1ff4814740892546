// Package types is the structural type model the semantic analyzer
// computes over: primitives, classes, type parameters, function types,
// and the sentinel Unit/Nothing/Error types. Every variant is nullable or
// non-nullable independent of its other structure.
package types

import "strings"

// Type is the sealed interface every structural type variant implements.
type Type interface {
	String() string
	IsNullable() bool
	// WithNullable returns a copy of the type with its nullability flag
	// set to nullable; the receiver is left unmodified.
	WithNullable(nullable bool) Type
}

// Variance mirrors ast.Variance without importing the ast package (the
// type model must stay free of a dependency on the parser's tree).
type Variance int

const (
	Invariant Variance = iota
	In
	Out
)

func (v Variance) String() string {
	switch v {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return ""
	}
}

// TypeArgument is one argument of a Class type, carrying use-site
// variance. Type is nil and IsWildcard is true for a bare `*`.
type TypeArgument struct {
	Variance   Variance
	Type       Type
	IsWildcard bool
}

func (a TypeArgument) String() string {
	if a.IsWildcard {
		return "*"
	}
	if a.Variance != Invariant {
		return a.Variance.String() + " " + a.Type.String()
	}
	return a.Type.String()
}

// Primitive is one of Nova's built-in value types.
type Primitive struct {
	Name     string // canonical: Int, Long, Float, Double, Boolean, Char, String, Byte, Short
	Nullable bool
}

func (p Primitive) String() string {
	if p.Nullable {
		return p.Name + "?"
	}
	return p.Name
}
func (p Primitive) IsNullable() bool { return p.Nullable }
func (p Primitive) WithNullable(n bool) Type {
	p.Nullable = n
	return p
}

// Class is a named type with an ordered, possibly-empty list of type
// arguments. `Any` and `Number` are represented as Class with no type
// arguments and participate in special-cased subtyping (the assignability
// checker in internal/semantic knows both names specially).
type Class struct {
	Name     string
	TypeArgs []TypeArgument
	Nullable bool
}

func (c Class) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	if len(c.TypeArgs) > 0 {
		sb.WriteString("<")
		for i, a := range c.TypeArgs {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteString(">")
	}
	if c.Nullable {
		sb.WriteString("?")
	}
	return sb.String()
}
func (c Class) IsNullable() bool { return c.Nullable }
func (c Class) WithNullable(n bool) Type {
	c.Nullable = n
	return c
}

// TypeParameter is a reference to a declared generic type parameter
// (`T`), carrying its upper bound for assignability checks.
type TypeParameter struct {
	Name       string
	UpperBound Type // defaults to Any when unbounded; never nil once resolved
	Nullable   bool
}

func (t TypeParameter) String() string {
	if t.Nullable {
		return t.Name + "?"
	}
	return t.Name
}
func (t TypeParameter) IsNullable() bool { return t.Nullable }
func (t TypeParameter) WithNullable(n bool) Type {
	t.Nullable = n
	return t
}

// Function is a function type, `(paramTypes) -> returnType`, optionally
// with an extension receiver.
type Function struct {
	Receiver   Type // nil when none
	ParamTypes []Type
	ReturnType Type
	Nullable   bool
}

func (f Function) String() string {
	var sb strings.Builder
	if f.Receiver != nil {
		sb.WriteString(f.Receiver.String())
		sb.WriteString(".")
	}
	sb.WriteString("(")
	for i, p := range f.ParamTypes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(") -> ")
	if f.ReturnType != nil {
		sb.WriteString(f.ReturnType.String())
	} else {
		sb.WriteString("Unit")
	}
	if f.Nullable {
		sb.WriteString("?")
	}
	return sb.String()
}
func (f Function) IsNullable() bool { return f.Nullable }
func (f Function) WithNullable(n bool) Type {
	f.Nullable = n
	return f
}

// Unit is the single-valued "no meaningful result" type.
type Unit struct{}

func (Unit) String() string            { return "Unit" }
func (Unit) IsNullable() bool          { return false }
func (u Unit) WithNullable(bool) Type  { return u }

// Nothing is the bottom type: non-nullable Nothing is a subtype of
// everything; Nothing? is exactly the type of the `null` literal.
type Nothing struct {
	Nullable bool
}

func (n Nothing) String() string {
	if n.Nullable {
		return "Nothing?"
	}
	return "Nothing"
}
func (n Nothing) IsNullable() bool { return n.Nullable }
func (n Nothing) WithNullable(nullable bool) Type {
	n.Nullable = nullable
	return n
}

// Error is the "unknown / bail-out" type: compatible with everything,
// suppressing downstream diagnostics once inference has failed.
type Error struct{}

func (Error) String() string           { return "<error>" }
func (Error) IsNullable() bool         { return true }
func (e Error) WithNullable(bool) Type { return e }

// Canonical built-in primitive/sentinel constructors, non-nullable unless
// stated. Kept as functions (not package vars) so callers cannot
// accidentally share and mutate one instance — these are value types, but
// this matches the constructor-call idiom used across the type model.
func Int() Type     { return Primitive{Name: "Int"} }
func Long() Type    { return Primitive{Name: "Long"} }
func Float() Type   { return Primitive{Name: "Float"} }
func Double() Type  { return Primitive{Name: "Double"} }
func Boolean() Type { return Primitive{Name: "Boolean"} }
func Char() Type    { return Primitive{Name: "Char"} }
func StringT() Type { return Primitive{Name: "String"} }
func Byte() Type    { return Primitive{Name: "Byte"} }
func Short() Type   { return Primitive{Name: "Short"} }

// Any is the top reference type; Number is the common numeric supertype.
// Both are represented as a bare Class per spec §3.
func Any() Type    { return Class{Name: "Any"} }
func Number() Type { return Class{Name: "Number"} }

// primitiveNames is the canonical set of built-in primitive type names,
// used by the type resolver and inference engine to decide whether a bare
// name denotes a Primitive instead of a user Class.
var primitiveNames = map[string]bool{
	"Int": true, "Long": true, "Float": true, "Double": true,
	"Boolean": true, "Char": true, "String": true, "Byte": true, "Short": true,
}

// IsPrimitiveName reports whether name is one of Nova's built-in
// primitive type names.
func IsPrimitiveName(name string) bool { return primitiveNames[name] }

// numericRank orders numeric primitives for widening: a lower rank widens
// to any higher rank (Int < Long < Float < Double).
var numericRank = map[string]int{"Int": 0, "Long": 1, "Float": 2, "Double": 3}

// IsNumeric reports whether name is one of Nova's numeric primitive names.
func IsNumeric(name string) bool {
	_, ok := numericRank[name]
	return ok
}

// WidenNumeric returns the common numeric type two numeric primitive
// names promote to, by picking the higher rank. Panics if either name is
// not numeric — callers must check IsNumeric first.
func WidenNumeric(a, b string) string {
	ra, oka := numericRank[a]
	rb, okb := numericRank[b]
	if !oka || !okb {
		panic("types: WidenNumeric called with non-numeric name")
	}
	if ra >= rb {
		return a
	}
	return b
}
