package ast

import (
	"strings"

	"github.com/novalang/nova/internal/token"
)

// Variance is the declaration-site variance of a type parameter or the
// use-site variance of a type argument.
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

// SimpleType is a bare qualified name, e.g. `String` or `pkg.Foo`.
type SimpleType struct {
	Token         token.Token
	QualifiedName []string
}

func (t *SimpleType) typeRefNode()          {}
func (t *SimpleType) TokenLiteral() string  { return t.Token.Literal }
func (t *SimpleType) Pos() token.Position   { return t.Token.Pos }
func (t *SimpleType) String() string        { return strings.Join(t.QualifiedName, ".") }

// NullableType wraps an inner type reference marked with a trailing `?`.
type NullableType struct {
	Token token.Token
	Inner TypeRef
}

func (t *NullableType) typeRefNode()         {}
func (t *NullableType) TokenLiteral() string { return t.Token.Literal }
func (t *NullableType) Pos() token.Position  { return t.Token.Pos }
func (t *NullableType) String() string       { return t.Inner.String() + "?" }

// TypeArgument is one argument to a generic type, carrying use-site
// variance and an optional wildcard (`*`) marker.
type TypeArgument struct {
	Token      token.Token
	Variance   Variance
	Type       TypeRef // nil when IsWildcard
	IsWildcard bool
}

func (t *TypeArgument) TokenLiteral() string { return t.Token.Literal }
func (t *TypeArgument) Pos() token.Position  { return t.Token.Pos }
func (t *TypeArgument) String() string {
	if t.IsWildcard {
		return "*"
	}
	prefix := ""
	if t.Variance != Invariant {
		prefix = t.Variance.String() + " "
	}
	return prefix + t.Type.String()
}

// GenericType is a qualified name applied to type arguments, e.g.
// `List<out String>`.
type GenericType struct {
	Token         token.Token
	QualifiedName []string
	TypeArgs      []*TypeArgument
}

func (t *GenericType) typeRefNode()         {}
func (t *GenericType) TokenLiteral() string { return t.Token.Literal }
func (t *GenericType) Pos() token.Position  { return t.Token.Pos }
func (t *GenericType) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.QualifiedName, "."))
	sb.WriteString("<")
	for i, arg := range t.TypeArgs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteString(">")
	return sb.String()
}

// FunctionType is a function type reference, e.g. `(Int, String) -> Boolean`
// or, with a receiver, `String.(Int) -> Boolean`.
type FunctionType struct {
	Token      token.Token
	Receiver   TypeRef // nil if none
	ParamTypes []TypeRef
	ReturnType TypeRef
	IsSuspend  bool
}

func (t *FunctionType) typeRefNode()         {}
func (t *FunctionType) TokenLiteral() string { return t.Token.Literal }
func (t *FunctionType) Pos() token.Position  { return t.Token.Pos }
func (t *FunctionType) String() string {
	var sb strings.Builder
	if t.IsSuspend {
		sb.WriteString("suspend ")
	}
	if t.Receiver != nil {
		sb.WriteString(t.Receiver.String())
		sb.WriteString(".")
	}
	sb.WriteString("(")
	for i, p := range t.ParamTypes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(") -> ")
	sb.WriteString(t.ReturnType.String())
	return sb.String()
}

// TypeParameter is a declared generic parameter of a class/interface/
// function, e.g. `out T : Comparable<T>` or a `reified` function parameter.
type TypeParameter struct {
	Token      token.Token
	Name       string
	Variance   Variance
	UpperBound TypeRef // nil if unbounded (implicit Any?)
	IsReified  bool
}

func (t *TypeParameter) TokenLiteral() string { return t.Token.Literal }
func (t *TypeParameter) Pos() token.Position  { return t.Token.Pos }
func (t *TypeParameter) String() string {
	var sb strings.Builder
	if t.IsReified {
		sb.WriteString("reified ")
	}
	if t.Variance != Invariant {
		sb.WriteString(t.Variance.String())
		sb.WriteString(" ")
	}
	sb.WriteString(t.Name)
	if t.UpperBound != nil {
		sb.WriteString(" : ")
		sb.WriteString(t.UpperBound.String())
	}
	return sb.String()
}
