// Package ast defines the Abstract Syntax Tree node types produced by the
// parser: a closed set of variants grouped into declarations, statements,
// expressions, and type references. Nodes are immutable after construction
// and carry their own source position for diagnostics.
package ast

import (
	"strings"

	"github.com/novalang/nova/internal/token"
)

// Node is the base interface every AST node satisfies.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// Declaration is any node introducing a name into a scope at the top level
// or inside a class/interface/object body.
type Declaration interface {
	Node
	declarationNode()
}

// TypeRef is a parsed, unresolved type reference; the type resolver turns
// one into a types.Type.
type TypeRef interface {
	Node
	typeRefNode()
}

// Program is the root node: an optional package clause, its imports, and
// its top-level declarations. Top-level statements that are not
// declarations are collected separately by the parser (see ParseResult)
// and wrapped by the analyzer into a synthetic `main`.
type Program struct {
	Package      *PackageDecl
	Imports      []*ImportDecl
	Declarations []Declaration
}

func (p *Program) TokenLiteral() string {
	if p.Package != nil {
		return p.Package.TokenLiteral()
	}
	if len(p.Declarations) > 0 {
		return p.Declarations[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var sb strings.Builder
	if p.Package != nil {
		sb.WriteString(p.Package.String())
		sb.WriteString("\n")
	}
	for _, imp := range p.Imports {
		sb.WriteString(imp.String())
		sb.WriteString("\n")
	}
	for _, decl := range p.Declarations {
		sb.WriteString(decl.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (p *Program) Pos() token.Position {
	if p.Package != nil {
		return p.Package.Pos()
	}
	if len(p.Declarations) > 0 {
		return p.Declarations[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// Modifiers captures the visibility/inheritance/behavioral keywords that
// can prefix a declaration. Zero value means "no modifiers given" (the
// analyzer applies defaults: PUBLIC visibility, non-open, non-abstract).
type Modifiers struct {
	Visibility  Visibility
	Open        bool
	Override    bool
	Abstract    bool
	Sealed      bool
	Final       bool
	Operator    bool
	Suspend     bool
	Const       bool
	Inline      bool
	Companion   bool
	Data        bool
	Vararg      bool
	Crossinline bool
	Static      bool
}

// Visibility is the declared access level of a declaration.
type Visibility int

const (
	// VisibilityDefault means no visibility keyword was written; the
	// analyzer treats this the same as VisibilityPublic.
	VisibilityDefault Visibility = iota
	VisibilityPublic
	VisibilityPrivate
	VisibilityProtected
	VisibilityInternal
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityPrivate:
		return "private"
	case VisibilityProtected:
		return "protected"
	case VisibilityInternal:
		return "internal"
	default:
		return ""
	}
}

// Annotation is a parsed `@Name(args)` attached to a declaration.
type Annotation struct {
	Token token.Token
	Name  string
	Args  []Expression
}

func (a *Annotation) TokenLiteral() string { return a.Token.Literal }
func (a *Annotation) Pos() token.Position  { return a.Token.Pos }
func (a *Annotation) String() string {
	var sb strings.Builder
	sb.WriteString("@")
	sb.WriteString(a.Name)
	if len(a.Args) > 0 {
		sb.WriteString("(")
		for i, arg := range a.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.String())
		}
		sb.WriteString(")")
	}
	return sb.String()
}
