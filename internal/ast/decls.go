package ast

import (
	"strings"

	"github.com/novalang/nova/internal/token"
)

// Parameter is a function, constructor, or lambda parameter. When
// IsProperty is set (a primary-constructor parameter declared with `val`
// or `var`), the analyzer also promotes it to a class member.
type Parameter struct {
	Token        token.Token
	Name         string
	NamePos      token.Position
	Type         TypeRef // nil when inferred from a default value or `it`
	DefaultValue Expression
	IsVararg     bool
	IsProperty   bool
	PropertyMut  bool // true if declared `var`, false if `val` (only when IsProperty)
	Visibility   Visibility
}

func (p *Parameter) TokenLiteral() string { return p.Token.Literal }
func (p *Parameter) Pos() token.Position  { return p.Token.Pos }
func (p *Parameter) String() string {
	var sb strings.Builder
	if p.IsVararg {
		sb.WriteString("vararg ")
	}
	sb.WriteString(p.Name)
	if p.Type != nil {
		sb.WriteString(": ")
		sb.WriteString(p.Type.String())
	}
	if p.DefaultValue != nil {
		sb.WriteString(" = ")
		sb.WriteString(p.DefaultValue.String())
	}
	return sb.String()
}

// PackageDecl is the optional leading `package a.b.c` clause.
type PackageDecl struct {
	Token token.Token
	Name  []string
}

func (d *PackageDecl) declarationNode()      {}
func (d *PackageDecl) TokenLiteral() string  { return d.Token.Literal }
func (d *PackageDecl) Pos() token.Position   { return d.Token.Pos }
func (d *PackageDecl) String() string        { return "package " + strings.Join(d.Name, ".") }

// ImportDecl is a single `import a.b.C` (optionally `as Alias`) clause.
type ImportDecl struct {
	Token token.Token
	Path  []string
	Alias string // empty if not aliased
}

func (d *ImportDecl) declarationNode()     {}
func (d *ImportDecl) TokenLiteral() string { return d.Token.Literal }
func (d *ImportDecl) Pos() token.Position  { return d.Token.Pos }
func (d *ImportDecl) String() string {
	s := "import " + strings.Join(d.Path, ".")
	if d.Alias != "" {
		s += " as " + d.Alias
	}
	return s
}

// ClassDecl declares a class, including data classes (Modifiers.Data).
type ClassDecl struct {
	Token              token.Token
	Annotations        []*Annotation
	Modifiers          Modifiers
	Name               string
	NamePos            token.Position
	TypeParams         []*TypeParameter
	PrimaryCtorParams  []*Parameter
	SuperClass         TypeRef
	SuperClassArgs     []Expression
	Interfaces         []TypeRef
	Members            []Declaration
	IsInterfaceLike    bool // true for `interface`, distinguishes when reused
}

func (d *ClassDecl) declarationNode()     {}
func (d *ClassDecl) TokenLiteral() string { return d.Token.Literal }
func (d *ClassDecl) Pos() token.Position  { return d.Token.Pos }
func (d *ClassDecl) String() string {
	var sb strings.Builder
	if d.Modifiers.Data {
		sb.WriteString("data ")
	}
	sb.WriteString("class ")
	sb.WriteString(d.Name)
	if len(d.PrimaryCtorParams) > 0 {
		sb.WriteString("(")
		for i, p := range d.PrimaryCtorParams {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.String())
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// InterfaceDecl declares an interface: method signatures, default method
// bodies, and property declarations with no backing field.
type InterfaceDecl struct {
	Token       token.Token
	Annotations []*Annotation
	Modifiers   Modifiers
	Name        string
	NamePos     token.Position
	TypeParams  []*TypeParameter
	Interfaces  []TypeRef
	Members     []Declaration
}

func (d *InterfaceDecl) declarationNode()     {}
func (d *InterfaceDecl) TokenLiteral() string { return d.Token.Literal }
func (d *InterfaceDecl) Pos() token.Position  { return d.Token.Pos }
func (d *InterfaceDecl) String() string       { return "interface " + d.Name }

// ObjectDecl declares a singleton object, or a class's `companion object`
// when Name is empty.
type ObjectDecl struct {
	Token       token.Token
	Annotations []*Annotation
	Modifiers   Modifiers
	Name        string // empty for a companion object
	NamePos     token.Position
	SuperClass  TypeRef
	Interfaces  []TypeRef
	Members     []Declaration
}

func (d *ObjectDecl) declarationNode()     {}
func (d *ObjectDecl) TokenLiteral() string { return d.Token.Literal }
func (d *ObjectDecl) Pos() token.Position  { return d.Token.Pos }
func (d *ObjectDecl) String() string {
	if d.Name == "" {
		return "companion object"
	}
	return "object " + d.Name
}

// EnumEntry is a single `NAME(args)` entry of an enum, optionally with a
// body overriding members for that entry.
type EnumEntry struct {
	Token   token.Token
	Name    string
	NamePos token.Position
	Args    []Expression
	Body    []Declaration
}

func (e *EnumEntry) TokenLiteral() string { return e.Token.Literal }
func (e *EnumEntry) Pos() token.Position  { return e.Token.Pos }
func (e *EnumEntry) String() string       { return e.Name }

// EnumDecl declares an enum class with its constant entries and any
// shared members following the `;` separator.
type EnumDecl struct {
	Token             token.Token
	Annotations       []*Annotation
	Modifiers         Modifiers
	Name              string
	NamePos           token.Position
	PrimaryCtorParams []*Parameter
	Interfaces        []TypeRef
	Entries           []*EnumEntry
	Members           []Declaration
}

func (d *EnumDecl) declarationNode()     {}
func (d *EnumDecl) TokenLiteral() string { return d.Token.Literal }
func (d *EnumDecl) Pos() token.Position  { return d.Token.Pos }
func (d *EnumDecl) String() string       { return "enum class " + d.Name }

// FunDecl declares a named function: top-level, a class/interface member,
// or an extension function (Receiver set).
type FunDecl struct {
	Token       token.Token
	Annotations []*Annotation
	Modifiers   Modifiers
	Name        string
	NamePos     token.Position
	TypeParams  []*TypeParameter
	Receiver    TypeRef // non-nil for an extension function
	Params      []*Parameter
	ReturnType  TypeRef // nil when inferred (expression-bodied or Unit)
	Body        Statement // *Block, or nil for an abstract/interface signature
	ExprBody    Expression // set instead of Body for `fun f() = expr`
}

func (d *FunDecl) declarationNode()     {}
func (d *FunDecl) TokenLiteral() string { return d.Token.Literal }
func (d *FunDecl) Pos() token.Position  { return d.Token.Pos }
func (d *FunDecl) String() string {
	var sb strings.Builder
	sb.WriteString("fun ")
	if d.Receiver != nil {
		sb.WriteString(d.Receiver.String())
		sb.WriteString(".")
	}
	sb.WriteString(d.Name)
	sb.WriteString("(")
	for i, p := range d.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// PropertyDecl declares a `val`/`var` with optional custom accessors
// (`get`/`set`), at the top level or as a class member.
type PropertyDecl struct {
	Token        token.Token
	Annotations  []*Annotation
	Modifiers    Modifiers
	Mutable      bool // true for `var`, false for `val`
	Name         string
	NamePos      token.Position
	Type         TypeRef
	Initializer  Expression
	Getter       *FunDecl // nil when using the default accessor
	Setter       *FunDecl
	Delegate     Expression // `by expr`, nil when absent
}

func (d *PropertyDecl) declarationNode()     {}
func (d *PropertyDecl) TokenLiteral() string { return d.Token.Literal }
func (d *PropertyDecl) Pos() token.Position  { return d.Token.Pos }
func (d *PropertyDecl) String() string {
	kw := "val"
	if d.Mutable {
		kw = "var"
	}
	return kw + " " + d.Name
}

// ConstructorDecl declares a secondary `constructor(...)` of a class.
type ConstructorDecl struct {
	Token       token.Token
	Modifiers   Modifiers
	Params      []*Parameter
	DelegateTo  string // "this" or "super", empty if no delegation call
	DelegateArgs []Expression
	Body        *Block
}

func (d *ConstructorDecl) declarationNode()     {}
func (d *ConstructorDecl) TokenLiteral() string { return d.Token.Literal }
func (d *ConstructorDecl) Pos() token.Position  { return d.Token.Pos }
func (d *ConstructorDecl) String() string       { return "constructor(...)" }

// InitBlockDecl declares an `init { ... }` block, run in source order
// during primary-constructor execution.
type InitBlockDecl struct {
	Token token.Token
	Body  *Block
}

func (d *InitBlockDecl) declarationNode()     {}
func (d *InitBlockDecl) TokenLiteral() string { return d.Token.Literal }
func (d *InitBlockDecl) Pos() token.Position  { return d.Token.Pos }
func (d *InitBlockDecl) String() string       { return "init " + d.Body.String() }

// TypeAliasDecl declares `typealias Name<T> = SomeType<T>`.
type TypeAliasDecl struct {
	Token      token.Token
	Name       string
	NamePos    token.Position
	TypeParams []*TypeParameter
	Aliased    TypeRef
}

func (d *TypeAliasDecl) declarationNode()     {}
func (d *TypeAliasDecl) TokenLiteral() string { return d.Token.Literal }
func (d *TypeAliasDecl) Pos() token.Position  { return d.Token.Pos }
func (d *TypeAliasDecl) String() string       { return "typealias " + d.Name + " = " + d.Aliased.String() }

// DestructuringDecl declares `val (a, b) = pair`, destructuring a value
// into multiple bindings via its `component1()`/`component2()`/… members.
type DestructuringDecl struct {
	Token       token.Token
	Mutable     bool
	Names       []string
	NamePositions []token.Position
	Types       []TypeRef // parallel to Names; nil entries mean inferred
	Initializer Expression
}

func (d *DestructuringDecl) declarationNode()     {}
func (d *DestructuringDecl) TokenLiteral() string { return d.Token.Literal }
func (d *DestructuringDecl) Pos() token.Position  { return d.Token.Pos }
func (d *DestructuringDecl) String() string {
	return "val (" + strings.Join(d.Names, ", ") + ") = " + d.Initializer.String()
}
