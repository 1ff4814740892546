// Package symboltable holds the scopes and symbols the analyzer builds
// while walking a Program: an arena of scopes addressed by integer
// handles (rather than parent pointers, so scopes can be queried and
// iterated without walking live AST references), a node-to-scope index,
// a position index for "innermost scope here" queries, and a super-type
// registry for subtype queries.
package symboltable

import (
	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/token"
	"github.com/novalang/nova/internal/types"
)

// SymbolKind classifies what a Symbol names.
type SymbolKind int

const (
	Variable SymbolKind = iota
	Parameter
	Property
	Function
	BuiltinFunction
	BuiltinConstant
	ClassSym
	InterfaceSym
	ObjectSym
	EnumSym
	EnumEntry
	TypeAlias
	Import
)

func (k SymbolKind) String() string {
	switch k {
	case Variable:
		return "VARIABLE"
	case Parameter:
		return "PARAMETER"
	case Property:
		return "PROPERTY"
	case Function:
		return "FUNCTION"
	case BuiltinFunction:
		return "BUILTIN_FUNCTION"
	case BuiltinConstant:
		return "BUILTIN_CONSTANT"
	case ClassSym:
		return "CLASS"
	case InterfaceSym:
		return "INTERFACE"
	case ObjectSym:
		return "OBJECT"
	case EnumSym:
		return "ENUM"
	case EnumEntry:
		return "ENUM_ENTRY"
	case TypeAlias:
		return "TYPE_ALIAS"
	case Import:
		return "IMPORT"
	default:
		return "UNKNOWN"
	}
}

// Symbol is a named entity bound in some Scope.
type Symbol struct {
	Name                string
	Kind                SymbolKind
	TypeName            string      // the raw annotation string, e.g. "List<Int>"
	StructuralType      types.Type  // resolved lazily; nil until inference touches it
	Mutable             bool        // true for `var`, false for `val`/parameters
	Visibility          ast.Visibility
	DeclarationLocation token.Position
	DeclarationNode     ast.Node

	Parameters     []*ast.Parameter // for FUNCTION/BUILTIN_FUNCTION
	SuperClassName string           // for CLASS
	InterfaceNames []string         // for CLASS/INTERFACE/OBJECT/ENUM

	memberNames []string
	members     map[string]*Symbol // class-like kinds: member name -> Symbol
}

// Members returns the symbol's members in declaration order. Returns nil
// for non-class-like kinds.
func (s *Symbol) Members() []*Symbol {
	if s.members == nil {
		return nil
	}
	out := make([]*Symbol, 0, len(s.memberNames))
	for _, name := range s.memberNames {
		out = append(out, s.members[name])
	}
	return out
}

// Member looks up a direct member by name.
func (s *Symbol) Member(name string) (*Symbol, bool) {
	if s.members == nil {
		return nil, false
	}
	m, ok := s.members[name]
	return m, ok
}

// AddMember attaches a member symbol, preserving declaration order. A
// repeated name overwrites the stored symbol but keeps its original
// position in iteration order.
func (s *Symbol) AddMember(member *Symbol) {
	if s.members == nil {
		s.members = make(map[string]*Symbol)
	}
	if _, exists := s.members[member.Name]; !exists {
		s.memberNames = append(s.memberNames, member.Name)
	}
	s.members[member.Name] = member
}
