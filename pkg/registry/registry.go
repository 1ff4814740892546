// Package registry supplies the semantic analyzer's TypeRegistry
// collaborator: the read-only catalog of built-in functions, constants, and
// per-type method signatures that §4.10 of the language spec asks the host
// application to populate. The core never constructs one itself beyond an
// empty default.
package registry

// FunctionSig describes one built-in function's name and return type, both
// given as names (e.g. "Int", "List<String>") rather than resolved
// structural types — the analyzer's own name-to-type helper resolves them.
type FunctionSig struct {
	Name       string
	ReturnType string
}

// ConstantSig describes one built-in constant.
type ConstantSig struct {
	Name string
	Type string
}

// MethodSig describes one method of a built-in type.
type MethodSig struct {
	Name       string
	ReturnType string
	ParamTypes []string
	Static     bool
}

// TypeRegistry is the read-only catalog the analyzer consults when
// populating the global scope and resolving member access on built-in
// types. Implementations must be safe for concurrent read access; the core
// never mutates a TypeRegistry once analysis has started.
type TypeRegistry interface {
	GetBuiltinFunctions() []FunctionSig
	GetBuiltinConstants() []ConstantSig
	GetMethodsForType(name string) []MethodSig
}
