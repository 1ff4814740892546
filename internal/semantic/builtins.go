package semantic

import (
	"github.com/novalang/nova/internal/symboltable"
	"github.com/novalang/nova/internal/token"
	"github.com/novalang/nova/internal/types"
)

// populateBuiltins defines every registry-supplied function and constant
// in the global scope (§4.10), ahead of any user declaration.
func (a *Analyzer) populateBuiltins() {
	global := a.symbols.Scope(a.symbols.GlobalScope())
	for _, fn := range a.registry.GetBuiltinFunctions() {
		sym := &symboltable.Symbol{
			Name:                fn.Name,
			Kind:                symboltable.BuiltinFunction,
			TypeName:            fn.ReturnType,
			DeclarationLocation: token.Unknown,
		}
		sym.StructuralType = types.Function{ReturnType: a.resolveTypeName(fn.ReturnType)}
		global.Define(sym)
	}
	for _, c := range a.registry.GetBuiltinConstants() {
		sym := &symboltable.Symbol{
			Name:                c.Name,
			Kind:                symboltable.BuiltinConstant,
			TypeName:            c.Type,
			DeclarationLocation: token.Unknown,
		}
		sym.StructuralType = a.resolveTypeName(c.Type)
		global.Define(sym)
	}
}
