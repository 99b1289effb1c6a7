package encoder

import "github.com/sicxe-assembler/sicxe/parser"

// Context threads the two pieces of mutable state an encoding decision can
// depend on — the symbol table and the current base register value —
// explicitly through every call, rather than reaching for a package-level
// singleton. BASE/NOBASE directives mutate Base as pass two walks the
// program; the symbol table is read-only by the time pass two starts.
type Context struct {
	Symbols *parser.SymbolTable
	Base    *uint32 // nil when no BASE directive is in effect
}

// NewContext creates an encoding context over an already-populated symbol
// table, with no base register set.
func NewContext(symbols *parser.SymbolTable) *Context {
	return &Context{Symbols: symbols}
}

// SetBase installs a base register value (BASE directive).
func (c *Context) SetBase(addr uint32) {
	v := addr
	c.Base = &v
}

// ClearBase removes the base register value (NOBASE directive).
func (c *Context) ClearBase() {
	c.Base = nil
}
