package encoder

import (
	"fmt"

	"github.com/sicxe-assembler/sicxe/parser"
)

// opcodeLookupError builds an OpcodeLookup error for an unknown mnemonic.
func opcodeLookupError(pos parser.Position, mnemonic string) error {
	return parser.NewError(pos, parser.ErrorOpcodeLookup,
		fmt.Sprintf("unrecognized mnemonic: %s", mnemonic))
}

// undefinedSymbolError builds an UndefinedSymbol error.
func undefinedSymbolError(pos parser.Position, symbol string) error {
	return parser.NewError(pos, parser.ErrorUndefinedSymbol,
		fmt.Sprintf("undefined symbol: %s", symbol))
}

// instructionError builds a general Instruction error for a malformed
// operand or an out-of-range displacement.
func instructionError(pos parser.Position, message string) error {
	return parser.NewError(pos, parser.ErrorInstruction, message)
}
