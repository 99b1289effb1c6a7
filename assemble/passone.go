package assemble

import (
	"strconv"

	"github.com/sicxe-assembler/sicxe/encoder"
	"github.com/sicxe-assembler/sicxe/parser"
)

// These are the directives pass one recognizes. WORD/RESW/RESB/
// BYTE contribute to the location counter; BASE/NOBASE/START/END do not
// (START is consumed before the loop starts, END stops it).
const (
	dirStart  = "START"
	dirEnd    = "END"
	dirWord   = "WORD"
	dirResw   = "RESW"
	dirResb   = "RESB"
	dirByte   = "BYTE"
	dirBase   = "BASE"
	dirNobase = "NOBASE"
)

// PassOne walks the parsed program once, assigning every line's absolute
// location and defining every label in the symbol table. It stops at the
// END directive, matching the source assembler's first_pass.
func PassOne(lines []*parser.SourceLine) (*parser.SymbolTable, *State, *parser.ErrorList) {
	symtab := parser.NewSymbolTable()
	state := &State{}
	errs := &parser.ErrorList{}

	if len(lines) == 0 {
		return symtab, state, errs
	}

	var locctr uint32
	start := 0

	if lines[0].Mnemonic == dirStart {
		addr, err := strconv.ParseUint(lines[0].Operand.Value, 16, 32)
		if err != nil {
			errs.Add(parser.NewError(lines[0].Pos, parser.ErrorLineFields,
				"malformed START address: "+lines[0].Operand.Value))
		} else {
			locctr = uint32(addr)
		}
		state.StartAddr = locctr
		state.ProgramName = lines[0].Label
		lines[0].Location = locctr
		lines[0].LocationSet = true
		start = 1
	}

	for _, line := range lines[start:] {
		line.Location = locctr
		line.LocationSet = true

		if line.Label != "" {
			if err := symtab.Define(line.Label, locctr, line.Pos); err != nil {
				if perr, ok := err.(*parser.Error); ok {
					errs.Add(perr)
				}
			}
		}

		base, _ := encoder.BaseMnemonic(line.Mnemonic)

		switch base {
		case dirEnd:
			state.EntryAddr = state.StartAddr
			if line.Operand.Kind != parser.OperandNone {
				if addr, ok := symtab.Lookup(line.Operand.Value); ok {
					state.EntryAddr = addr
				}
			}
			state.ProgramLength = locctr - state.StartAddr
			return symtab, state, errs

		case dirBase, dirNobase:
			// no location-counter contribution

		case dirWord:
			locctr += 3

		case dirResw:
			n, err := strconv.Atoi(line.Operand.Value)
			if err != nil {
				errs.Add(parser.NewError(line.Pos, parser.ErrorLineFields, "malformed RESW count: "+line.Operand.Value))
				break
			}
			locctr += 3 * uint32(n)

		case dirResb:
			n, err := strconv.Atoi(line.Operand.Value)
			if err != nil {
				errs.Add(parser.NewError(line.Pos, parser.ErrorLineFields, "malformed RESB count: "+line.Operand.Value))
				break
			}
			locctr += uint32(n)

		case dirByte:
			n, err := encoder.ByteLength(line.Operand.Value)
			if err != nil {
				errs.Add(parser.NewError(line.Pos, parser.ErrorLineFields, "malformed BYTE operand: "+line.Operand.Value))
				break
			}
			locctr += uint32(n)

		default:
			size, ok := encoder.Size(line.Mnemonic)
			if !ok {
				errs.Add(parser.NewError(line.Pos, parser.ErrorOpcodeLookup, "unrecognized mnemonic: "+line.Mnemonic))
				break
			}
			locctr += uint32(size)
		}
	}

	// No END directive was present — the program's length runs to the
	// final assigned location.
	state.ProgramLength = locctr - state.StartAddr
	state.EntryAddr = state.StartAddr
	return symtab, state, errs
}
