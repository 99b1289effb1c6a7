package assemble

import (
	"github.com/sicxe-assembler/sicxe/config"
	"github.com/sicxe-assembler/sicxe/parser"
	"github.com/sicxe-assembler/sicxe/records"
)

// Result is the complete product of assembling one source file: the
// object program, the listing, the final symbol table, and every fatal
// error encountered along the way.
type Result struct {
	Program *records.Program
	Listing string
	Symbols *parser.SymbolTable
	State   *State
	Errors  *parser.ErrorList
}

// Assemble runs the full pipeline — parse, pass one, pass two, record
// emission — over a source file. sicMode selects legacy SIC encoding.
func Assemble(path string, sicMode bool, cfg *config.Config) (*Result, error) {
	lines, parseErrs, err := parser.ReadSource(path)
	if err != nil {
		return nil, err
	}

	symtab, state, passOneErrs := PassOne(lines)

	combined := &parser.ErrorList{}
	combined.Errors = append(combined.Errors, parseErrs.Errors...)
	combined.Errors = append(combined.Errors, passOneErrs.Errors...)
	if combined.HasErrors() {
		return &Result{Symbols: symtab, State: state, Errors: combined}, nil
	}

	out, passTwoErrs := PassTwo(lines, symtab, sicMode)
	combined.Errors = append(combined.Errors, passTwoErrs.Errors...)
	if combined.HasErrors() {
		return &Result{Symbols: symtab, State: state, Errors: combined}, nil
	}

	program := records.GenerateProgram(state.ProgramName, state.StartAddr, out.Units, state.EntryAddr, cfg.Records.TextRecordMaxBytes, cfg.Records.StrictLength)

	listing := records.FormatListing(out.Listing, records.Widths{
		Location: cfg.Listing.LocationWidth,
		Label:    cfg.Listing.LabelWidth,
		Mnemonic: cfg.Listing.MnemonicWidth,
		Operand:  cfg.Listing.OperandWidth,
	})

	return &Result{
		Program: program,
		Listing: listing,
		Symbols: symtab,
		State:   state,
		Errors:  combined,
	}, nil
}
