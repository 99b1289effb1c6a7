package assemble

import (
	"strings"

	"github.com/sicxe-assembler/sicxe/encoder"
	"github.com/sicxe-assembler/sicxe/parser"
	"github.com/sicxe-assembler/sicxe/records"
)

// Output is pass two's product: the object-code units ready for the
// record emitter, and the listing lines ready for the listing formatter.
type Output struct {
	Units   []records.CodeUnit
	Listing []records.ListingLine
}

// PassTwo walks the parsed program a second time, encoding every
// instruction and data directive with a symbol table that pass one has
// already made total. sicMode selects legacy SIC addressing over SIC/XE.
func PassTwo(lines []*parser.SourceLine, symtab *parser.SymbolTable, sicMode bool) (*Output, *parser.ErrorList) {
	ctx := encoder.NewContext(symtab)
	out := &Output{}
	errs := &parser.ErrorList{}

	for _, line := range lines {
		base, _ := encoder.BaseMnemonic(line.Mnemonic)

		switch base {
		case dirStart:
			out.Listing = append(out.Listing, listingLine(line, ""))
			continue

		case dirEnd:
			out.Listing = append(out.Listing, records.ListingLine{
				HasLoc:   false,
				Mnemonic: line.Mnemonic,
				Operand:  line.Operand.String(),
			})
			continue

		case dirBase:
			if addr, ok := symtab.Lookup(line.Operand.Value); ok {
				ctx.SetBase(addr)
			}
			out.Listing = append(out.Listing, listingLine(line, ""))
			continue

		case dirNobase:
			ctx.ClearBase()
			out.Listing = append(out.Listing, listingLine(line, ""))
			continue

		case dirWord:
			code, err := encoder.BuildDataWord(line.Operand.Value)
			if err != nil {
				errs.Add(parser.NewError(line.Pos, parser.ErrorLineFields, "malformed WORD operand: "+line.Operand.Value))
				continue
			}
			out.Units = append(out.Units, records.CodeUnit{Location: line.Location, ObjectCode: strings.ToUpper(code)})
			out.Listing = append(out.Listing, listingLine(line, strings.ToUpper(code)))
			continue

		case dirByte:
			code, err := encoder.BuildDataByte(line.Operand.Value)
			if err != nil {
				errs.Add(parser.NewError(line.Pos, parser.ErrorLineFields, "malformed BYTE operand: "+line.Operand.Value))
				continue
			}
			out.Units = append(out.Units, records.CodeUnit{Location: line.Location, ObjectCode: strings.ToUpper(code)})
			out.Listing = append(out.Listing, listingLine(line, strings.ToUpper(code)))
			continue

		case dirResw, dirResb:
			out.Listing = append(out.Listing, listingLine(line, ""))
			continue
		}

		entry, found := encoder.OpTable[base]
		if !found {
			errs.Add(parser.NewError(line.Pos, parser.ErrorOpcodeLookup, "unrecognized mnemonic: "+line.Mnemonic))
			continue
		}

		var result encoder.Result
		var err error
		if sicMode {
			result, err = encoder.EncodeSIC(ctx, line, entry)
		} else {
			result, err = encoder.Encode(ctx, line)
		}
		if err != nil {
			if perr, ok := err.(*parser.Error); ok {
				errs.Add(perr)
			}
			continue
		}

		out.Units = append(out.Units, records.CodeUnit{
			Location:   line.Location,
			ObjectCode: result.ObjectCode,
			NeedsMod:   result.NeedsMod,
		})
		out.Listing = append(out.Listing, listingLine(line, result.ObjectCode))
	}

	return out, errs
}

func listingLine(line *parser.SourceLine, objectCode string) records.ListingLine {
	return records.ListingLine{
		HasLoc:     true,
		Location:   line.Location,
		Label:      line.Label,
		Mnemonic:   line.Mnemonic,
		Operand:    line.Operand.String(),
		ObjectCode: objectCode,
	}
}
