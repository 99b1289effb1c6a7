// Package records emits the object program: header, text, modification,
// and end records, built from the object code pass two produces.
package records

import (
	"fmt"
	"strings"
)

// CodeUnit is one piece of generated object code at a known location —
// either an encoded instruction or a data directive's bytes.
type CodeUnit struct {
	Location   uint32
	ObjectCode string // hex digits, even length
	NeedsMod   bool   // format-4 instruction whose operand resolved through a symbol
}

func (c CodeUnit) bytes() int {
	return len(c.ObjectCode) / 2
}

// Program is a fully assembled object program, ready to be written out.
type Program struct {
	Header        string
	Text          []string
	Modifications []string
	End           string
}

// String renders the object program the way it is written to a .obj file:
// header, then every text record, then every modification record, then
// the end record.
func (p *Program) String() string {
	var sb strings.Builder
	sb.WriteString(p.Header)
	sb.WriteString("\n")
	for _, t := range p.Text {
		sb.WriteString(t)
		sb.WriteString("\n")
	}
	for _, m := range p.Modifications {
		sb.WriteString(m)
		sb.WriteString("\n")
	}
	sb.WriteString(p.End)
	return sb.String()
}

// GenerateHeader builds the H record: program name (6 chars, blank
// padded), start address, and program length, each 6 hex digits.
func GenerateHeader(programName string, startAddr, programLength uint32) string {
	name := programName
	if len(name) > 6 {
		name = name[:6]
	}
	name = fmt.Sprintf("%-6s", name)
	return fmt.Sprintf("H%s%06X%06X", name, startAddr, programLength)
}

// GenerateEnd builds the E record, carrying the program's entry address
// as given (pass one resolves it from END's operand, or uses the start
// address when END names no defined symbol).
func GenerateEnd(entryAddr uint32) string {
	return fmt.Sprintf("E%06X", entryAddr)
}

// GenerateText packs code units into T records bounded by maxBytes, and
// produces the M record for every unit that requested one. When strict is
// false (the permissive default), a record keeps accepting units as long
// as it was not already over budget before this one — the same rule
// gen_text_sicxe applies to hex characters, which lets the unit that
// crosses the threshold still land in the current record, pushing it up
// to one unit past maxBytes. When strict is true, a unit never pushes a
// record over maxBytes at all.
func GenerateText(units []CodeUnit, startAddr uint32, maxBytes int, strict bool) (text []string, modifications []string) {
	i := 0
	for i < len(units) {
		recordStart := units[i].Location
		var code strings.Builder
		byteCount := 0

		for i < len(units) {
			u := units[i]
			ub := u.bytes()

			if strict {
				if byteCount > 0 && byteCount+ub > maxBytes {
					break
				}
			} else if byteCount > maxBytes {
				break
			}

			code.WriteString(u.ObjectCode)
			byteCount += ub

			if u.NeedsMod {
				relAddr := u.Location - startAddr + 1
				modifications = append(modifications, fmt.Sprintf("M%06X%s", relAddr, "05"))
			}

			i++
		}

		text = append(text, fmt.Sprintf("T%06X%02X%s", recordStart-startAddr, byteCount, code.String()))
	}

	return text, modifications
}

// GenerateProgram assembles the full object program from the units pass
// two produced.
func GenerateProgram(programName string, startAddr uint32, units []CodeUnit, entryAddr uint32, maxBytes int, strict bool) *Program {
	// Matches generate_records's program_length formula exactly: the last
	// code unit's own location, one past start, regardless of that unit's
	// size — not its end address. A program with no object code at all
	// (just START/END) has no last unit to measure from, so it reports 1.
	programLength := uint32(1)
	if len(units) > 0 {
		last := units[len(units)-1]
		programLength = last.Location - startAddr + 1
	}

	text, mods := GenerateText(units, startAddr, maxBytes, strict)

	return &Program{
		Header:        GenerateHeader(programName, startAddr, programLength),
		Text:          text,
		Modifications: mods,
		End:           GenerateEnd(entryAddr),
	}
}
