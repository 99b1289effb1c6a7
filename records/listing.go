package records

import (
	"fmt"
	"strings"
)

// ListingLine is one row of the assembly listing: a source line's fields
// alongside its resolved location and generated object code.
type ListingLine struct {
	Location   uint32
	HasLoc     bool // false for the END line, which prints no location
	Label      string
	Mnemonic   string
	Operand    string
	ObjectCode string // empty for directives that emit no object code
}

// Widths controls the listing's fixed column widths.
type Widths struct {
	Location int
	Label    int
	Mnemonic int
	Operand  int
}

// FormatListing renders every line in fixed-width columns, one per line,
// matching outputLST's column layout: location, label, mnemonic, operand,
// object code.
func FormatListing(lines []ListingLine, w Widths) string {
	var sb strings.Builder
	for _, l := range lines {
		loc := ""
		if l.HasLoc {
			loc = fmt.Sprintf("%04X", l.Location)
		}
		sb.WriteString(pad(loc, w.Location))
		sb.WriteString(pad(l.Label, w.Label))
		sb.WriteString(pad(l.Mnemonic, w.Mnemonic))
		sb.WriteString(pad(l.Operand, w.Operand))
		sb.WriteString(l.ObjectCode)
		sb.WriteString("\n")
	}
	return sb.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
