package parser

import "strings"

// OperandKind distinguishes the shapes an operand field can take. Modeled
// as a tagged variant rather than re-sniffing a raw string downstream: the
// parser classifies the shape once, at parse time, and every later stage
// (pass one, pass two, the encoder) reads Kind instead of re-parsing.
type OperandKind int

const (
	OperandNone OperandKind = iota
	OperandSingle
	OperandList
)

// Operand is a parsed operand field: absent, a single token, or an ordered
// pair of tokens (only ever produced when the raw field contained a comma
// — the indexed-addressing ",X" suffix and the two-register format share
// this same list shape; which meaning applies is decided later by the
// owning mnemonic, not by the parser).
type Operand struct {
	Kind  OperandKind
	Value string // set when Kind == OperandSingle
	First string // set when Kind == OperandList
	Second string
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandSingle:
		return o.Value
	case OperandList:
		return o.First + "," + o.Second
	default:
		return ""
	}
}

// SourceLine is a single parsed assembly line: optional label, required
// mnemonic, optional operand. Location is filled exactly once by pass one
// and immutable thereafter.
type SourceLine struct {
	Label    string
	Mnemonic string
	Operand  Operand
	Pos      Position
	Raw      string

	Location    uint32
	LocationSet bool
}

// stripComment removes everything from the first '.' character onward —
// the only comment marker this assembler recognizes.
func stripComment(line string) string {
	if idx := strings.IndexByte(line, '.'); idx >= 0 {
		return line[:idx]
	}
	return line
}

// ParseLine parses a single raw source line. Returns (nil, nil) for a
// blank or comment-only line. A malformed field count is a LineFields
// error.
func ParseLine(raw string, lineNum int, filename string) (*SourceLine, error) {
	pos := Position{Filename: filename, Line: lineNum}
	stripped := stripComment(raw)
	fields := strings.Fields(stripped)

	if len(fields) == 0 {
		return nil, nil
	}

	var label, mnemonic string
	var operandField string
	hasOperand := false

	switch len(fields) {
	case 1:
		mnemonic = fields[0]
	case 2:
		mnemonic = fields[0]
		operandField = fields[1]
		hasOperand = true
	case 3:
		label = fields[0]
		mnemonic = fields[1]
		operandField = fields[2]
		hasOperand = true
	default:
		return nil, NewError(pos, ErrorLineFields, "invalid number of fields on line: "+stripped)
	}

	line := &SourceLine{
		Label:    label,
		Mnemonic: mnemonic,
		Pos:      pos,
		Raw:      raw,
	}

	if hasOperand {
		if strings.Contains(operandField, ",") {
			parts := strings.SplitN(operandField, ",", 2)
			line.Operand = Operand{Kind: OperandList, First: parts[0], Second: parts[1]}
		} else {
			line.Operand = Operand{Kind: OperandSingle, Value: operandField}
		}
	}

	return line, nil
}

// ParseProgram parses every line of source text in order, skipping blank
// lines. Parse errors are accumulated rather than aborting immediately, so
// a caller can report every malformed line in one pass.
func ParseProgram(source, filename string) ([]*SourceLine, *ErrorList) {
	rawLines := strings.Split(source, "\n")
	lines := make([]*SourceLine, 0, len(rawLines))
	errs := &ErrorList{}

	for i, raw := range rawLines {
		line, err := ParseLine(raw, i+1, filename)
		if err != nil {
			if perr, ok := err.(*Error); ok {
				errs.Add(perr)
			}
			continue
		}
		if line == nil {
			continue
		}
		lines = append(lines, line)
	}

	return lines, errs
}
