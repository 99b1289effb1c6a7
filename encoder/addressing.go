package encoder

import (
	"strconv"
	"strings"

	"github.com/sicxe-assembler/sicxe/parser"
)

// addressing classifies a parsed operand's addressing mode. The kind was
// already decided once by the parser (None/Single/List); this step reads
// that classification and looks only at the prefix character of the
// operand text — it never re-derives the list/single shape.
type addressing struct {
	Immediate bool   // '#' prefix
	Indirect  bool   // '@' prefix
	Indexed   bool   // ",X" suffix (OperandList with Second == "X")
	Literal   bool   // '=' prefix
	Text      string // operand text with any '#'/'@'/'=' prefix stripped
}

// classify inspects a parsed operand and extracts its addressing mode and
// bare text, following the prefix conventions of the source language:
// '#' immediate, '@' indirect, '=' literal, ",X" indexed.
func classify(op parser.Operand) addressing {
	var a addressing
	text := op.Value

	if op.Kind == parser.OperandList {
		a.Indexed = op.Second == "X"
		text = op.First
	}

	switch {
	case strings.HasPrefix(text, "#"):
		a.Immediate = true
		text = text[1:]
	case strings.HasPrefix(text, "@"):
		a.Indirect = true
		text = text[1:]
	case strings.HasPrefix(text, "="):
		a.Literal = true
		text = text[1:]
	}

	a.Text = text
	return a
}

// extended reports whether a mnemonic carries the '+' format-4 modifier.
func extended(mnemonic string) bool {
	return strings.HasPrefix(mnemonic, "+")
}

// flagsForOperand computes the n/i (and x, e) flag bits implied by an
// operand's addressing mode, mirroring check_flags: simple addressing
// (neither '#' nor '@') sets both n and i, immediate sets i only, indirect
// sets n only.
func flagsForOperand(op parser.Operand, mnemonic string) (flags Flags, a addressing) {
	if op.Kind == parser.OperandNone {
		flags.E = extended(mnemonic)
		return flags, a
	}

	a = classify(op)

	switch {
	case a.Immediate:
		flags.I = true
	case a.Indirect:
		flags.N = true
	default:
		flags.N = true
		flags.I = true
	}

	flags.X = a.Indexed
	flags.E = extended(mnemonic)
	return flags, a
}

// parseLiteral decodes a '=X'..'' or '=C'..'' literal (or the equivalent
// BYTE directive operand) into its raw byte value as a hex string, per
// records.py's parseLiteral: X'..' is read as hex digits directly, C'..'
// is the hex encoding of each character's byte value.
func parseLiteral(text string) (string, error) {
	if strings.HasPrefix(text, "X'") && strings.HasSuffix(text, "'") {
		inner := text[2 : len(text)-1]
		if _, err := strconv.ParseUint(inner, 16, 64); err != nil {
			return "", err
		}
		return inner, nil
	}
	if strings.HasPrefix(text, "C'") && strings.HasSuffix(text, "'") {
		inner := text[2 : len(text)-1]
		var sb strings.Builder
		for _, c := range []byte(inner) {
			sb.WriteString(strconv.FormatUint(uint64(c), 16))
		}
		return sb.String(), nil
	}
	return "", strconv.ErrSyntax
}

// ByteLength reports the byte size a BYTE directive's operand occupies,
// the same rule pass one uses to advance the location counter: an X'..'
// literal contributes ceil(hexdigits/2) bytes, a C'..' literal one byte
// per character.
func ByteLength(text string) (int, error) {
	switch {
	case strings.HasPrefix(text, "X'") && strings.HasSuffix(text, "'"):
		inner := text[2 : len(text)-1]
		if _, err := strconv.ParseUint(inner, 16, 64); err != nil {
			return 0, err
		}
		return (len(inner) + 1) / 2, nil
	case strings.HasPrefix(text, "C'") && strings.HasSuffix(text, "'"):
		return len(text) - 3, nil
	default:
		return 0, strconv.ErrSyntax
	}
}
