package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sicxe-assembler/sicxe/parser"
)

// Result is one instruction's encoded object code, plus whether pass two
// should emit a modification record for it (only ever true for a
// format-4 instruction whose operand resolved through the symbol table,
// never for an immediate numeric operand).
type Result struct {
	ObjectCode string // hex digits, no leading "0x"
	NeedsMod   bool
}

// maskToBits returns the low `bits` bits of v as an unsigned value,
// i.e. its two's complement bit pattern for a negative v.
func maskToBits(v int64, bits uint) uint32 {
	mask := uint32(1)<<bits - 1
	return uint32(v) & mask
}

// Encode dispatches a single instruction line to its format-specific
// encoder based on the opcode table entry and the mnemonic's '+' prefix.
// ctx carries the symbol table and current base register value.
func Encode(ctx *Context, line *parser.SourceLine) (Result, error) {
	base, ext := BaseMnemonic(line.Mnemonic)
	entry, found := OpTable[base]
	if !found {
		return Result{}, opcodeLookupError(line.Pos, line.Mnemonic)
	}

	switch {
	case ext:
		return encodeFormat4(ctx, line, entry)
	case entry.Format == 1:
		return encodeFormat1(entry), nil
	case entry.Format == 2:
		return encodeFormat2(line, entry)
	case entry.Format == 3:
		return encodeFormat3(ctx, line, entry)
	default:
		return Result{}, instructionError(line.Pos, fmt.Sprintf("unsupported format for %s", base))
	}
}

func encodeFormat1(entry Entry) Result {
	return Result{ObjectCode: fmt.Sprintf("%02X", entry.Opcode)}
}

func encodeFormat2(line *parser.SourceLine, entry Entry) (Result, error) {
	if line.Operand.Kind == parser.OperandNone {
		return Result{}, instructionError(line.Pos, "format 2 instruction "+line.Mnemonic+" requires an operand")
	}

	var r1Tok, r2Tok string
	if line.Operand.Kind == parser.OperandList {
		r1Tok, r2Tok = line.Operand.First, line.Operand.Second
	} else {
		r1Tok = line.Operand.Value
	}

	var r1, r2 uint32
	switch entry.Operand {
	case ShapeN:
		// SVC n — the lone operand is a literal nibble, not a register.
		n, err := strconv.ParseUint(r1Tok, 10, 8)
		if err != nil {
			return Result{}, instructionError(line.Pos, "expected numeric operand for "+line.Mnemonic)
		}
		r1 = uint32(n)
	case ShapeR1N:
		reg, ok := RegisterTable[r1Tok]
		if !ok {
			return Result{}, instructionError(line.Pos, "unknown register: "+r1Tok)
		}
		r1 = reg
		n, err := strconv.ParseUint(r2Tok, 10, 8)
		if err != nil {
			return Result{}, instructionError(line.Pos, "expected numeric shift count for "+line.Mnemonic)
		}
		r2 = uint32(n)
	default:
		reg, ok := RegisterTable[r1Tok]
		if !ok {
			return Result{}, instructionError(line.Pos, "unknown register: "+r1Tok)
		}
		r1 = reg
		if r2Tok != "" {
			reg2, ok := RegisterTable[r2Tok]
			if !ok {
				return Result{}, instructionError(line.Pos, "unknown register: "+r2Tok)
			}
			r2 = reg2
		}
	}

	return Result{ObjectCode: fmt.Sprintf("%02X%X%X", entry.Opcode, r1&0xF, r2&0xF)}, nil
}

// resolveFormat3Target resolves a format-3 operand into its target
// address (or, for an immediate numeric literal, the literal value
// itself) plus whether the operand was such an immediate numeric literal.
func resolveFormat3Target(ctx *Context, line *parser.SourceLine, a addressing) (target int64, isImmediateDigit bool, err error) {
	if line.Operand.Kind == parser.OperandNone {
		return 0, false, nil
	}

	switch {
	case a.Literal:
		hexVal, perr := parseLiteral(a.Text)
		if perr != nil {
			return 0, false, instructionError(line.Pos, "malformed literal: "+a.Text)
		}
		v, _ := strconv.ParseInt(hexVal, 16, 64)
		return v, false, nil
	case a.Immediate && isNumeric(a.Text):
		v, perr := strconv.ParseInt(a.Text, 10, 64)
		if perr != nil {
			return 0, false, instructionError(line.Pos, "malformed immediate: "+a.Text)
		}
		return v, true, nil
	default:
		addr, ok := ctx.Symbols.Lookup(a.Text)
		if !ok {
			return 0, false, undefinedSymbolError(line.Pos, a.Text)
		}
		return int64(addr), false, nil
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func encodeFormat3(ctx *Context, line *parser.SourceLine, entry Entry) (Result, error) {
	flags, a := flagsForOperand(line.Operand, line.Mnemonic)

	target, isDigit, err := resolveFormat3Target(ctx, line, a)
	if err != nil {
		return Result{}, err
	}

	var disp uint32
	switch {
	case line.Operand.Kind == parser.OperandNone:
		disp = 0
	case isDigit:
		disp = maskToBits(target, 12)
	default:
		pc := int64(line.Location) + 3
		pcDisp := target - pc
		if minDisp12 <= pcDisp && pcDisp <= maxDisp12 {
			flags.P = true
			disp = maskToBits(pcDisp, 12)
		} else if ctx.Base != nil {
			baseDisp := target - int64(*ctx.Base)
			if baseDisp < 0 || baseDisp > 4095 {
				return Result{}, instructionError(line.Pos, "neither PC-relative nor base-relative addressing reaches "+a.Text)
			}
			flags.B = true
			disp = uint32(baseDisp)
		} else {
			return Result{}, instructionError(line.Pos, "PC-relative displacement to "+a.Text+" out of range and no BASE directive is in effect")
		}
	}

	op := uint32(entry.Opcode)
	if flags.N {
		op |= 0x02
	}
	if flags.I {
		op |= 0x01
	}

	packed := (op << 16) | (flagBits4(flags) << 12) | disp
	return Result{ObjectCode: fmt.Sprintf("%06X", packed)}, nil
}

// flagBits4 packs only the x,b,p,e bits (the low nibble of nixbpe) that
// format 3/4 store alongside the displacement; n and i were already
// folded into the opcode byte itself.
func flagBits4(f Flags) uint32 {
	var v uint32
	if f.X {
		v |= 0x8
	}
	if f.B {
		v |= 0x4
	}
	if f.P {
		v |= 0x2
	}
	if f.E {
		v |= 0x1
	}
	return v
}

func encodeFormat4(ctx *Context, line *parser.SourceLine, entry Entry) (Result, error) {
	flags, a := flagsForOperand(line.Operand, line.Mnemonic)
	flags.E = true

	var disp uint32
	needsMod := false

	switch {
	case line.Operand.Kind == parser.OperandNone:
		disp = 0
	case a.Immediate && isNumeric(a.Text):
		v, err := strconv.ParseInt(a.Text, 10, 64)
		if err != nil {
			return Result{}, instructionError(line.Pos, "malformed immediate: "+a.Text)
		}
		disp = maskToBits(v, 20)
	default:
		addr, ok := ctx.Symbols.Lookup(a.Text)
		if !ok {
			return Result{}, undefinedSymbolError(line.Pos, a.Text)
		}
		disp = addr & maxDisp20
		needsMod = true
	}

	op := uint32(entry.Opcode)
	if flags.N {
		op |= 0x02
	}
	if flags.I {
		op |= 0x01
	}

	packed := (op << 24) | (flagBits4(flags) << 20) | disp
	return Result{ObjectCode: fmt.Sprintf("%08X", packed), NeedsMod: needsMod}, nil
}

// EncodeSIC encodes an instruction under legacy SIC (non-XE) rules: a
// fixed 4-hex-digit address field with a single indexed-addressing flag
// bit (bit 15), no immediate/indirect/PC-relative/base-relative modes.
func EncodeSIC(ctx *Context, line *parser.SourceLine, entry Entry) (Result, error) {
	var addr uint32
	indexed := false

	if line.Operand.Kind != parser.OperandNone {
		a := classify(line.Operand)
		indexed = a.Indexed
		resolved, ok := ctx.Symbols.Lookup(a.Text)
		if !ok {
			return Result{}, undefinedSymbolError(line.Pos, a.Text)
		}
		addr = resolved
	}

	if indexed {
		addr |= 0x8000
	}

	return Result{ObjectCode: fmt.Sprintf("%02X%04X", entry.Opcode, addr&0xFFFF)}, nil
}

// BuildDataWord encodes a WORD directive's operand: a decimal integer
// packed into a 3-byte (6 hex digit) two's-complement word.
func BuildDataWord(text string) (string, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06X", maskToBits(v, 24)), nil
}

// BuildDataByte encodes a BYTE directive's operand — C'..' or X'..' — into
// its raw hex byte sequence, sharing the same literal decoder the inline
// =C'..'/=X'..' operand form uses.
func BuildDataByte(text string) (string, error) {
	return parseLiteral(text)
}
