package encoder

// Flag bit positions packed into the second nibble of a format-3/4
// instruction, in nixbpe order.
const (
	FlagN = 0x20
	FlagI = 0x10
	FlagX = 0x08
	FlagB = 0x04
	FlagP = 0x02
	FlagE = 0x01
)

// Flags is the six-boolean nixbpe flag set.
type Flags struct {
	N, I, X, B, P, E bool
}

// Bits packs the flag set into its 6-bit value.
func (f Flags) Bits() uint32 {
	var v uint32
	if f.N {
		v |= FlagN
	}
	if f.I {
		v |= FlagI
	}
	if f.X {
		v |= FlagX
	}
	if f.B {
		v |= FlagB
	}
	if f.P {
		v |= FlagP
	}
	if f.E {
		v |= FlagE
	}
	return v
}

// RegisterTable is the fixed SIC/XE register numbering.
var RegisterTable = map[string]uint32{
	"A":  0,
	"X":  1,
	"L":  2,
	"B":  3,
	"S":  4,
	"T":  5,
	"F":  6,
	"PC": 8,
	"SW": 9,
}

const (
	minDisp12 = -2048
	maxDisp12 = 2047
	maxDisp20 = 0xFFFFF
)
