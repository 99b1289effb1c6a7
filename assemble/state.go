// Package assemble orchestrates pass one and pass two over a parsed
// program: address and symbol assignment, then instruction encoding and
// object/listing record emission.
package assemble

// State is the assembler's running state, threaded explicitly from pass
// one into pass two rather than held in package-level globals.
type State struct {
	StartAddr     uint32
	ProgramName   string
	ProgramLength uint32
	EntryAddr     uint32 // resolved from END's operand, defaults to StartAddr
}
