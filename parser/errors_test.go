package parser

import "testing"

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		ErrorInput:           "Input",
		ErrorLineFields:      "LineFields",
		ErrorDuplicateSymbol: "DuplicateSymbol",
		ErrorOpcodeLookup:    "OpcodeLookup",
		ErrorUndefinedSymbol: "UndefinedSymbol",
		ErrorInstruction:     "Instruction",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d: expected %q, got %q", kind, want, got)
		}
	}
}

func TestErrorMessageIncludesPositionAndKind(t *testing.T) {
	pos := Position{Filename: "prog.asm", Line: 12}
	err := NewError(pos, ErrorUndefinedSymbol, "symbol \"FOO\" is not defined")
	msg := err.Error()
	if msg != "prog.asm:12: UndefinedSymbol error: symbol \"FOO\" is not defined" {
		t.Errorf("got %q", msg)
	}
}

func TestErrorListAccumulatesAndReports(t *testing.T) {
	el := &ErrorList{}
	if el.HasErrors() {
		t.Fatal("expected empty list to have no errors")
	}

	el.Add(NewError(Position{Filename: "a.asm", Line: 1}, ErrorLineFields, "bad line"))
	el.Add(NewError(Position{Filename: "a.asm", Line: 2}, ErrorOpcodeLookup, "bad mnemonic"))

	if !el.HasErrors() {
		t.Fatal("expected list to report errors")
	}
	if len(el.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(el.Errors))
	}

	report := el.Error()
	if report == "" {
		t.Error("expected non-empty combined report")
	}
}
