package parser

import "testing"

func TestSymbolTableDefineAndLookup(t *testing.T) {
	st := NewSymbolTable()
	pos := Position{Filename: "prog.asm", Line: 1}

	if err := st.Define("RETADR", 0x203D, pos); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	addr, ok := st.Lookup("RETADR")
	if !ok {
		t.Fatal("expected RETADR to be found")
	}
	if addr != 0x203D {
		t.Errorf("expected 0x203D, got 0x%X", addr)
	}
}

func TestSymbolTableLookupMissing(t *testing.T) {
	st := NewSymbolTable()
	_, ok := st.Lookup("NOSUCH")
	if ok {
		t.Error("expected lookup of undefined symbol to fail")
	}
}

func TestSymbolTableDuplicateDefinitionIsError(t *testing.T) {
	st := NewSymbolTable()
	pos1 := Position{Filename: "prog.asm", Line: 1}
	pos2 := Position{Filename: "prog.asm", Line: 5}

	if err := st.Define("LOOP", 0x1000, pos1); err != nil {
		t.Fatalf("unexpected error on first define: %v", err)
	}

	err := st.Define("LOOP", 0x2000, pos2)
	if err == nil {
		t.Fatal("expected duplicate definition to error")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Kind != ErrorDuplicateSymbol {
		t.Errorf("expected ErrorDuplicateSymbol, got %v", perr.Kind)
	}

	// The original definition must survive a rejected redefinition.
	addr, ok := st.Lookup("LOOP")
	if !ok || addr != 0x1000 {
		t.Errorf("expected LOOP to remain 0x1000, got 0x%X ok=%v", addr, ok)
	}
}

func TestSymbolTableAllPreservesDefinitionOrder(t *testing.T) {
	st := NewSymbolTable()
	pos := Position{Filename: "prog.asm", Line: 1}

	names := []string{"FIRST", "RDREC", "WRREC", "LENGTH"}
	for i, n := range names {
		if err := st.Define(n, uint32(0x1000+i), pos); err != nil {
			t.Fatalf("unexpected error defining %s: %v", n, err)
		}
	}

	all := st.All()
	if len(all) != len(names) {
		t.Fatalf("expected %d symbols, got %d", len(names), len(all))
	}
	for i, sym := range all {
		if sym.Name != names[i] {
			t.Errorf("position %d: expected %s, got %s", i, names[i], sym.Name)
		}
	}
}

func TestSymbolTableLen(t *testing.T) {
	st := NewSymbolTable()
	pos := Position{Filename: "prog.asm", Line: 1}
	if st.Len() != 0 {
		t.Errorf("expected empty table to have length 0, got %d", st.Len())
	}
	_ = st.Define("A", 0x1000, pos)
	_ = st.Define("B", 0x1003, pos)
	if st.Len() != 2 {
		t.Errorf("expected length 2, got %d", st.Len())
	}
}
