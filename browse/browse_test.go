package browse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/sicxe-assembler/sicxe/assemble"
	"github.com/sicxe-assembler/sicxe/config"
)

func assembleFixture(t *testing.T) *assemble.Result {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.asm")
	source := "PROG    START 1000\n" +
		"FIRST   LDA   LENGTH\n" +
		"LENGTH  WORD  10\n" +
		"        END   FIRST\n"
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	result, err := assemble.Assemble(path, false, config.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Errors.HasErrors() {
		t.Fatalf("unexpected assembly errors: %v", result.Errors.Error())
	}
	return result
}

func TestNewBrowserPopulatesListingAndSymbols(t *testing.T) {
	result := assembleFixture(t)
	b := NewBrowser(result, false)

	if len(b.listingLines) == 0 {
		t.Fatal("expected listing lines to be populated")
	}
	symbolsText := b.SymbolView.GetText(true)
	if !strings.Contains(symbolsText, "LENGTH") {
		t.Errorf("expected symbol pane to contain LENGTH, got %q", symbolsText)
	}
	if !strings.Contains(symbolsText, "FIRST") {
		t.Errorf("expected symbol pane to contain FIRST, got %q", symbolsText)
	}
}

func TestHandleSearchFindsMatchingListingLine(t *testing.T) {
	result := assembleFixture(t)
	b := NewBrowser(result, false)

	b.SearchInput.SetText("length")
	b.handleSearch(tcell.KeyEnter)

	status := b.StatusView.GetText(true)
	if !strings.Contains(status, "found") {
		t.Errorf("expected status to report a match, got %q", status)
	}
}

func TestHandleSearchReportsNoMatch(t *testing.T) {
	result := assembleFixture(t)
	b := NewBrowser(result, false)

	b.SearchInput.SetText("NOSUCHTOKEN")
	b.handleSearch(tcell.KeyEnter)

	status := b.StatusView.GetText(true)
	if !strings.Contains(status, "not found") {
		t.Errorf("expected status to report no match, got %q", status)
	}
}
