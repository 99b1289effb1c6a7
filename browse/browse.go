// Package browse implements the -browse terminal UI: a read-only,
// post-hoc viewer over an already-assembled program. It shows no
// registers, memory, or breakpoints — there is nothing to execute, only
// a listing and a symbol table to inspect.
package browse

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/sicxe-assembler/sicxe/assemble"
	"github.com/sicxe-assembler/sicxe/parser"
)

// Browser is the split-pane listing/symbol viewer.
type Browser struct {
	Result *assemble.Result
	Color  bool

	App   *tview.Application
	Pages *tview.Pages

	MainLayout *tview.Flex

	ListingView *tview.TextView
	SymbolView  *tview.TextView
	StatusView  *tview.TextView
	SearchInput *tview.InputField

	listingLines []string
	searching    bool
}

// NewBrowser builds a browser over a completed assembly result.
func NewBrowser(result *assemble.Result, colorOutput bool) *Browser {
	b := &Browser{
		Result: result,
		Color:  colorOutput,
		App:    tview.NewApplication(),
	}

	b.initializeViews()
	b.buildLayout()
	b.setupKeyBindings()
	b.populate()

	return b
}

func (b *Browser) initializeViews() {
	b.ListingView = tview.NewTextView().
		SetDynamicColors(b.Color).
		SetScrollable(true).
		SetWrap(false)
	b.ListingView.SetBorder(true).SetTitle(" Listing ")

	b.SymbolView = tview.NewTextView().
		SetDynamicColors(b.Color).
		SetScrollable(true).
		SetWrap(false)
	b.SymbolView.SetBorder(true).SetTitle(" Symbols ")

	b.StatusView = tview.NewTextView().
		SetDynamicColors(b.Color)
	b.StatusView.SetBorder(true).SetTitle(" Status ")

	b.SearchInput = tview.NewInputField().
		SetLabel("/ ").
		SetFieldWidth(0)
	b.SearchInput.SetBorder(true).SetTitle(" Search ")
	b.SearchInput.SetDoneFunc(b.handleSearch)
}

func (b *Browser) buildLayout() {
	panes := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(b.ListingView, 0, 2, true).
		AddItem(b.SymbolView, 0, 1, false)

	b.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(panes, 0, 1, true).
		AddItem(b.StatusView, 3, 0, false)

	b.Pages = tview.NewPages().
		AddPage("main", b.MainLayout, true, true)
}

func (b *Browser) setupKeyBindings() {
	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if b.searching {
			return event
		}
		switch event.Key() {
		case tcell.KeyCtrlC:
			b.App.Stop()
			return nil
		case tcell.KeyEsc:
			b.App.Stop()
			return nil
		case tcell.KeyTab:
			b.cycleFocus()
			return nil
		}
		switch event.Rune() {
		case 'q':
			b.App.Stop()
			return nil
		case '/':
			b.startSearch()
			return nil
		}
		return event
	})
}

func (b *Browser) cycleFocus() {
	switch b.App.GetFocus() {
	case b.ListingView:
		b.App.SetFocus(b.SymbolView)
	default:
		b.App.SetFocus(b.ListingView)
	}
}

func (b *Browser) startSearch() {
	b.searching = true
	b.SearchInput.SetText("")
	b.MainLayout.AddItem(b.SearchInput, 3, 0, true)
	b.App.SetFocus(b.SearchInput)
}

func (b *Browser) handleSearch(key tcell.Key) {
	b.searching = false
	b.MainLayout.RemoveItem(b.SearchInput)
	b.App.SetFocus(b.ListingView)

	if key != tcell.KeyEnter {
		return
	}
	term := strings.ToUpper(b.SearchInput.GetText())
	if term == "" {
		return
	}
	for i, line := range b.listingLines {
		if strings.Contains(strings.ToUpper(line), term) {
			b.ListingView.ScrollTo(i, 0)
			b.setStatus(fmt.Sprintf("found %q at line %d", term, i+1))
			return
		}
	}
	b.setStatus(fmt.Sprintf("%q not found", term))
}

func (b *Browser) setStatus(text string) {
	b.StatusView.Clear()
	fmt.Fprint(b.StatusView, text)
}

// populate renders the listing and symbol panes from the assembly result.
func (b *Browser) populate() {
	b.listingLines = strings.Split(strings.TrimRight(b.Result.Listing, "\n"), "\n")
	b.ListingView.SetText(strings.Join(b.listingLines, "\n"))

	b.SymbolView.SetText(parser.FormatSymbols(b.Result.Symbols))

	name := ""
	if b.Result.State != nil {
		name = b.Result.State.ProgramName
	}
	b.setStatus(fmt.Sprintf("%s — Tab: switch pane  /: search  q/Esc: quit", name))
}

// Run launches the browser and blocks until the user quits.
func Run(result *assemble.Result, colorOutput bool) error {
	b := NewBrowser(result, colorOutput)
	return b.App.SetRoot(b.Pages, true).SetFocus(b.ListingView).Run()
}
