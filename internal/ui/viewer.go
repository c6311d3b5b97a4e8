package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"specpath/internal/config"
	"specpath/internal/domain"
)

// Viewer displays a corpus interactively
type Viewer interface {
	View(corpus domain.Corpus) error
}

// CorpusBrowser is a TUI listing test files on the left and their
// declarations on the right
type CorpusBrowser struct {
	config *config.Config
}

// NewCorpusBrowser creates a new CorpusBrowser
func NewCorpusBrowser(cfg *config.Config) *CorpusBrowser {
	return &CorpusBrowser{config: cfg}
}

// View runs the browser until the user quits
func (cb *CorpusBrowser) View(corpus domain.Corpus) error {
	paths := corpus.Paths()
	if len(paths) == 0 {
		color.Yellow("No test files to browse")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for _, path := range paths {
		list.AddItem(cb.listItemText(path, corpus[path]), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	meta := domain.NewIndexMeta(corpus, cb.config.Pattern, cb.config.Encoding)
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" %d files, %d suites, %d cases | ↑↓ navigate, → details, ← back, Ctrl+C exit ", meta.Files, meta.Suites, meta.Cases))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(paths) {
			return
		}
		record := corpus[paths[index]]
		statsView.SetText(fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]  (%d suites, %d cases)",
			tview.Escape(cb.relPath(paths[index])), len(record.Describe), len(record.It)))
		detailsView.SetText(formatRecordDetails(record))
		detailsView.ScrollToBeginning()
	}

	list.SetChangedFunc(func(int, string, string, rune) { updateDetails() })
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func (cb *CorpusBrowser) relPath(path string) string {
	return relativeTo(cb.config.ProjectPath, path)
}

func (cb *CorpusBrowser) listItemText(path string, record domain.TestFileRecord) string {
	name := tview.Escape(cb.relPath(path))
	if len(record.Describe) == 0 && len(record.It) == 0 {
		return fmt.Sprintf("[gray]%s[white]", name)
	}
	return name
}

// formatRecordDetails renders declarations with tview color tags. Cases are
// indented by kind only; nesting depth is not recorded.
func formatRecordDetails(record domain.TestFileRecord) string {
	if len(record.Declarations) == 0 {
		if len(record.Describe) == 0 && len(record.It) == 0 {
			return "[red](no declarations found)[white]"
		}
		// snapshot without positions
		var b strings.Builder
		for _, s := range record.Describe {
			fmt.Fprintf(&b, "[cyan]describe[white] %s\n", tview.Escape(s))
		}
		for _, c := range record.It {
			fmt.Fprintf(&b, "  [yellow]it[white] %s\n", tview.Escape(c))
		}
		return b.String()
	}

	var b strings.Builder
	for _, decl := range record.Declarations {
		fmt.Fprintf(&b, "[gray]%4d[white] ", decl.Line)
		if decl.Kind == domain.KindSuite {
			fmt.Fprintf(&b, "[cyan]describe[white] %s", tview.Escape(decl.Label))
		} else {
			fmt.Fprintf(&b, "  [yellow]it[white] %s", tview.Escape(decl.Label))
		}
		if decl.Modifier != "" {
			fmt.Fprintf(&b, " [gray][%s[][white]", decl.Modifier)
		}
		b.WriteString("\n")
	}
	return b.String()
}
