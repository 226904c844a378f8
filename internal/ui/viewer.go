package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/leftnode/throwback"
)

// Viewer is an interactive browser over the run's failed assertions. It
// works on the in-memory records of the current run only; nothing is
// persisted.
type Viewer struct{}

// NewViewer creates a Viewer.
func NewViewer() *Viewer {
	return &Viewer{}
}

// View opens the TUI over the failed records. Returns immediately when
// there are none.
func (v *Viewer) View(records []throwback.Record) error {
	var failed []throwback.Record
	for _, r := range records {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	if len(failed) == 0 {
		color.Green("✓ No failed assertions")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)
	list.SetBorder(true).SetTitle(fmt.Sprintf(" %d failed assertion(s) ", len(failed)))

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	details.SetBorder(true).SetTitle(" Details ")

	show := func(index int) {
		if index < 0 || index >= len(failed) {
			return
		}
		r := failed[index]
		details.SetText(fmt.Sprintf(
			"[red]FAIL[white] %s\n\nClass:  %s\nMethod: %s\nLine:   %d",
			r.Kind, r.Class, r.Method, r.Line))
	}

	for i, r := range failed {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s::%s (%s)", i+1, r.Class, r.Method, r.Kind), "", 0, nil)
	}
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		show(index)
	})
	show(0)

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(details, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).Run()
}
