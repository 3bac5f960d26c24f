package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/extremedonkey/castbot-sub005/internal/domain"
)

// Viewer displays a migration report in an interactive TUI
type Viewer interface {
	View(report *domain.MigrationReport) error
}

// ReportViewer displays per-guild migration outcomes in an interactive TUI
type ReportViewer struct{}

// NewReportViewer creates a new ReportViewer
func NewReportViewer() *ReportViewer {
	return &ReportViewer{}
}

// View displays the report: guild list on the left, outcome details on the right.
// 'q' or ESC quits.
func (rv *ReportViewer) View(report *domain.MigrationReport) error {
	if len(report.Details) == 0 {
		color.Yellow("No guild outcomes in the last migration report")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, outcome := range report.Details {
		label := fmt.Sprintf("[yellow]%d.[white] %s", i+1, outcome.GuildID)
		if outcome.MigratedPlayers == 0 {
			label = fmt.Sprintf("[gray]%d. %s (nothing to migrate)[white]", i+1, outcome.GuildID)
		}
		list.AddItem(label, "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	showDetails := func(index int) {
		if index < 0 || index >= len(report.Details) {
			return
		}
		o := report.Details[index]
		detailsView.SetText(fmt.Sprintf(
			"[cyan]Guild:[white] %s\n\n"+
				"[cyan]Players:[white]          %d\n"+
				"[cyan]Players migrated:[white] %d\n"+
				"[cyan]Items migrated:[white]   %d\n"+
				"[cyan]Players skipped:[white]  %d\n\n"+
				"[gray]Backup: %s[white]",
			o.GuildID, o.Players, o.MigratedPlayers, o.MigratedItems, o.SkippedPlayers,
			report.Meta.BackupFile,
		))
	}

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showDetails(index)
	})
	showDetails(0)

	header := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	header.SetText(fmt.Sprintf(
		"[cyan]Migration report[white] | scope: %s | guilds: %d | migrated players: %d | items: %d | [gray]q to quit[white]",
		report.Meta.Scope, report.Meta.GuildsProcessed, report.Meta.MigratedPlayers, report.Meta.MigratedItems,
	))

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(list, 0, 1, true).
			AddItem(detailsView, 0, 2, false), 0, 1, true)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).Run()
}
