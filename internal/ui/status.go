package ui

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/extremedonkey/castbot-sub005/internal/domain"
)

// PrintReportStats displays the last migration report as a table.
func (f *Formatter) PrintReportStats(report *domain.MigrationReport) {
	meta := report.Meta

	fmt.Fprint(f.out, "\n")
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                  Last Migration Statistics                    ║")
	cyan.Fprintf(f.out, "╚═══════════════════════════════════════════════════════════════╝\n\n")

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")

	row := func(label, value string, c *color.Color) {
		fmt.Fprintf(f.out, "│ %-31s │ ", label)
		c.Fprintf(f.out, "%-27s │\n", value)
	}
	sep := func() {
		fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	}

	row("Scope", meta.Scope, white)
	sep()
	row("Guilds Processed", fmt.Sprintf("%d", meta.GuildsProcessed), white)
	sep()
	row("Players Migrated", fmt.Sprintf("%d", meta.MigratedPlayers), green)
	sep()
	row("Items Migrated", fmt.Sprintf("%d", meta.MigratedItems), green)
	sep()
	row("Players Skipped", fmt.Sprintf("%d", meta.SkippedPlayers), white)
	sep()
	row("Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), white)
	sep()
	row("Timestamp", meta.Timestamp, white)

	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	white.Fprintf(f.out, "Backup: %s\n", meta.BackupFile)
}
