package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/extremedonkey/castbot-sub005/internal/domain"
	"github.com/extremedonkey/castbot-sub005/internal/remote"
)

// Formatter renders operator output. It writes to an injected writer so
// tests can assert on banner content.
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a Formatter writing to out.
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// MigrationStart prints the start banner with the effective scope.
func (f *Formatter) MigrationStart(guildID string) {
	cyan.Fprintln(f.out, "\n╔════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║              Inventory Format Migration                    ║")
	cyan.Fprintf(f.out, "╚════════════════════════════════════════════════════════════╝\n\n")
	if guildID == "" {
		white.Fprintln(f.out, "Scope: all guilds")
	} else {
		white.Fprintf(f.out, "Scope: guild %s\n", guildID)
	}
	fmt.Fprintln(f.out)
}

// MigrationSuccess prints the structured success report.
func (f *Formatter) MigrationSuccess(result *domain.MigrationResult) {
	green.Fprintln(f.out, "✓ Migration completed successfully")
	white.Fprintf(f.out, "  Guilds processed: %d\n", result.GuildsProcessed)
	white.Fprintf(f.out, "  Players migrated: %d\n", result.MigratedPlayers)
	white.Fprintf(f.out, "  Items migrated:   %d\n", result.MigratedItems)
	if result.SkippedPlayers > 0 {
		white.Fprintf(f.out, "  Players skipped:  %d (already in keyed format)\n", result.SkippedPlayers)
	}
	white.Fprintf(f.out, "  Backup: %s\n", result.BackupFile)
}

// MigrationFailed prints the reported-failure banner with the collaborator's error.
func (f *Formatter) MigrationFailed(result *domain.MigrationResult) {
	red.Fprintln(f.out, "✗ Migration failed")
	red.Fprintf(f.out, "  %s\n", result.Err)
}

// MigrationCrashed prints the crash banner with the fault and a trace.
func (f *Formatter) MigrationCrashed(err error, stack []byte) {
	red.Fprintf(f.out, "✗ Migration crashed: %v\n", err)
	if len(stack) > 0 {
		fmt.Fprintln(f.out, string(stack))
	}
}

// Warn prints a non-fatal warning.
func (f *Formatter) Warn(format string, args ...interface{}) {
	yellow.Fprintf(f.out, "⚠ "+format+"\n", args...)
}

// RemoteStart prints the remote setup banner, the target and the planned steps.
func (f *Formatter) RemoteStart(target, workdir string, plan remote.Plan) {
	cyan.Fprintln(f.out, "\n╔════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║             Production Logging Setup                       ║")
	cyan.Fprintf(f.out, "╚════════════════════════════════════════════════════════════╝\n\n")
	white.Fprintf(f.out, "Target: %s:%s\n\n", target, workdir)
	for i, step := range plan.Steps() {
		white.Fprintf(f.out, "  %d. [%s] %s\n", i+1, step.Name, step.Command)
	}
	fmt.Fprintln(f.out)
}

// RemoteOutput prints the combined remote output.
func (f *Formatter) RemoteOutput(output string) {
	if output != "" {
		fmt.Fprintln(f.out, output)
	}
}

// RemoteSuccess prints the confirmation banner and where logs will appear.
func (f *Formatter) RemoteSuccess(logPath string) {
	green.Fprintln(f.out, "✓ Live analytics logging enabled on production")
	white.Fprintf(f.out, "  Logs will appear in %s (tail -f %s)\n", logPath, logPath)
}

// RemoteFailed prints the remote failure banner.
func (f *Formatter) RemoteFailed(err error) {
	red.Fprintf(f.out, "✗ Remote setup failed: %v\n", err)
}

// BackupList prints discovered backup files, newest first.
func (f *Formatter) BackupList(backups []string) {
	if len(backups) == 0 {
		yellow.Fprintln(f.out, "No backups found")
		return
	}
	cyan.Fprintf(f.out, "Backups (%d, newest first):\n", len(backups))
	for _, b := range backups {
		white.Fprintf(f.out, "  %s\n", b)
	}
}
