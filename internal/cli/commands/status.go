package commands

import (
	"github.com/spf13/cobra"

	"github.com/extremedonkey/castbot-sub005/internal/config"
	"github.com/extremedonkey/castbot-sub005/internal/store"
	"github.com/extremedonkey/castbot-sub005/internal/ui"
)

// StatusCommand handles the status command
type StatusCommand struct {
	config    *config.Config
	reports   store.Reports
	formatter *ui.Formatter
}

// NewStatusCommand creates a new StatusCommand
func NewStatusCommand(cfg *config.Config, reports store.Reports, formatter *ui.Formatter) *StatusCommand {
	return &StatusCommand{
		config:    cfg,
		reports:   reports,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *StatusCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := sc.reports.Load()
	if err != nil {
		return err
	}
	sc.formatter.PrintReportStats(report)
	return nil
}
