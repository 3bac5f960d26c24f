package commands

import (
	"github.com/spf13/cobra"

	"github.com/extremedonkey/castbot-sub005/internal/config"
	"github.com/extremedonkey/castbot-sub005/internal/store"
	"github.com/extremedonkey/castbot-sub005/internal/ui"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config  *config.Config
	reports store.Reports
	viewer  ui.Viewer
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, reports store.Reports, viewer ui.Viewer) *ReportCommand {
	return &ReportCommand{
		config:  cfg,
		reports: reports,
		viewer:  viewer,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := rc.reports.Load()
	if err != nil {
		return err
	}
	return rc.viewer.View(report)
}
