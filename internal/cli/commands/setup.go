package commands

import (
	"github.com/spf13/cobra"

	"github.com/extremedonkey/castbot-sub005/internal/config"
	"github.com/extremedonkey/castbot-sub005/internal/remote"
	"github.com/extremedonkey/castbot-sub005/internal/ui"
)

// SetupCommand handles the setup-logging command
type SetupCommand struct {
	config    *config.Config
	runner    *remote.Runner
	formatter *ui.Formatter
}

// NewSetupCommand creates a new SetupCommand
func NewSetupCommand(cfg *config.Config, runner *remote.Runner, formatter *ui.Formatter) *SetupCommand {
	return &SetupCommand{
		config:    cfg,
		runner:    runner,
		formatter: formatter,
	}
}

// Execute runs the fixed logging setup plan once against the production host.
// A timeout or non-zero remote exit both surface as the failure banner.
func (sc *SetupCommand) Execute(cmd *cobra.Command, args []string) error {
	plan := remote.ProductionLoggingPlan()
	sc.formatter.RemoteStart(sc.config.GetRemoteTarget(), sc.config.RemoteDir, plan)

	output, err := sc.runner.Run(plan)
	if err != nil {
		sc.formatter.RemoteOutput(output)
		sc.formatter.RemoteFailed(err)
		return err
	}

	sc.formatter.RemoteOutput(output)
	sc.formatter.RemoteSuccess(sc.config.RemoteLogPath)
	return nil
}
