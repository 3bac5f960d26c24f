package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/extremedonkey/castbot-sub005/internal/config"
	"github.com/extremedonkey/castbot-sub005/internal/domain"
	"github.com/extremedonkey/castbot-sub005/internal/migration"
	"github.com/extremedonkey/castbot-sub005/internal/ui"
)

// MigrateCommand handles the migrate command
type MigrateCommand struct {
	config    *config.Config
	migrator  migration.Migrator
	ledger    *migration.Ledger
	formatter *ui.Formatter
}

// NewMigrateCommand creates a new MigrateCommand
func NewMigrateCommand(cfg *config.Config, migrator migration.Migrator, ledger *migration.Ledger, formatter *ui.Formatter) *MigrateCommand {
	return &MigrateCommand{
		config:    cfg,
		migrator:  migrator,
		ledger:    ledger,
		formatter: formatter,
	}
}

// Execute runs the command. Three terminal outcomes: success (exit 0),
// reported failure and fault (both exit 1 via the returned error). The
// collaborator is called exactly once; there is no retry.
func (mc *MigrateCommand) Execute(cmd *cobra.Command, args []string) error {
	guildID := ""
	if len(args) > 0 {
		guildID = args[0]
	}

	mc.formatter.MigrationStart(guildID)

	result, stack, err := mc.callMigrator(guildID)
	if err != nil {
		mc.formatter.MigrationCrashed(err, stack)
		return fmt.Errorf("migration crashed: %w", err)
	}

	mc.recordRun(guildID, result)

	if !result.Success {
		mc.formatter.MigrationFailed(result)
		return fmt.Errorf("migration failed: %s", result.Err)
	}

	mc.formatter.MigrationSuccess(result)
	return nil
}

// callMigrator invokes the migrator once, turning a panic into a fault with
// its stack so the operator gets a trace instead of a bare process crash.
func (mc *MigrateCommand) callMigrator(guildID string) (result *domain.MigrationResult, stack []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%v", r)
			stack = debug.Stack()
		}
	}()

	result, err = mc.migrator.Run(guildID)
	if err != nil {
		stack = debug.Stack()
	}
	return result, stack, err
}

// recordRun writes the audit row; audit problems never change the exit code.
func (mc *MigrateCommand) recordRun(guildID string, result *domain.MigrationResult) {
	if mc.ledger == nil {
		return
	}
	if err := mc.ledger.Record(guildID, result); err != nil {
		mc.formatter.Warn("audit ledger: %v", err)
	}
}
