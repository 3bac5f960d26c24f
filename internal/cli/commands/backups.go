package commands

import (
	"github.com/spf13/cobra"

	"github.com/extremedonkey/castbot-sub005/internal/config"
	"github.com/extremedonkey/castbot-sub005/internal/store"
	"github.com/extremedonkey/castbot-sub005/internal/ui"
)

// BackupsCommand handles the backups command
type BackupsCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewBackupsCommand creates a new BackupsCommand
func NewBackupsCommand(cfg *config.Config, formatter *ui.Formatter) *BackupsCommand {
	return &BackupsCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (bc *BackupsCommand) Execute(cmd *cobra.Command, args []string) error {
	backups, err := store.ListBackups(bc.config.BackupDir)
	if err != nil {
		return err
	}
	bc.formatter.BackupList(backups)
	return nil
}
