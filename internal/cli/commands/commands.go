package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/extremedonkey/castbot-sub005/internal/cli"
	"github.com/extremedonkey/castbot-sub005/internal/config"
	"github.com/extremedonkey/castbot-sub005/internal/migration"
	"github.com/extremedonkey/castbot-sub005/internal/remote"
	"github.com/extremedonkey/castbot-sub005/internal/store"
	"github.com/extremedonkey/castbot-sub005/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Migrate *MigrateCommand
	Setup   *SetupCommand
	Status  *StatusCommand
	Report  *ReportCommand
	Backups *BackupsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	jsonStore := store.NewJSONStore(cfg)
	reports := store.NewJSONReports(cfg)
	migrator := migration.NewInventoryMigrator(cfg, jsonStore, reports)
	ledger := migration.NewLedger(cfg)
	formatter := ui.NewFormatter(os.Stdout)
	runner := remote.NewRunner(cfg)
	viewer := ui.NewReportViewer()

	return &Commands{
		Migrate: NewMigrateCommand(cfg, migrator, ledger, formatter),
		Setup:   NewSetupCommand(cfg, runner, formatter),
		Status:  NewStatusCommand(cfg, reports, formatter),
		Report:  NewReportCommand(cfg, reports, viewer),
		Backups: NewBackupsCommand(cfg, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		if flags.DataPath != "" {
			cfg.StorePath = flags.DataPath
		}
		if flags.BackupDir != "" {
			cfg.BackupDir = flags.BackupDir
		}
		return nil
	}

	// Migrate command
	migrateCmd := &cobra.Command{
		Use:     "migrate [guildID]",
		Short:   "Convert inventory records to the keyed object format",
		Long:    "Convert legacy array-format inventories to the keyed object format. Pass a guild ID to migrate a single guild; omit it to migrate every guild in the data store. A backup of the store is written before any change.",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.Migrate.Execute,
		PreRunE: applyFlags,
	}
	migrateCmd.Flags().StringVarP(&flags.DataPath, "data", "d", "", "Path to the player data store file")
	migrateCmd.Flags().StringVar(&flags.BackupDir, "backup-dir", "", "Directory for pre-migration backups")
	rootCmd.AddCommand(migrateCmd)

	// Setup-logging command
	setupCmd := &cobra.Command{
		Use:   "setup-logging",
		Short: "Enable live analytics logging on the production host",
		Long:  "Run the fixed logging setup sequence on the production host over SSH: status check, enable live logging, add the owner exclusion, status check, confirm.",
		Args:  cobra.NoArgs,
		RunE:  c.Setup.Execute,
	}
	rootCmd.AddCommand(setupCmd)

	// Status command
	statusCmd := &cobra.Command{
		Use:     "status",
		Short:   "Show the last migration's statistics",
		RunE:    c.Status.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(statusCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:     "report",
		Short:   "Browse the last migration report interactively",
		Long:    "Open an interactive viewer over the per-guild outcomes of the last migration run",
		RunE:    c.Report.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(reportCmd)

	// Backups command
	backupsCmd := &cobra.Command{
		Use:     "backups",
		Short:   "List pre-migration backup files",
		RunE:    c.Backups.Execute,
		PreRunE: applyFlags,
	}
	backupsCmd.Flags().StringVar(&flags.BackupDir, "backup-dir", "", "Directory for pre-migration backups")
	rootCmd.AddCommand(backupsCmd)
}
