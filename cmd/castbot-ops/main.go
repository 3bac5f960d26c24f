package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/extremedonkey/castbot-sub005/internal/cli"
	"github.com/extremedonkey/castbot-sub005/internal/cli/commands"
	"github.com/extremedonkey/castbot-sub005/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "castbot-ops",
		Short:   "CastBot data store operations",
		Long:    `Operator tooling for CastBot's player data store: migrate legacy inventory records to the keyed object format, inspect migration reports and backups, and configure live analytics logging on the production host.`,
		Version: version,
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Load config with .env overrides applied
	cfg := config.Load(flags.ToConfigFlags())

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
