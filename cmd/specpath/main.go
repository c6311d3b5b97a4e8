package main

import (
	"fmt"
	"os"

	"specpath/internal/cli"
	"specpath/internal/cli/commands"
	"specpath/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "specpath",
		Short:         "Locate the test file that declares a describe/it pair",
		Long:          `Scans JavaScript/TypeScript test files for describe and it labels and maps failed tests from a test-run report back to the file (and line) that declares them.`,
		Version:       version,
		SilenceErrors: true,
	}

	// Defaults, then .env, then the environment
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

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
