package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	jsonOutput bool
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dscforge",
		Short: "DSCForge - DSC configuration extraction engine",
		Long: `DSCForge renders live resource state as PowerShell DSC configuration
documents: typed resource blocks, credential parameter registration,
quote promotion for variable references, and configuration data files.

Features:
  - Type-directed literal formatting with DSC escaping rules
  - Aligned, deterministic resource blocks
  - Credential registry and Get-Credential placeholders
  - Quote-boundary promotion of rendered literals
  - Run history persisted to SQLite`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	// Add subcommands
	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newRunsCommand())

	return rootCmd
}
