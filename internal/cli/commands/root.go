// Package commands implements the dictforge CLI commands.
package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

var (
	debugFlag bool
	logger    = zap.NewNop()
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dictforge",
		Short: "Data dictionary editor and export engine",
		Long: color.CyanString(`Dictforge - Data Dictionary Editor

Dictforge maintains a governed data dictionary: named fields with
analytical types, value constraints, and governance metadata.

Features:
  • Coherence-checked constraints (pattern, range, allowed values)
  • Reusable field templates with batch instantiation
  • Deterministic export to CSV, JSON, YAML, and SQL DDL
  • Validated re-import of structured artifacts`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debugFlag {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = l
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync() //nolint:errcheck
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewInitCommand())
	rootCmd.AddCommand(NewFieldCommand())
	rootCmd.AddCommand(NewTemplateCommand())
	rootCmd.AddCommand(NewExportCommand())
	rootCmd.AddCommand(NewImportCommand())
	rootCmd.AddCommand(NewDBCommand())
	rootCmd.AddCommand(NewRegulationCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("dictforge %s\n", Version)
			cmd.Printf("  commit:     %s\n", GitCommit)
			cmd.Printf("  built:      %s\n", BuildDate)
			cmd.Printf("  go version: %s\n", runtime.Version())
		},
	}
}
