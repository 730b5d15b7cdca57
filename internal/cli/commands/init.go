package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dictforge/dictforge/internal/cli/config"
	"github.com/dictforge/dictforge/internal/dict"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty dictionary file",
		Long: `Create an empty dictionary file at the configured path.

The dictionary gets a fresh identity that survives export/import
round-trips. Fails if the file already exists.`,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.Dictionary); err == nil {
		return fmt.Errorf("dictionary file %s already exists", cfg.Dictionary)
	}

	d := dict.New(uuid.NewString())
	if err := saveDictionary(cfg, d); err != nil {
		return err
	}

	color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", cfg.Dictionary)
	return nil
}
