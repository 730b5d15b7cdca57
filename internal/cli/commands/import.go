package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dictforge/dictforge/internal/cli/config"
	"github.com/dictforge/dictforge/internal/dict"
	"github.com/dictforge/dictforge/internal/export"
)

var importForceFlag bool

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a dictionary from a JSON or YAML artifact",
		Long: `Rebuild the dictionary from a previously exported artifact.

Every field and constraint in the artifact is re-validated on the way
in. An artifact with problems reports all of them at once and loads
nothing; the existing dictionary file is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolVar(&importForceFlag, "force", false, "Overwrite an existing dictionary file")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if !importForceFlag {
		if _, err := os.Stat(cfg.Dictionary); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfg.Dictionary)
		}
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	d, importErr := importByExtension(args[0], data)
	if importErr != nil {
		var problems *export.ImportError
		if errors.As(importErr, &problems) {
			out := cmd.OutOrStdout()
			color.New(color.FgRed, color.Bold).Fprintln(out, "✗ Import rejected:")
			for _, p := range problems.Problems {
				color.New(color.FgRed).Fprintf(out, "  %s: %s\n", p.Field, p.Message)
			}
		}
		return importErr
	}
	logger.Debug("imported dictionary", zap.String("id", d.ID()), zap.Int("fields", d.Len()))

	if err := saveDictionary(cfg, d); err != nil {
		return err
	}

	color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(),
		"✓ Imported %d fields into %s\n", d.Len(), cfg.Dictionary)
	return nil
}

// importByExtension picks the decoder from the file extension,
// defaulting to YAML for unrecognized ones
func importByExtension(path string, data []byte) (*dict.Dictionary, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return export.ImportJSON(data)
	default:
		return export.ImportYAML(data)
	}
}
