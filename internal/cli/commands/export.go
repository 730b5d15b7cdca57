package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dictforge/dictforge/internal/cli/config"
	"github.com/dictforge/dictforge/internal/export"
)

var (
	exportFormatFlag  string
	exportOutputFlag  string
	exportDialectFlag string
	exportTableFlag   string
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the dictionary",
		Long: `Render the dictionary in one of the supported formats.

Output is deterministic: exporting the same dictionary twice produces
byte-identical artifacts, so exports diff cleanly under version control.`,
		Example: `  dictforge export --format csv --output dictionary.csv
  dictforge export --format sql --dialect sqlite
  dictforge export --format json`,
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportFormatFlag, "format", "f", "json", "Output format (csv, json, yaml, sql)")
	cmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().StringVar(&exportDialectFlag, "dialect", "", "SQL dialect (postgres, sqlite); defaults to config")
	cmd.Flags().StringVar(&exportTableFlag, "table", "", "SQL table name; defaults to config")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	d, err := loadDictionary(cfg)
	if err != nil {
		return err
	}

	opts, err := sqlOptions(cfg)
	if err != nil {
		return err
	}

	renderer, err := export.ForFormat(exportFormatFlag, opts)
	if err != nil {
		return err
	}
	out, err := renderer.Render(d)
	if err != nil {
		return err
	}

	if exportOutputFlag == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(exportOutputFlag, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutputFlag, err)
	}
	color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(),
		"✓ Exported %d fields to %s\n", d.Len(), exportOutputFlag)
	return nil
}

// sqlOptions resolves the SQL rendering options from flags and config
func sqlOptions(cfg *config.Config) (export.SQLOptions, error) {
	dialectName := cfg.SQL.Dialect
	if exportDialectFlag != "" {
		dialectName = exportDialectFlag
	}
	dialect, err := export.ParseDialect(dialectName)
	if err != nil {
		return export.SQLOptions{}, err
	}

	table := cfg.SQL.Table
	if exportTableFlag != "" {
		table = exportTableFlag
	}
	return export.SQLOptions{Dialect: dialect, Table: table}, nil
}
