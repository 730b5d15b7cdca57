package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dictforge/dictforge/internal/cli/ui"
	"github.com/dictforge/dictforge/internal/regulation"
)

// NewRegulationCommand creates the regulation command
func NewRegulationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regulation",
		Short: "Browse regulation references",
		Long:  "List and inspect the regulations a field's governance tag can cite.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List known regulations",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := ui.NewTable(cmd.OutOrStdout(), "ID", "TITLE")
			for _, ref := range regulation.List() {
				table.AddRow(ref.ID, ref.Title)
			}
			table.Render()
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a regulation's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, ok := regulation.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown regulation id %q", args[0])
			}

			out := cmd.OutOrStdout()
			color.New(color.FgCyan, color.Bold).Fprintln(out, ref.Title)
			fmt.Fprintln(out, ref.Description)
			fmt.Fprintf(out, "\n%s\n", ref.URL)
			return nil
		},
	})

	return cmd
}
