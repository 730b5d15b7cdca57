package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dictforge/dictforge/internal/cli/config"
	"github.com/dictforge/dictforge/internal/cli/ui"
	"github.com/dictforge/dictforge/internal/template"
)

// NewTemplateCommand creates the template command
func NewTemplateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage field templates",
		Long: `Capture fields as reusable templates and stamp them back out.

Templates carry a field's type, constraints, and governance tag but not
its name, so one template can seed many fields.`,
	}

	cmd.AddCommand(newTemplateSaveCommand())
	cmd.AddCommand(newTemplateApplyCommand())
	cmd.AddCommand(newTemplateListCommand())
	cmd.AddCommand(newTemplateRemoveCommand())

	return cmd
}

func newTemplateSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save <field> <template>",
		Short: "Capture a field as a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			d, err := loadDictionary(cfg)
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			f, ok := d.Field(args[0])
			if !ok {
				return fmt.Errorf("field %q not found", args[0])
			}

			engine := template.NewEngine(store)
			if _, err := engine.Capture(args[1], f); err != nil {
				return err
			}

			color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(),
				"✓ Saved template %s from %s\n", args[1], args[0])
			return nil
		},
	}
}

func newTemplateApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <template> <field>...",
		Short: "Instantiate a template as one or more fields",
		Long: `Instantiate a template under the given field names.

With multiple names the batch continues past individual failures, so a
name collision on one target does not block the rest.`,
		Example: `  dictforge template apply us_state home_state
  dictforge template apply us_state home_state work_state birth_state`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			d, err := loadDictionary(cfg)
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			tpl, err := store.Get(args[0])
			if err != nil {
				return err
			}

			engine := template.NewEngine(store)
			results := engine.BatchInstantiate(tpl, d, args[1:])
			if err := saveDictionary(cfg, d); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failures := 0
			for _, r := range results {
				if r.Err != nil {
					failures++
					color.New(color.FgRed).Fprintf(out, "✗ %s: %v\n", r.Name, r.Err)
					continue
				}
				color.New(color.FgGreen).Fprintf(out, "✓ %s\n", r.Name)
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d fields failed", failures, len(results))
			}
			return nil
		},
	}
}

func newTemplateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			names, err := store.List()
			if err != nil {
				return err
			}

			table := ui.NewTable(cmd.OutOrStdout(), "NAME", "TYPE", "CONSTRAINTS")
			for _, name := range names {
				tpl, err := store.Get(name)
				if err != nil {
					return err
				}
				kinds := make([]string, 0, len(tpl.Constraints))
				for _, c := range tpl.Constraints {
					kinds = append(kinds, c.Kind.String())
				}
				table.AddRow(name, tpl.Type.String(), strings.Join(kinds, ", "))
			}
			table.Render()
			return nil
		},
	}
}

func newTemplateRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <template>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a saved template",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			if err := store.Delete(args[0]); err != nil {
				return err
			}

			color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(),
				"✓ Deleted template %s\n", args[0])
			return nil
		},
	}
}
