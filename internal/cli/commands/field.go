package commands

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dictforge/dictforge/internal/cli/config"
	"github.com/dictforge/dictforge/internal/cli/ui"
	"github.com/dictforge/dictforge/internal/dict"
	"github.com/dictforge/dictforge/internal/regulation"
)

var (
	fieldTypeFlag        string
	fieldPatternFlag     string
	fieldRangeFlag       string
	fieldValuesFlag      string
	fieldDescFlag        string
	fieldOwnerFlag       string
	fieldSensitivityFlag string
	fieldPIIFlag         bool
	fieldComplianceFlag  string
	fieldInteractiveFlag bool
)

// NewFieldCommand creates the field command
func NewFieldCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Edit dictionary fields",
		Long:  "Create, list, retype, constrain, and delete dictionary fields.",
	}

	cmd.AddCommand(newFieldAddCommand())
	cmd.AddCommand(newFieldListCommand())
	cmd.AddCommand(newFieldSetTypeCommand())
	cmd.AddCommand(newFieldConstrainCommand())
	cmd.AddCommand(newFieldUnconstrainCommand())
	cmd.AddCommand(newFieldRemoveCommand())

	return cmd
}

func newFieldAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a field to the dictionary",
		Long: `Add a field with an analytical type and optional constraints.

When --type is omitted, the type is guessed from the field name and can
be confirmed with --interactive. Constraint flags are validated against
the chosen type before anything is written.`,
		Example: `  # Continuous field with a numeric range
  dictforge field add age --type continuous --range 0:120

  # Nominal field using a regex preset
  dictforge field add email --type nominal --pattern preset:email --pii

  # Interactive form
  dictforge field add size --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: runFieldAdd,
	}

	cmd.Flags().StringVarP(&fieldTypeFlag, "type", "t", "", "Analytical type (continuous, nominal, ordinal, time_series)")
	cmd.Flags().StringVar(&fieldPatternFlag, "pattern", "", "Regex constraint (or preset:<name>)")
	cmd.Flags().StringVar(&fieldRangeFlag, "range", "", "Numeric range constraint as min:max")
	cmd.Flags().StringVar(&fieldValuesFlag, "values", "", "Allowed values constraint, comma-separated")
	cmd.Flags().StringVar(&fieldDescFlag, "description", "", "Field description")
	cmd.Flags().StringVar(&fieldOwnerFlag, "owner", "", "Data owner")
	cmd.Flags().StringVar(&fieldSensitivityFlag, "sensitivity", "public", "Sensitivity level (public, internal, confidential, restricted)")
	cmd.Flags().BoolVar(&fieldPIIFlag, "pii", false, "Mark the field as containing PII")
	cmd.Flags().StringVar(&fieldComplianceFlag, "compliance", "", "Regulation id (see 'dictforge regulation list')")
	cmd.Flags().BoolVarP(&fieldInteractiveFlag, "interactive", "i", false, "Fill in the field through prompts")

	return cmd
}

func runFieldAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	d, err := loadDictionary(cfg)
	if err != nil {
		return err
	}

	if fieldInteractiveFlag {
		if err := promptFieldForm(name); err != nil {
			return err
		}
	}

	var fieldType dict.AnalyticalType
	if fieldTypeFlag == "" {
		fieldType = dict.GuessType(name)
	} else {
		fieldType, err = dict.ParseAnalyticalType(fieldTypeFlag)
		if err != nil {
			return err
		}
	}

	sensitivity, err := dict.ParseSensitivity(fieldSensitivityFlag)
	if err != nil {
		return err
	}
	if fieldComplianceFlag != "" {
		if _, ok := regulation.Get(fieldComplianceFlag); !ok {
			return fmt.Errorf("unknown regulation id %q (available: %s)",
				fieldComplianceFlag, strings.Join(regulation.IDs(), ", "))
		}
	}

	record := &dict.FieldRecord{
		Name:        name,
		Type:        fieldType,
		Description: fieldDescFlag,
		Governance: dict.GovernanceTag{
			Sensitivity: sensitivity,
			PII:         fieldPIIFlag,
			Owner:       fieldOwnerFlag,
			Compliance:  fieldComplianceFlag,
		},
	}

	constraints, err := constraintsFromFlags(fieldType)
	if err != nil {
		return err
	}
	record.Constraints = constraints

	if _, err := d.Insert(record); err != nil {
		return err
	}
	if err := saveDictionary(cfg, d); err != nil {
		return err
	}

	color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(),
		"✓ Added field %s (%s)\n", name, fieldType)
	return nil
}

// constraintsFromFlags validates the constraint flags for the chosen type
func constraintsFromFlags(t dict.AnalyticalType) ([]dict.Constraint, error) {
	var constraints []dict.Constraint

	if fieldPatternFlag != "" {
		pattern, err := resolvePattern(fieldPatternFlag)
		if err != nil {
			return nil, err
		}
		c, err := dict.NewRegexConstraint(t, pattern)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, c)
	}

	if fieldRangeFlag != "" {
		min, max, err := parseRange(fieldRangeFlag)
		if err != nil {
			return nil, err
		}
		c, err := dict.NewRangeConstraint(t, min, max)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, c)
	}

	if fieldValuesFlag != "" {
		c, err := dict.NewAllowedValuesConstraint(t, splitValues(fieldValuesFlag))
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, c)
	}

	return constraints, nil
}

// promptFieldForm fills the field flags through interactive prompts,
// pre-selecting the guessed type
func promptFieldForm(name string) error {
	typeNames := make([]string, 0, len(dict.AnalyticalTypes()))
	for _, t := range dict.AnalyticalTypes() {
		typeNames = append(typeNames, t.String())
	}

	guessed := fieldTypeFlag
	if guessed == "" {
		guessed = dict.GuessType(name).String()
	}
	if err := survey.AskOne(&survey.Select{
		Message: fmt.Sprintf("Analytical type for %q:", name),
		Options: typeNames,
		Default: guessed,
	}, &fieldTypeFlag); err != nil {
		return err
	}

	if err := survey.AskOne(&survey.Select{
		Message: "Sensitivity level:",
		Options: []string{"public", "internal", "confidential", "restricted"},
		Default: fieldSensitivityFlag,
	}, &fieldSensitivityFlag); err != nil {
		return err
	}

	if err := survey.AskOne(&survey.Confirm{
		Message: "Contains PII?",
		Default: fieldPIIFlag,
	}, &fieldPIIFlag); err != nil {
		return err
	}

	if err := survey.AskOne(&survey.Input{
		Message: "Data owner:",
		Default: fieldOwnerFlag,
	}, &fieldOwnerFlag); err != nil {
		return err
	}

	return survey.AskOne(&survey.Input{
		Message: "Description:",
		Default: fieldDescFlag,
	}, &fieldDescFlag)
}

func newFieldListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List dictionary fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			d, err := loadDictionary(cfg)
			if err != nil {
				return err
			}

			table := ui.NewTable(cmd.OutOrStdout(), "NAME", "TYPE", "CONSTRAINTS", "SENSITIVITY", "PII")
			for _, f := range d.Fields() {
				kinds := make([]string, 0, len(f.Constraints))
				for _, c := range f.Constraints {
					kinds = append(kinds, c.Kind.String())
				}
				pii := ""
				if f.Governance.PII {
					pii = "yes"
				}
				table.AddRow(f.Name, f.Type.String(), strings.Join(kinds, ", "),
					f.Governance.Sensitivity.String(), pii)
			}
			table.Render()
			return nil
		},
	}
}

func newFieldSetTypeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-type <name> <type>",
		Short: "Change a field's analytical type",
		Long: `Change a field's analytical type.

Constraints that are not legal for the new type are pruned and listed,
so nothing incoherent is ever left behind.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			d, err := loadDictionary(cfg)
			if err != nil {
				return err
			}

			newType, err := dict.ParseAnalyticalType(args[1])
			if err != nil {
				return err
			}

			pruned, err := d.SetType(args[0], newType)
			if err != nil {
				return err
			}
			if err := saveDictionary(cfg, d); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color.New(color.FgGreen, color.Bold).Fprintf(out, "✓ %s is now %s\n", args[0], newType)
			if len(pruned) > 0 {
				kinds := make([]string, len(pruned))
				for i, k := range pruned {
					kinds[i] = k.String()
				}
				color.New(color.FgYellow).Fprintf(out, "  pruned incompatible constraints: %s\n",
					strings.Join(kinds, ", "))
			}
			return nil
		},
	}
}

func newFieldConstrainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "constrain <name>",
		Short: "Add a constraint to a field",
		Long: `Add a constraint to an existing field.

Each constraint kind can be active at most once per field. Replacing a
constraint requires removing the old one first; nothing is overwritten
silently.`,
		Example: `  dictforge field constrain age --range 0:120
  dictforge field constrain status --values open,closed
  dictforge field constrain dni --pattern preset:spanish_dni`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			d, err := loadDictionary(cfg)
			if err != nil {
				return err
			}

			f, ok := d.Field(args[0])
			if !ok {
				return fmt.Errorf("field %q not found", args[0])
			}

			constraints, err := constraintsFromFlags(f.Type)
			if err != nil {
				return err
			}
			if len(constraints) == 0 {
				return fmt.Errorf("nothing to add: set --pattern, --range, or --values")
			}

			for _, c := range constraints {
				if err := d.AddConstraint(args[0], c); err != nil {
					return err
				}
			}
			if err := saveDictionary(cfg, d); err != nil {
				return err
			}

			color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(),
				"✓ Constrained %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&fieldPatternFlag, "pattern", "", "Regex constraint (or preset:<name>)")
	cmd.Flags().StringVar(&fieldRangeFlag, "range", "", "Numeric range constraint as min:max")
	cmd.Flags().StringVar(&fieldValuesFlag, "values", "", "Allowed values constraint, comma-separated")

	return cmd
}

func newFieldUnconstrainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unconstrain <name> <kind>",
		Short: "Remove a constraint from a field",
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

			kind, err := dict.ParseConstraintKind(args[1])
			if err != nil {
				return err
			}
			if err := d.RemoveConstraint(args[0], kind); err != nil {
				return err
			}
			if err := saveDictionary(cfg, d); err != nil {
				return err
			}

			color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(),
				"✓ Removed %s from %s\n", kind, args[0])
			return nil
		},
	}
}

func newFieldRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a field from the dictionary",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			d, err := loadDictionary(cfg)
			if err != nil {
				return err
			}

			if err := d.DeleteField(args[0]); err != nil {
				return err
			}
			if err := saveDictionary(cfg, d); err != nil {
				return err
			}

			color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(),
				"✓ Deleted %s\n", args[0])
			return nil
		},
	}
}
