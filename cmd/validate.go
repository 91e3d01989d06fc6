// =============================================================================
// Customs Describer - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks a catalog against
// the known schemas without contacting the classification service.
//
// COMMAND USAGE:
//   customs-describer validate [input.csv]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/customs-describer/internal/describer"
	"github.com/ginjaninja78/customs-describer/internal/validation"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [input.csv]",
	Short: "Check a catalog's columns without classifying it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := resolveInput(args)
		if err != nil {
			return err
		}

		d, err := describer.New(describer.Options{
			Fs:     afero.NewOsFs(),
			Logger: log,
		})
		if err != nil {
			return err
		}

		check, err := d.Validate(cmd.Context(), input)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Schema:         %s\n", check.Schema.Name)
		fmt.Fprintf(out, "HS code column: %s\n", check.HSCodeColumn)
		fmt.Fprintf(out, "Rows:           %d\n", check.RowsValidated)
		fmt.Fprint(out, validation.FormatWarnings(check.Warnings))
		if len(check.Warnings) == 0 {
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
