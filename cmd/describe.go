// =============================================================================
// Customs Describer - Describe Command
// =============================================================================
//
// This file defines the 'describe' command, which runs the full pipeline
// for one catalog file.
//
// COMMAND USAGE:
//   customs-describer describe [input.csv] [flags]
//
// FLAGS:
//   --output, -o  : Output path (default: <input>-with-descriptions.csv)
//   --overwrite   : Replace the output file if it already exists
//
// When no input argument is given, 'default_input' from the configuration
// is used. This keeps the quick "edit the config and run" workflow.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/customs-describer/internal/classifier"
	"github.com/ginjaninja78/customs-describer/internal/describer"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// outputFile is the explicit output path.
var outputFile string

// overwrite allows replacing an existing output file.
var overwrite bool

// =============================================================================
// DESCRIBE COMMAND DEFINITION
// =============================================================================

var describeCmd = &cobra.Command{
	Use:   "describe [input.csv]",
	Short: "Add optimized goods descriptions to a catalog",
	Long: `The describe command validates the catalog, sends all rows to the
classification service in one request and writes the catalog with an added
"Optimized Goods Description" column.

Nothing is written if validation or the remote call fails. If --output names
an existing file, the command stops before reading the input unless
--overwrite is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDescribe(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().StringVarP(
		&outputFile,
		"output",
		"o",
		"",
		"Output path (default: <input>-with-descriptions.csv)",
	)

	describeCmd.Flags().BoolVar(
		&overwrite,
		"overwrite",
		false,
		"Overwrite the output file if it already exists",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

func runDescribe(cmd *cobra.Command, args []string) error {
	input, err := resolveInput(args)
	if err != nil {
		return err
	}

	output := outputFile
	if output == "" {
		output = appConfig.DefaultOutput
	}

	token, err := appConfig.Credential()
	if err != nil {
		return err
	}

	client, err := classifier.New(classifier.Options{
		Endpoint:   appConfig.Endpoint,
		Credential: token,
		Timeout:    appConfig.Timeout,
		UserAgent:  appConfig.UserAgent,
		Logger:     log,
	})
	if err != nil {
		return err
	}

	d, err := describer.New(describer.Options{
		Fs:                afero.NewOsFs(),
		Classifier:        client,
		OutputSuffix:      appConfig.OutputSuffix,
		DescriptionColumn: appConfig.DescriptionColumn,
		Logger:            log,
		Out:               cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	result, err := d.Run(cmd.Context(), describer.Request{
		Input:     input,
		Output:    output,
		Overwrite: overwrite || appConfig.Overwrite,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Described %d row(s) (%s) -> %s\n", result.Rows, result.Schema, result.OutputFile)
	return nil
}

// resolveInput returns the input argument or the configured default.
func resolveInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if appConfig.DefaultInput != "" {
		return appConfig.DefaultInput, nil
	}
	return "", fmt.Errorf("no input file given and no default_input configured")
}
