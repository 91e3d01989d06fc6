// =============================================================================
// Customs Describer - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (customs-describer)
//   ├── describeCmd (customs-describer describe)
//   ├── validateCmd (customs-describer validate)
//   └── versionCmd  (customs-describer version)
//
// CONFIGURATION:
//   Before any subcommand runs, the root command:
//   1. Loads the .env file (if present) into the process environment
//   2. Loads the YAML configuration (defaults if the file is absent)
//   3. Sets up logging
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ginjaninja78/customs-describer/internal/config"
	"github.com/ginjaninja78/customs-describer/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// envFile holds the path to the .env file with the credential token.
var envFile string

// verbose enables debug logging when set to true.
var verbose bool

// appConfig and log are populated by loadEnvironment before any subcommand runs.
var (
	appConfig *config.Config
	log       logger.Logger
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "customs-describer",
	Short: "Customs Describer - Add AI-generated customs descriptions to product catalogs",
	Long: `Customs Describer reads a product catalog CSV, checks that it follows one of
the known column layouts, sends every row to the classification service in a
single request and writes the catalog back out with an added
"Optimized Goods Description" column.

Accepted layouts:
  bulk-classify : Description, Detailed Description, Category, Brand,
                  Material/Composition, hs_code*
  board-output  : description, detailedDescription, category, hs_code*

The credential token is read from CREDENTIAL_TOKEN (environment or .env).

Example Usage:
  customs-describer describe catalog.csv              # Writes catalog-with-descriptions.csv
  customs-describer describe catalog.csv -o out.csv   # Explicit output path
  customs-describer validate catalog.csv              # Check columns only`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvironment(cmd)
	},

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// --config flag: Path to the YAML configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (optional unless given explicitly)",
	)

	// --env-file flag: Path to the .env file holding the credential token.
	rootCmd.PersistentFlags().StringVar(
		&envFile,
		"env-file",
		".env",
		"Path to a .env file loaded before reading the credential token",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadEnvironment loads the .env file, the configuration and the logger.
func loadEnvironment(cmd *cobra.Command) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	// An explicitly named config file must exist; the default one may not.
	required := cmd.Flags().Changed("config")
	cfg, err := config.Load(cfgFile, required)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	appConfig = cfg
	log = logger.New(logger.Config{
		Level:  level,
		JSON:   strings.EqualFold(cfg.LogFormat, "json"),
		Output: cmd.ErrOrStderr(),
	})
	return nil
}
