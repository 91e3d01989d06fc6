// =============================================================================
// Customs Describer - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Customs Describer CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   customs-describer describe [input.csv]  - Add optimized goods descriptions to a catalog
//   customs-describer validate [input.csv]  - Check a catalog against the known schemas
//   customs-describer version               - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/customs-describer/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
