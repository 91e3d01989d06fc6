// =============================================================================
// Customs Describer - Validation Engine
// =============================================================================
//
// This module decides whether a loaded catalog can be sent for
// classification. It runs before any request is built.
//
// VALIDATION STRATEGY:
//   1. Header-level (fatal): the header row must fit exactly one known
//      schema and must contain an "hs_code*" column.
//   2. Row-level (warnings): rows with an empty description or an HS code
//      that is shorter than six characters once dots are removed are
//      reported, but the row is still sent as-is.
//
// ERROR HANDLING:
//   - Header failures return a *types.Error and stop the run
//   - Row warnings are collected on the Result for the caller to log
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/customs-describer/internal/csvparser"
	"github.com/ginjaninja78/customs-describer/internal/schema"
	"github.com/ginjaninja78/customs-describer/internal/types"
)

// =============================================================================
// VALIDATION WARNING
// =============================================================================

// Warning describes a row that will be sent but looks suspicious.
type Warning struct {
	// RowNumber is the 1-indexed data row (the header is row 0).
	RowNumber int

	// Field is the column the warning refers to.
	Field string

	// Value is the cell content.
	Value string

	// Message is a human-readable description.
	Message string
}

// String formats the warning for logs.
func (w Warning) String() string {
	return fmt.Sprintf("row %d, field '%s': %s (value: '%s')", w.RowNumber, w.Field, w.Message, w.Value)
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// Result contains the outcome of a successful validation.
type Result struct {
	// Schema is the layout the file follows.
	Schema schema.Schema

	// HSCodeColumn is the header of the HS code column.
	HSCodeColumn string

	// RowsValidated is the number of data rows inspected.
	RowsValidated int

	// Warnings lists non-fatal row findings.
	Warnings []Warning
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator checks tables against a list of candidate schemas.
type Validator struct {
	candidates []schema.Schema
}

// NewValidator creates a validator for the known schemas.
func NewValidator() *Validator {
	return &Validator{candidates: schema.Known()}
}

// Validate checks the header row and then the rows.
//
// RETURNS:
//   - The detected schema, HS code column and any row warnings.
//   - A *types.Error of kind SchemaMismatch, AmbiguousSchema or
//     HSCodeColumnMissing if the header row is unusable.
func (v *Validator) Validate(table *csvparser.Table) (*Result, error) {
	detection := schema.DetectAmong(v.candidates, table.Headers)

	switch detection.Outcome {
	case schema.NoMatch:
		return nil, &types.Error{Kind: types.KindSchemaMismatch, Missing: detection.Missing}
	case schema.Ambiguous:
		return nil, &types.Error{Kind: types.KindAmbiguousSchema, Schemas: detection.Names()}
	}

	hsColumn, ok := schema.HSCodeColumn(table.Headers)
	if !ok {
		return nil, &types.Error{Kind: types.KindHSCodeColumnMissing}
	}

	result := &Result{
		Schema:        detection.Schema,
		HSCodeColumn:  hsColumn,
		RowsValidated: table.RowCount(),
	}
	for i := range table.Rows {
		result.Warnings = append(result.Warnings, v.validateRow(i+1, table.Record(i), detection.Schema, hsColumn)...)
	}

	return result, nil
}

// validateRow collects warnings for one row.
func (v *Validator) validateRow(rowNumber int, row map[string]string, s schema.Schema, hsColumn string) []Warning {
	var warnings []Warning

	if desc := row[s.DescriptionColumn]; strings.TrimSpace(desc) == "" {
		warnings = append(warnings, Warning{
			RowNumber: rowNumber,
			Field:     s.DescriptionColumn,
			Value:     desc,
			Message:   "description is empty",
		})
	}

	hs := row[hsColumn]
	if n := len([]rune(strings.ReplaceAll(hs, ".", ""))); n < 6 {
		warnings = append(warnings, Warning{
			RowNumber: rowNumber,
			Field:     hsColumn,
			Value:     hs,
			Message:   fmt.Sprintf("HS code has %d digits, fewer than 6", n),
		})
	}

	return warnings
}

// =============================================================================
// WARNING FORMATTING
// =============================================================================

// FormatWarnings formats warnings for display.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return "No validation warnings."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Validation completed with %d warning(s):\n\n", len(warnings)))
	for i, w := range warnings {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, w.String()))
	}
	return builder.String()
}
