// =============================================================================
// Customs Describer - Catalog Schemas
// =============================================================================
//
// This package defines the column layouts the describer accepts and picks
// the one a loaded file follows.
//
// A schema lists its required columns in two groups. "Unnamed" columns are
// the generic item text fields, "named" columns are the domain fields. The
// split is for readers of this file only; matching treats both the same.
//
// Every schema also needs exactly one HS code column. That column is found
// by the "hs_code" name prefix rather than a fixed name, because exports
// carry the code length in the header ("hs_code_8", "hs_code_10", ...).
//
// =============================================================================

package schema

import (
	"sort"
	"strings"
)

// HSCodePrefix is the case-sensitive prefix that marks the HS code column.
const HSCodePrefix = "hs_code"

// =============================================================================
// SCHEMA DEFINITION
// =============================================================================

// Schema describes one accepted catalog layout.
type Schema struct {
	// Name identifies the schema in logs and error messages.
	Name string

	// UnnamedColumns are the generic item text columns.
	UnnamedColumns []string

	// NamedColumns are the domain columns.
	NamedColumns []string

	// DescriptionColumn feeds both the name and description of the request.
	DescriptionColumn string

	// CategoryColumn holds the " > " separated category path.
	CategoryColumn string
}

// RequiredColumns returns the unnamed columns followed by the named ones.
func (s Schema) RequiredColumns() []string {
	cols := make([]string, 0, len(s.UnnamedColumns)+len(s.NamedColumns))
	cols = append(cols, s.UnnamedColumns...)
	return append(cols, s.NamedColumns...)
}

// MissingColumns returns the required columns absent from headers, sorted.
// Matching is exact and case-sensitive.
func (s Schema) MissingColumns(headers []string) []string {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[h] = struct{}{}
	}

	var missing []string
	for _, col := range s.RequiredColumns() {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	sort.Strings(missing)
	return missing
}

// Fits reports whether headers contain every required column.
func (s Schema) Fits(headers []string) bool {
	return len(s.MissingColumns(headers)) == 0
}

// =============================================================================
// KNOWN SCHEMAS
// =============================================================================

// BulkClassify is the layout produced by the bulk classification export.
var BulkClassify = Schema{
	Name:              "bulk-classify",
	UnnamedColumns:    []string{"Description", "Detailed Description"},
	NamedColumns:      []string{"Category", "Brand", "Material/Composition"},
	DescriptionColumn: "Description",
	CategoryColumn:    "Category",
}

// BoardOutput is the layout produced by the classification board.
var BoardOutput = Schema{
	Name:              "board-output",
	UnnamedColumns:    []string{"description", "detailedDescription"},
	NamedColumns:      []string{"category"},
	DescriptionColumn: "description",
	CategoryColumn:    "category",
}

// Known lists the accepted schemas in detection order.
func Known() []Schema {
	return []Schema{BulkClassify, BoardOutput}
}

// =============================================================================
// HS CODE COLUMN
// =============================================================================

// HSCodeColumn returns the first header, in file order, that starts with
// HSCodePrefix.
func HSCodeColumn(headers []string) (string, bool) {
	for _, h := range headers {
		if strings.HasPrefix(h, HSCodePrefix) {
			return h, true
		}
	}
	return "", false
}
