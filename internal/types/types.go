// =============================================================================
// Customs Describer - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - transform   (builds request items from rows)
//   - classifier  (sends request items, decodes results)
//   - describer   (orchestrates the pipeline)
//
// =============================================================================

package types

// =============================================================================
// CLASSIFICATION REQUEST TYPES
// =============================================================================

// RequestItem is the normalized per-row payload sent to the classifier.
// One item is built for every row of the input table, in row order.
type RequestItem struct {
	// Name and Description carry the same source value.
	// The classification service expects both keys.
	Name        string `json:"name"`
	Description string `json:"description"`

	// Categories is the category path split on " > ".
	// It is nil (and omitted from the payload) when the row has no category.
	Categories []string `json:"categories,omitempty"`

	Configuration Configuration `json:"configuration"`
}

// Configuration holds per-item classification hints.
type Configuration struct {
	// HSCodeProvided is the dot-stripped HS code, cut to six characters.
	HSCodeProvided string `json:"hsCodeProvided"`
}

// =============================================================================
// CLASSIFICATION RESULT TYPES
// =============================================================================

// ClassificationResult is one entry of the classificationsCalculate array.
// Results are matched to request items by position only.
type ClassificationResult struct {
	ID                 string `json:"id"`
	CustomsDescription string `json:"customsDescription"`
}
