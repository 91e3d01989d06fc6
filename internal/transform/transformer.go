// =============================================================================
// Customs Describer - Field Transformations
// =============================================================================
//
// Field values taken from a catalog row are normalized through small,
// ordered action chains before they go into a classification request.
//
// TRANSFORMATION TYPES:
//   - replace   : Replace every occurrence of Find with Value
//   - truncate  : Keep the first N characters (N given as Value)
//
// =============================================================================

package transform

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// ACTIONS
// =============================================================================

// Action is a single transformation step.
type Action struct {
	// Type is either "replace" or "truncate".
	Type string

	// Value is the replacement string ("replace") or the length ("truncate").
	Value string

	// Find is the substring to replace.
	Find string
}

// HSCodeActions normalizes an HS code for the classifier: every "." is
// removed and the result is cut to six characters. Shorter codes are left
// as they are.
var HSCodeActions = []Action{
	{Type: "replace", Find: ".", Value: ""},
	{Type: "truncate", Value: "6"},
}

// Apply runs actions over value in order.
func Apply(value string, actions []Action) (string, error) {
	result := value
	for _, action := range actions {
		var err error
		result, err = ApplyAction(result, action)
		if err != nil {
			return "", fmt.Errorf("transformation '%s' failed: %w", action.Type, err)
		}
	}
	return result, nil
}

// ApplyAction applies a single action.
func ApplyAction(value string, action Action) (string, error) {
	switch action.Type {

	case "replace":
		// EXAMPLE:
		//   Input: "8533.40.10"
		//   Action: replace with find "." and value ""
		//   Output: "85334010"
		if action.Find == "" {
			return "", fmt.Errorf("replace requires a find string")
		}
		return strings.ReplaceAll(value, action.Find, action.Value), nil

	case "truncate":
		// EXAMPLE:
		//   Input: "85334010"
		//   Action: truncate with value "6"
		//   Output: "853340"
		length, err := strconv.Atoi(action.Value)
		if err != nil || length < 0 {
			return "", fmt.Errorf("invalid truncate length %q", action.Value)
		}
		return Truncate(value, length), nil

	default:
		return "", fmt.Errorf("unknown transformation type: %s", action.Type)
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// Truncate keeps the first length runes of s.
func Truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length])
}
