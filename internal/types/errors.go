package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// =============================================================================
// ERROR KINDS
// =============================================================================

// ErrorKind identifies which stage of the pipeline rejected a run.
type ErrorKind int

const (
	// KindUnknown is never set on an Error; it is what KindOf reports for
	// errors that did not come from this package.
	KindUnknown ErrorKind = iota

	// KindOutputExists: the explicit output path exists and overwrite is off.
	KindOutputExists

	// KindSchemaMismatch: no known schema has all of its required columns.
	KindSchemaMismatch

	// KindAmbiguousSchema: more than one known schema has all of its columns.
	KindAmbiguousSchema

	// KindHSCodeColumnMissing: no column name starts with "hs_code".
	KindHSCodeColumnMissing

	// KindRemoteCallFailed: the classification service answered with a
	// non-success status.
	KindRemoteCallFailed

	// KindRemoteDataMissing: the classification service answered 200 but the
	// result envelope was absent or did not line up with the request.
	KindRemoteDataMissing
)

// String returns the name of the kind as used in log output.
func (k ErrorKind) String() string {
	switch k {
	case KindOutputExists:
		return "OutputExists"
	case KindSchemaMismatch:
		return "SchemaMismatch"
	case KindAmbiguousSchema:
		return "AmbiguousSchema"
	case KindHSCodeColumnMissing:
		return "HsCodeColumnMissing"
	case KindRemoteCallFailed:
		return "RemoteCallFailed"
	case KindRemoteDataMissing:
		return "RemoteDataMissing"
	default:
		return "Unknown"
	}
}

// =============================================================================
// ERROR STRUCTURE
// =============================================================================

// Error is the error type returned by every pipeline stage.
// Only the fields relevant to Kind are populated.
type Error struct {
	Kind ErrorKind

	// Path is the offending file for KindOutputExists.
	Path string

	// Missing maps schema name to its missing columns (KindSchemaMismatch).
	Missing map[string][]string

	// Schemas lists the schemas that all matched (KindAmbiguousSchema).
	Schemas []string

	// StatusCode and Body describe the HTTP response (KindRemoteCallFailed).
	StatusCode int
	Body       string

	// Detail is the service-reported error payload or a description of what
	// was wrong with the result envelope (KindRemoteDataMissing).
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindOutputExists:
		return fmt.Sprintf("output file %q exists; pass --overwrite to replace it", e.Path)
	case KindSchemaMismatch:
		return "input file is missing columns: " + formatMissing(e.Missing)
	case KindAmbiguousSchema:
		return fmt.Sprintf("input file matches more than one schema: %s", strings.Join(e.Schemas, ", "))
	case KindHSCodeColumnMissing:
		return `could not find the hs_code column; its name must start with "hs_code"`
	case KindRemoteCallFailed:
		return fmt.Sprintf("response code of %d received\n\n%s", e.StatusCode, e.Body)
	case KindRemoteDataMissing:
		return fmt.Sprintf("no data returned\n\n%s", e.Detail)
	default:
		return "unknown describer error"
	}
}

// formatMissing renders the per-schema missing columns in a stable order.
func formatMissing(missing map[string][]string) string {
	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s [%s]", name, strings.Join(missing[name], ", ")))
	}
	return strings.Join(parts, "; ")
}

// =============================================================================
// HELPERS
// =============================================================================

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
