package schema

// Outcome tags the variant held by a Detection.
type Outcome int

const (
	// NoMatch: no candidate had all of its required columns.
	NoMatch Outcome = iota
	// Matched: exactly one candidate fits.
	Matched
	// Ambiguous: several candidates fit.
	Ambiguous
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Ambiguous:
		return "ambiguous"
	default:
		return "no-match"
	}
}

// Detection is the result of checking a header row against a candidate list.
//
//   - Matched:   Schema is set.
//   - Ambiguous: Candidates holds every fitting schema, in candidate order.
//   - NoMatch:   Missing maps each candidate name to its missing columns.
type Detection struct {
	Outcome    Outcome
	Schema     Schema
	Candidates []Schema
	Missing    map[string][]string
}

// Detect checks headers against the known schemas.
func Detect(headers []string) Detection {
	return DetectAmong(Known(), headers)
}

// DetectAmong checks headers against candidates. The HS code column plays no
// part here; callers check it with HSCodeColumn.
func DetectAmong(candidates []Schema, headers []string) Detection {
	var fits []Schema
	missing := make(map[string][]string, len(candidates))

	for _, candidate := range candidates {
		cols := candidate.MissingColumns(headers)
		if len(cols) == 0 {
			fits = append(fits, candidate)
			continue
		}
		missing[candidate.Name] = cols
	}

	switch len(fits) {
	case 0:
		return Detection{Outcome: NoMatch, Missing: missing}
	case 1:
		return Detection{Outcome: Matched, Schema: fits[0]}
	default:
		return Detection{Outcome: Ambiguous, Candidates: fits}
	}
}

// Names returns the names of the ambiguous candidates.
func (d Detection) Names() []string {
	names := make([]string, len(d.Candidates))
	for i, c := range d.Candidates {
		names[i] = c.Name
	}
	return names
}
