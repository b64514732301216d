package fuzzymatch

// Candidate pairs a catalog name with an opaque reference the caller can
// recover from a match.
type Candidate struct {
	Name string
	Ref  any
}

// Options controls resolution behavior.
type Options struct {
	// MinConfidence is the 0-100 floor a winning score must reach.
	MinConfidence int
	// Division, when non-empty, enables division-format query variants.
	Division string
}

// Match describes the winning (variant, candidate) pair.
type Match struct {
	Name       string
	Ref        any
	Confidence int
	// SearchTerm is the query variant that produced the winning score.
	SearchTerm string
}

// Resolve scores every generated query variant against every candidate and
// returns the single best pair when it reaches opts.MinConfidence. Ties are
// broken by variant generation order, then candidate input order, so results
// are deterministic for a given input ordering.
func Resolve(query string, candidates []Candidate, opts Options) (Match, bool) {
	if len(candidates) == 0 {
		return Match{}, false
	}

	best := Match{Confidence: -1}
	for _, variant := range Variants(query, opts.Division) {
		for _, candidate := range candidates {
			score := Score(variant, candidate.Name)
			if score > best.Confidence {
				best = Match{
					Name:       candidate.Name,
					Ref:        candidate.Ref,
					Confidence: score,
					SearchTerm: variant,
				}
			}
		}
	}

	if best.Confidence < opts.MinConfidence {
		return Match{}, false
	}
	return best, true
}
