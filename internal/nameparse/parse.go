package nameparse

import (
	"regexp"
	"strings"
)

// Parsed is the decomposition of a raw team name.
type Parsed struct {
	// Organization is the club or center name ("Burlington", "Miss SW").
	Organization string
	// Division is the age-group token ("10U", "Senior"), empty when absent.
	Division string
	// Level is the competitive tier ("AAA", "HS"), empty when absent.
	Level string
	// Fallback reports that no division token was found and Organization
	// was derived heuristically rather than positionally.
	Fallback bool
}

var (
	// Leading bracketed roster-type tags such as "[Rep]".
	leadingTagPattern = regexp.MustCompile(`^\[[^\]]*\]\s*`)

	// Age-group marker: one or two digits followed by "U", or "Senior".
	divisionPattern = regexp.MustCompile(`\b(\d{1,2}U|Senior)\b`)

	// Competitive tiers, longest alternatives first so "AAA" never matches
	// as "AA" or "A".
	levelPattern = regexp.MustCompile(`\b(AAA|AA|A|B|C|D|DS|HS)\b`)
)

// Parse decomposes a raw team name. It never returns an error: input that
// defies decomposition yields the raw name as the organization with
// Fallback set.
func Parse(raw string) Parsed {
	clean := strings.TrimSpace(leadingTagPattern.ReplaceAllString(strings.TrimSpace(raw), ""))
	if clean == "" {
		return Parsed{Organization: raw, Fallback: true}
	}

	var parsed Parsed
	if loc := divisionPattern.FindStringIndex(clean); loc != nil {
		parsed.Division = clean[loc[0]:loc[1]]
		parsed.Organization = strings.TrimSpace(clean[:loc[0]])
	} else {
		parsed.Organization = firstWords(clean, 2)
		parsed.Fallback = true
	}

	if level := levelPattern.FindString(clean); level != "" {
		parsed.Level = level
	}

	return parsed
}

func firstWords(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}
