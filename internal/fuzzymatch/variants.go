package fuzzymatch

import "strings"

// mascotSuffixes are trailing nickname words commonly appended by tournament
// organizers but absent from the stats directory listings.
var mascotSuffixes = []string{
	"Falcons",
	"Eagles",
	"Knights",
	"Warriors",
	"Tigers",
	"Hawks",
	"Cardinals",
	"Blue Jays",
	"Cubs",
}

// Variants generates normalized query variants in match-priority order. The
// raw query always comes first; when a division hint is supplied, the common
// directory naming formats ("11U HS Forest Glade", "Forest Glade 11U") are
// synthesized from the mascot-stripped base. Duplicates are removed while
// preserving first-seen order.
func Variants(query, division string) []string {
	query = strings.TrimSpace(query)
	variants := []string{query}

	base := query
	if idx := strings.Index(base, " - "); idx >= 0 {
		base = strings.TrimSpace(base[:idx])
		variants = append(variants, base)
	}

	for _, suffix := range mascotSuffixes {
		if trimmed, ok := strings.CutSuffix(base, " "+suffix); ok {
			base = strings.TrimSpace(trimmed)
			variants = append(variants, base)
			break
		}
	}

	if division = strings.TrimSpace(division); division != "" && base != "" {
		variants = append(variants,
			division+" "+base,
			division+" HS "+base,
			base+" "+division,
			base+" "+division+" HS",
			base,
		)
	}

	return dedupe(variants)
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
