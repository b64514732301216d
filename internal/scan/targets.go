package scan

import "dugout/internal/config"

// IDRange is an inclusive span of team IDs to probe.
type IDRange struct {
	Start int
	End   int
}

// Target is one affiliate's known-active ID ranges.
type Target struct {
	Affiliate string
	Name      string
	Ranges    []IDRange
}

// DefaultTargets lists the affiliate ID ranges verified to hold active
// teams. Ranges are sampled rather than swept; IDs are assigned in blocks
// so a stride still lands on most teams.
var DefaultTargets = []Target{
	{Affiliate: "2106", Name: "LDBA", Ranges: []IDRange{{Start: 500400, End: 500450}, {Start: 503300, End: 503350}}},
	{Affiliate: "2105", Name: "ICBA", Ranges: []IDRange{{Start: 499900, End: 499950}}},
	{Affiliate: "2111", Name: "SPBA", Ranges: []IDRange{{Start: 500300, End: 500400}}},
	{Affiliate: "0500", Name: "ABA", Ranges: []IDRange{{Start: 500750, End: 500850}}},
	{Affiliate: "2100", Name: "WOBA", Ranges: []IDRange{{Start: 500500, End: 500600}}},
}

// TargetsFromConfig converts configured overrides into scan targets, falling
// back to DefaultTargets when the config lists none.
func TargetsFromConfig(cfg *config.Config) []Target {
	if len(cfg.Scan.Targets) == 0 {
		return DefaultTargets
	}
	targets := make([]Target, 0, len(cfg.Scan.Targets))
	for _, t := range cfg.Scan.Targets {
		ranges := make([]IDRange, 0, len(t.Ranges))
		for _, r := range t.Ranges {
			ranges = append(ranges, IDRange{Start: r.Start, End: r.End})
		}
		name := t.Name
		if name == "" {
			name = t.Affiliate
		}
		targets = append(targets, Target{Affiliate: t.Affiliate, Name: name, Ranges: ranges})
	}
	return targets
}
