package fuzzymatch_test

import (
	"slices"
	"testing"

	"dugout/internal/fuzzymatch"
)

func TestVariantsStripsDashSuffix(t *testing.T) {
	got := fuzzymatch.Variants("Durham Crushers - 13U", "")
	want := []string{"Durham Crushers - 13U", "Durham Crushers"}
	if !slices.Equal(got, want) {
		t.Fatalf("Variants = %v, want %v", got, want)
	}
}

func TestVariantsStripsMascotSuffix(t *testing.T) {
	got := fuzzymatch.Variants("Forest Glade Falcons", "")
	if !slices.Contains(got, "Forest Glade") {
		t.Fatalf("expected mascot-stripped base in %v", got)
	}
	if got[0] != "Forest Glade Falcons" {
		t.Fatalf("raw query must stay first, got %v", got)
	}
}

func TestVariantsWithDivisionHint(t *testing.T) {
	got := fuzzymatch.Variants("Forest Glade Falcons - 11U", "11U")
	for _, want := range []string{
		"11U Forest Glade",
		"11U HS Forest Glade",
		"Forest Glade 11U",
		"Forest Glade 11U HS",
		"Forest Glade",
	} {
		if !slices.Contains(got, want) {
			t.Fatalf("expected variant %q in %v", want, got)
		}
	}
	// First-seen order with no duplicates.
	seen := map[string]int{}
	for _, v := range got {
		seen[v]++
		if seen[v] > 1 {
			t.Fatalf("duplicate variant %q in %v", v, got)
		}
	}
}

func TestResolveClearsFloorWithVariantHelp(t *testing.T) {
	candidates := []fuzzymatch.Candidate{{Name: "11U HS Forest Glade", Ref: "team-500718"}}

	match, ok := fuzzymatch.Resolve("Forest Glade Falcons", candidates, fuzzymatch.Options{MinConfidence: 60})
	if !ok {
		t.Fatal("expected a match at confidence floor 60")
	}
	if match.Name != "11U HS Forest Glade" {
		t.Fatalf("unexpected matched name %q", match.Name)
	}
	if match.Ref != "team-500718" {
		t.Fatalf("unexpected ref %v", match.Ref)
	}
	if match.Confidence < 60 {
		t.Fatalf("confidence %d below floor", match.Confidence)
	}
}

func TestResolveRejectsUnrelatedName(t *testing.T) {
	candidates := []fuzzymatch.Candidate{{Name: "11U HS Forest Glade"}}

	if _, ok := fuzzymatch.Resolve("Completely Unrelated Name", candidates, fuzzymatch.Options{MinConfidence: 60}); ok {
		t.Fatal("expected no match for unrelated name")
	}
}

func TestResolveDivisionHintImprovesConfidence(t *testing.T) {
	candidates := []fuzzymatch.Candidate{{Name: "11U HS Forest Glade"}}

	bare, ok := fuzzymatch.Resolve("Forest Glade Falcons", candidates, fuzzymatch.Options{MinConfidence: 1})
	if !ok {
		t.Fatal("expected bare match")
	}
	hinted, ok := fuzzymatch.Resolve("Forest Glade Falcons", candidates, fuzzymatch.Options{MinConfidence: 1, Division: "11U"})
	if !ok {
		t.Fatal("expected hinted match")
	}
	if hinted.Confidence <= bare.Confidence {
		t.Fatalf("expected division hint to raise confidence: bare=%d hinted=%d", bare.Confidence, hinted.Confidence)
	}
	if hinted.SearchTerm == "Forest Glade Falcons" {
		t.Fatalf("expected a synthesized variant to win, got %q", hinted.SearchTerm)
	}
}

func TestResolveTieBreaksByInputOrder(t *testing.T) {
	candidates := []fuzzymatch.Candidate{
		{Name: "Milton 13U AA", Ref: 1},
		{Name: "Milton 13U AA", Ref: 2},
	}
	match, ok := fuzzymatch.Resolve("Milton 13U AA", candidates, fuzzymatch.Options{MinConfidence: 60})
	if !ok {
		t.Fatal("expected match")
	}
	if match.Ref != 1 {
		t.Fatalf("expected first candidate to win the tie, got ref %v", match.Ref)
	}
}

func TestResolveEmptyCandidates(t *testing.T) {
	if _, ok := fuzzymatch.Resolve("Milton", nil, fuzzymatch.Options{MinConfidence: 0}); ok {
		t.Fatal("expected no match with no candidates")
	}
}
