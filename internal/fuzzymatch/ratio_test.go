package fuzzymatch_test

import (
	"testing"

	"dugout/internal/fuzzymatch"
)

func TestRatio(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "Burlington 10U AA", "Burlington 10U AA", 100},
		{"case insensitive", "MILTON METS", "milton mets", 100},
		{"diacritics folded", "Québec Capitales", "Quebec Capitales", 100},
		{"whitespace collapsed", "Forest  Glade", "Forest Glade", 100},
		{"both empty", "", "", 100},
		{"one empty", "Milton", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := fuzzymatch.Ratio(tc.a, tc.b); got != tc.want {
				t.Fatalf("Ratio(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestRatioOrdering(t *testing.T) {
	// A near-miss must outscore an unrelated name.
	near := fuzzymatch.Ratio("Burlington 10U AA", "Burlington 10U AAA")
	far := fuzzymatch.Ratio("Burlington 10U AA", "Oakville Senior Team A")
	if near <= far {
		t.Fatalf("expected near miss (%d) to outscore unrelated name (%d)", near, far)
	}
	if near < 90 {
		t.Fatalf("expected near miss to score at least 90, got %d", near)
	}
}

func TestTokenSortRatioIgnoresWordOrder(t *testing.T) {
	if got := fuzzymatch.TokenSortRatio("Forest Glade 11U", "11U Forest Glade"); got != 100 {
		t.Fatalf("TokenSortRatio = %d, want 100", got)
	}
	plain := fuzzymatch.Ratio("Forest Glade 11U", "11U Forest Glade")
	if plain == 100 {
		t.Fatal("plain ratio should penalize reordered tokens")
	}
}

func TestScoreTakesBestOfBoth(t *testing.T) {
	a, b := "Forest Glade 11U", "11U HS Forest Glade"
	plain := fuzzymatch.Ratio(a, b)
	sorted := fuzzymatch.TokenSortRatio(a, b)
	got := fuzzymatch.Score(a, b)
	want := plain
	if sorted > want {
		want = sorted
	}
	if got != want {
		t.Fatalf("Score = %d, want max(%d, %d)", got, plain, sorted)
	}
}
