package fuzzymatch

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics strips combining marks so "Québec" and "Quebec" compare equal.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, folds diacritics, and collapses whitespace runs.
func Normalize(s string) string {
	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// Ratio computes a normalized Levenshtein similarity between a and b in the
// range 0-100. 100 means the normalized forms are identical.
func Ratio(a, b string) int {
	return normalizedRatio(Normalize(a), Normalize(b))
}

// TokenSortRatio computes Ratio over the whitespace tokens of each string in
// sorted order, making the score tolerant of word-order differences.
func TokenSortRatio(a, b string) int {
	return normalizedRatio(sortTokens(Normalize(a)), sortTokens(Normalize(b)))
}

// Score is the similarity used for resolution: the better of the plain and
// token-sorted ratios.
func Score(a, b string) int {
	plain := Ratio(a, b)
	sorted := TokenSortRatio(a, b)
	if sorted > plain {
		return sorted
	}
	return plain
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func normalizedRatio(a, b string) int {
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	dist := levenshtein(a, b)
	return (100*(total-dist) + total/2) / total
}

// levenshtein computes the classic edit distance with a rolling row.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
