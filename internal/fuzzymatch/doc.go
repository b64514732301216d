// Package fuzzymatch scores free-text team names against catalog entries.
//
// Scoring is a normalized edit-distance ratio in the range 0-100, computed
// case- and diacritic-insensitively, with a token-sorted variant so word
// order does not penalize otherwise identical names. Resolve tries several
// normalized variants of the query (mascot suffixes stripped, division
// prefixes added) and accepts the best pair only when it clears a
// configurable confidence floor; below the floor the caller is expected to
// surface the full candidate list for manual disambiguation instead of
// guessing.
package fuzzymatch
