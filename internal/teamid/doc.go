// Package teamid resolves free-form team names against the registry and
// imports rosters for resolved teams, reading through the cache.
//
// Resolution never panics or errors on a miss: a failed lookup produces a
// Resolution with Matched false and a capped candidate list so callers can
// show what was available.
package teamid
