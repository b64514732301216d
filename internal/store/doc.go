// Package store persists the team registry and the roster cache in a single
// SQLite database.
//
// The registry holds one row per source-assigned team ID with upsert
// semantics; rows are deactivated, never deleted. The roster cache is a
// pass-through cache: entries older than the freshness window are treated
// exactly like missing entries and are never returned partially trusted.
// The store assumes a single writer at a time and takes a file lock on open
// to enforce it.
package store
