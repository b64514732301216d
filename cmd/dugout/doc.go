// Command dugout resolves tournament team names against the registered team
// directory, imports rosters through the cache, and scans affiliate ID
// ranges to discover new teams.
package main
