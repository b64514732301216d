// Package nameparse decomposes free-text team names into organization,
// division, and level components.
//
// Team names arrive in wildly inconsistent formats ("Burlington 10U 3 A",
// "[Rep] Miss SW 11U AA", "11U HS Forest Glade"). Parse is a best-effort
// annotator, not a validator: it never fails, and degenerate input falls
// back to returning the raw name as the organization with the Fallback flag
// set.
package nameparse
