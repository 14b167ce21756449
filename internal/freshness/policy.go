// Package freshness holds the staleness policy shared by the background sync
// jobs and the on-demand resolver. Both MUST use this single implementation;
// only the window differs between the two call sites.
package freshness

import "time"

// IsStale reports whether a record last updated at lastUpdated must be
// refreshed given the freshness window. A record that was never updated
// (nil lastUpdated) is always stale. A record exactly as old as the window
// is stale.
func IsStale(lastUpdated *time.Time, window time.Duration, now time.Time) bool {
	if lastUpdated == nil {
		return true
	}
	return now.Sub(*lastUpdated) >= window
}
