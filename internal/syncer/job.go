package syncer

import (
	"context"
	"time"
)

// Result summarizes one job pass
type Result struct {
	// Skipped is true when the job found its data fresh and did no work
	Skipped bool
	// Processed is the number of entries written
	Processed int
	// CoinIDs holds the provider ids the pass covered, for jobs that feed a
	// later job in the same cycle. Nil when the job has nothing to hand over.
	CoinIDs []int64
}

// Job is a single idempotent sync pass. Jobs check their own ledger entry
// and skip when the data is still fresh, so running one early is harmless.
type Job interface {
	// Name returns the job's name for logging and identification
	Name() string

	// Run executes one pass at the given time. carryIDs are the ids handed
	// over by the preceding job of the cycle, nil when there are none.
	Run(ctx context.Context, now time.Time, carryIDs []int64) (*Result, error)
}
