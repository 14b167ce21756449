package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/adapter"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/logger"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/store"
)

// State describes what the scheduler is doing right now
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)

// SchedulerConfig holds configuration for the sync scheduler
type SchedulerConfig struct {
	// Window is the cadence between successful sync cycles
	Window time.Duration
	// RetryDelay is how long to wait before retrying after a failed cycle
	RetryDelay time.Duration
}

// Scheduler drives the sync jobs on their cadence. Cycles never overlap:
// a single goroutine runs the loop and jobs execute sequentially inside it.
type Scheduler interface {
	// Start begins the scheduler's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the scheduler
	// This waits for an in-progress cycle to complete
	Stop(ctx context.Context) error

	// Name returns the scheduler's name for logging and identification
	Name() string

	// Status reports whether a sync cycle is currently executing
	Status() State
}

type syncScheduler struct {
	config    *SchedulerConfig
	store     store.Store
	jobs      []Job
	clock     adapter.Clock
	state     atomic.Value
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewScheduler creates a new sync scheduler driving the given jobs in order
func NewScheduler(config *SchedulerConfig, st store.Store, clock adapter.Clock, jobs ...Job) Scheduler {
	s := &syncScheduler{
		config:    config,
		store:     st,
		jobs:      jobs,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
	s.state.Store(StateIdle)
	return s
}

// Name returns the scheduler's name
func (s *syncScheduler) Name() string {
	return "sync-scheduler"
}

// Status reports the current state
func (s *syncScheduler) Status() State {
	return s.state.Load().(State)
}

// Start begins the scheduler's main loop. Each iteration sleeps until the
// earlier of the ledger-derived due time and the next midnight, then runs
// one cycle. A failed cycle is retried after RetryDelay instead of waiting
// a full window.
func (s *syncScheduler) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting sync scheduler",
		zap.Duration("window", s.config.Window),
		zap.Duration("retry_delay", s.config.RetryDelay),
	)

	var retryAt *time.Time

	// One cycle runs right away so a restarted process converges without
	// waiting out the window. Jobs skip on their own when the data is fresh.
	if err := s.runOnce(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		logger.ErrorCtx(ctx, err)
		t := s.clock.Now().Add(s.config.RetryDelay)
		retryAt = &t
	}

	for {
		now := s.clock.Now()

		next, err := s.nextRunTime(ctx, now)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to compute next run time: %w", err))
			next = now.Add(s.config.RetryDelay)
		}
		if retryAt != nil {
			next = *retryAt
		}
		// The midnight trigger guarantees at most one calendar day between
		// cycles even when the ledger drifts
		if midnight := nextMidnight(now); midnight.Before(next) {
			next = midnight
		}

		wait := next.Sub(now)
		if wait < 0 {
			wait = 0
		}
		logger.InfoCtx(ctx, "Next sync cycle scheduled",
			zap.Time("at", next),
			zap.Duration("in", wait),
		)

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Sync scheduler stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Sync scheduler stop requested")
			return nil
		case <-s.clock.After(wait):
		}

		retryAt = nil
		if err := s.runOnce(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			logger.ErrorCtx(ctx, err)
			t := s.clock.Now().Add(s.config.RetryDelay)
			retryAt = &t
		}
	}
}

// Stop gracefully stops the scheduler with timeout support
func (s *syncScheduler) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping sync scheduler")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Sync scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Sync scheduler stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runOnce executes one cycle: every job in order, stopping at the first
// failure so a broken catalog pass never feeds the enrichment pass. Each
// job's CoinIDs, when set, are handed to the next job of the cycle.
func (s *syncScheduler) runOnce(ctx context.Context) error {
	runID := ulid.Make().String()
	s.state.Store(StateRunning)
	defer s.state.Store(StateIdle)

	start := s.clock.Now()
	logger.InfoCtx(ctx, "Sync cycle starting", zap.String("run_id", runID))

	var carry []int64
	for _, job := range s.jobs {
		result, err := job.Run(ctx, s.clock.Now(), carry)
		if err != nil {
			return fmt.Errorf("sync job %s failed: %w", job.Name(), err)
		}
		if result.CoinIDs != nil {
			carry = result.CoinIDs
		}
		logger.InfoCtx(ctx, "Sync job finished",
			zap.String("run_id", runID),
			zap.String("job", job.Name()),
			zap.Bool("skipped", result.Skipped),
			zap.Int("processed", result.Processed),
		)
	}

	logger.InfoCtx(ctx, "Sync cycle completed",
		zap.String("run_id", runID),
		zap.Duration("elapsed", s.clock.Since(start)),
	)

	return nil
}

// nextRunTime derives the next due time from the ledger: one window after
// the most recent source completion, or now when nothing has ever synced
func (s *syncScheduler) nextRunTime(ctx context.Context, now time.Time) (time.Time, error) {
	var latest *time.Time
	for _, source := range []string{store.SourceCatalog, store.SourceMetadata} {
		syncTime, err := s.store.GetSyncTime(ctx, source)
		if err != nil {
			return time.Time{}, err
		}
		if syncTime != nil && (latest == nil || syncTime.After(*latest)) {
			latest = syncTime
		}
	}

	if latest == nil {
		return now, nil
	}

	return latest.Add(s.config.Window), nil
}

func nextMidnight(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, now.Location())
}
