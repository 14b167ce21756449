package syncer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/freshness"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/logger"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/providers/coinmarketcap"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/store"
)

// CatalogSyncJobConfig holds configuration for the catalog sync job
type CatalogSyncJobConfig struct {
	// CatalogLimit caps how many listing entries are fetched per pass
	CatalogLimit int
	// Window is how long a completed catalog sync stays fresh
	Window time.Duration
}

// catalogSyncJob refreshes the coin catalog from the provider listing
type catalogSyncJob struct {
	config *CatalogSyncJobConfig
	client coinmarketcap.Client
	store  store.Store
}

// NewCatalogSyncJob creates a new catalog sync job
func NewCatalogSyncJob(config *CatalogSyncJobConfig, client coinmarketcap.Client, st store.Store) Job {
	return &catalogSyncJob{
		config: config,
		client: client,
		store:  st,
	}
}

// Name returns the job's name
func (j *catalogSyncJob) Name() string {
	return "catalog-sync"
}

// Run refreshes the catalog if its ledger entry has gone stale. The ledger
// row is written in the same transaction as the coins, so a failed pass
// leaves the previous sync time in place and the next cycle retries. The
// fetched ids are returned so the metadata job of the same cycle can enrich
// exactly what this pass wrote.
func (j *catalogSyncJob) Run(ctx context.Context, now time.Time, _ []int64) (*Result, error) {
	syncTime, err := j.store.GetSyncTime(ctx, store.SourceCatalog)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog sync time: %w", err)
	}

	if !freshness.IsStale(syncTime, j.config.Window, now) {
		logger.InfoCtx(ctx, "Catalog still fresh, skipping sync",
			zap.Timep("last_synced", syncTime),
		)
		return &Result{Skipped: true}, nil
	}

	entries, err := j.client.FetchCatalog(ctx, j.config.CatalogLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	upserts := make([]store.CatalogUpsert, 0, len(entries))
	ids := make([]int64, 0, len(entries))
	for _, entry := range entries {
		upserts = append(upserts, store.CatalogUpsert{
			CoinID: entry.ID,
			Symbol: entry.Symbol,
			Name:   entry.Name,
			Slug:   entry.Slug,
			Rank:   entry.Rank,
		})
		ids = append(ids, entry.ID)
	}

	if err := j.store.UpsertCatalog(ctx, upserts, now); err != nil {
		return nil, fmt.Errorf("failed to upsert catalog: %w", err)
	}

	return &Result{Processed: len(upserts), CoinIDs: ids}, nil
}
