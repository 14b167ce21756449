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

// MetadataSyncJobConfig holds configuration for the metadata enrichment job
type MetadataSyncJobConfig struct {
	// Window is how long a completed metadata sync stays fresh
	Window time.Duration
}

// metadataSyncJob enriches every cataloged coin with descriptive metadata
type metadataSyncJob struct {
	config *MetadataSyncJobConfig
	client coinmarketcap.Client
	store  store.Store
}

// NewMetadataSyncJob creates a new metadata enrichment job
func NewMetadataSyncJob(config *MetadataSyncJobConfig, client coinmarketcap.Client, st store.Store) Job {
	return &metadataSyncJob{
		config: config,
		client: client,
		store:  st,
	}
}

// Name returns the job's name
func (j *metadataSyncJob) Name() string {
	return "metadata-sync"
}

// Run enriches the catalog if its ledger entry has gone stale. It prefers
// the ids the catalog job handed over in this cycle and falls back to the
// whole catalog when the catalog job skipped.
func (j *metadataSyncJob) Run(ctx context.Context, now time.Time, carryIDs []int64) (*Result, error) {
	syncTime, err := j.store.GetSyncTime(ctx, store.SourceMetadata)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata sync time: %w", err)
	}

	if !freshness.IsStale(syncTime, j.config.Window, now) {
		logger.InfoCtx(ctx, "Metadata still fresh, skipping sync",
			zap.Timep("last_synced", syncTime),
		)
		return &Result{Skipped: true}, nil
	}

	ids := carryIDs
	if ids == nil {
		ids, err = j.store.GetAllCoinIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list coin ids: %w", err)
		}
	}

	// An empty catalog leaves the ledger untouched so the next cycle
	// retries as soon as coins appear
	if len(ids) == 0 {
		logger.InfoCtx(ctx, "Catalog is empty, nothing to enrich")
		return &Result{}, nil
	}

	metadata, err := j.client.FetchMetadata(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata: %w", err)
	}

	upserts := make([]store.MetadataUpsert, 0, len(metadata))
	for _, entry := range metadata {
		upserts = append(upserts, store.MetadataUpsert{
			CoinID:      entry.ID,
			Symbol:      entry.Symbol,
			Name:        entry.Name,
			Slug:        entry.Slug,
			Logo:        entry.Logo,
			Description: entry.Description,
			Website:     entry.Website(),
			Category:    entry.Category,
		})
	}

	if err := j.store.UpsertCoinMetadata(ctx, upserts, now); err != nil {
		return nil, fmt.Errorf("failed to upsert metadata: %w", err)
	}

	return &Result{Processed: len(upserts)}, nil
}
