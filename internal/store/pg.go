package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. If any of the pool settings are 0, reasonable defaults
// are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// GetCoinsByIDs retrieves multiple coins by their provider ids
func (s *pgStore) GetCoinsByIDs(ctx context.Context, ids []int64) ([]schema.Coin, error) {
	if len(ids) == 0 {
		return []schema.Coin{}, nil
	}

	var coins []schema.Coin
	err := s.db.WithContext(ctx).
		Where("coin_id IN ?", ids).
		Find(&coins).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get coins by ids: %w", err)
	}

	return coins, nil
}

// SearchCoins retrieves coins whose symbol, name or slug equals any of the
// terms, case-insensitively, ordered by rank with unranked coins last
func (s *pgStore) SearchCoins(ctx context.Context, terms []string, limit int) ([]schema.Coin, error) {
	if len(terms) == 0 {
		return []schema.Coin{}, nil
	}

	lowered := make([]string, 0, len(terms))
	for _, term := range terms {
		lowered = append(lowered, strings.ToLower(term))
	}

	var coins []schema.Coin
	err := s.db.WithContext(ctx).
		Where("LOWER(symbol) IN ? OR LOWER(name) IN ? OR LOWER(slug) IN ?", lowered, lowered, lowered).
		Order("rank ASC NULLS LAST").
		Limit(limit).
		Find(&coins).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search coins: %w", err)
	}

	return coins, nil
}

// GetCoinsByRank retrieves ranked coins ordered by rank ascending
func (s *pgStore) GetCoinsByRank(ctx context.Context, offset, limit int) ([]schema.Coin, error) {
	var coins []schema.Coin
	err := s.db.WithContext(ctx).
		Where("rank IS NOT NULL").
		Order("rank ASC").
		Offset(offset).
		Limit(limit).
		Find(&coins).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get coins by rank: %w", err)
	}

	return coins, nil
}

// GetAllCoinIDs retrieves the provider ids of every coin in the catalog
func (s *pgStore) GetAllCoinIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).
		Model(&schema.Coin{}).
		Order("coin_id ASC").
		Pluck("coin_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get coin ids: %w", err)
	}

	return ids, nil
}

// CreateCoins inserts coins discovered outside the catalog sync, keeping
// any row that already exists
func (s *pgStore) CreateCoins(ctx context.Context, coins []schema.Coin) error {
	if len(coins) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "coin_id"}},
		DoNothing: true,
	}).CreateInBatches(coins, 5000).Error
	if err != nil {
		return fmt.Errorf("failed to create coins: %w", err)
	}

	return nil
}

// UpsertCatalog writes catalog entries and the catalog ledger row atomically.
// Conflicting rows only have their identity columns overwritten so that
// previously enriched metadata survives a catalog refresh.
func (s *pgStore) UpsertCatalog(ctx context.Context, entries []CatalogUpsert, syncedAt time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(entries) > 0 {
			coins := make([]schema.Coin, 0, len(entries))
			for _, e := range entries {
				coins = append(coins, schema.Coin{
					CoinID: e.CoinID,
					Symbol: e.Symbol,
					Name:   e.Name,
					Slug:   e.Slug,
					Rank:   e.Rank,
				})
			}

			// 6 bound fields per row keeps well under the 65535 parameter cap
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "coin_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"symbol", "name", "slug", "rank", "updated_at"}),
			}).CreateInBatches(coins, 5000).Error; err != nil {
				return fmt.Errorf("failed to upsert catalog entries: %w", err)
			}
		}

		if err := touchSyncTime(tx, SourceCatalog, syncedAt); err != nil {
			return err
		}

		return nil
	})
}

// UpsertCoinMetadata writes metadata entries and the metadata ledger row
// atomically. Coins the catalog has not seen are created from the entry's
// identity fields; existing rows only have their metadata columns
// overwritten, so rank survives.
func (s *pgStore) UpsertCoinMetadata(ctx context.Context, entries []MetadataUpsert, syncedAt time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(entries) > 0 {
			coins := make([]schema.Coin, 0, len(entries))
			for _, e := range entries {
				coins = append(coins, schema.Coin{
					CoinID:      e.CoinID,
					Symbol:      e.Symbol,
					Name:        e.Name,
					Slug:        e.Slug,
					Logo:        e.Logo,
					Description: e.Description,
					Website:     e.Website,
					Category:    e.Category,
				})
			}

			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "coin_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"logo", "description", "website", "category", "updated_at"}),
			}).CreateInBatches(coins, 5000).Error; err != nil {
				return fmt.Errorf("failed to upsert coin metadata: %w", err)
			}
		}

		if err := touchSyncTime(tx, SourceMetadata, syncedAt); err != nil {
			return err
		}

		return nil
	})
}

// GetLatestQuote retrieves the newest stored quote for a coin
func (s *pgStore) GetLatestQuote(ctx context.Context, coinID int64) (*schema.Quote, error) {
	var quote schema.Quote
	err := s.db.WithContext(ctx).
		Where("coin_id = ?", coinID).
		Order("timestamp DESC").
		First(&quote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest quote: %w", err)
	}

	return &quote, nil
}

// GetQuotesInRange retrieves a coin's quotes within [start, end] ordered by
// timestamp ascending
func (s *pgStore) GetQuotesInRange(ctx context.Context, coinID int64, start, end time.Time) ([]schema.Quote, error) {
	var quotes []schema.Quote
	err := s.db.WithContext(ctx).
		Where("coin_id = ? AND timestamp >= ? AND timestamp <= ?", coinID, start, end).
		Order("timestamp ASC").
		Find(&quotes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get quotes in range: %w", err)
	}

	return quotes, nil
}

// InsertQuote appends a single quote, dropping it silently when the
// (coin_id, timestamp) pair already exists
func (s *pgStore) InsertQuote(ctx context.Context, quote *schema.Quote) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "coin_id"}, {Name: "timestamp"}},
		DoNothing: true,
	}).Create(quote).Error
	if err != nil {
		return fmt.Errorf("failed to insert quote: %w", err)
	}

	return nil
}

// InsertQuotes appends a batch of quotes, dropping rows whose
// (coin_id, timestamp) pair already exists
func (s *pgStore) InsertQuotes(ctx context.Context, quotes []schema.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "coin_id"}, {Name: "timestamp"}},
		DoNothing: true,
	}).CreateInBatches(quotes, 5000).Error
	if err != nil {
		return fmt.Errorf("failed to insert quotes: %w", err)
	}

	return nil
}

// GetSyncTime retrieves the last successful completion time of a sync source
func (s *pgStore) GetSyncTime(ctx context.Context, source string) (*time.Time, error) {
	var row schema.SyncLedger
	err := s.db.WithContext(ctx).
		Where("source = ?", source).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sync time: %w", err)
	}

	return &row.UpdatedAt, nil
}

// TouchSyncTime records the completion time of a sync source
func (s *pgStore) TouchSyncTime(ctx context.Context, source string, syncedAt time.Time) error {
	return touchSyncTime(s.db.WithContext(ctx), source, syncedAt)
}

func touchSyncTime(tx *gorm.DB, source string, syncedAt time.Time) error {
	row := schema.SyncLedger{
		Source:    source,
		UpdatedAt: syncedAt,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source"}},
		DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to touch sync time for %s: %w", source, err)
	}

	return nil
}
