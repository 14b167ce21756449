package store

import (
	"context"
	"time"

	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// Names of the sync sources tracked in the ledger.
const (
	SourceCatalog  = "catalog"
	SourceMetadata = "metadata"
)

// CatalogUpsert carries the identity fields of one catalog entry. Descriptive
// metadata is intentionally absent so a catalog sync never clears enrichment.
type CatalogUpsert struct {
	CoinID int64
	Symbol string
	Name   string
	Slug   string
	Rank   *int
}

// MetadataUpsert carries one coin's descriptive metadata together with the
// identity fields needed to create the coin when the catalog has not seen it.
type MetadataUpsert struct {
	CoinID      int64
	Symbol      string
	Name        string
	Slug        string
	Logo        *string
	Description *string
	Website     *string
	Category    *string
}

// Store is the persistence surface of the cache. Reads that find nothing
// return (nil, nil) rather than an error.
type Store interface {
	// GetCoinsByIDs returns the coins whose provider ids are in ids. Missing
	// ids are simply absent from the result.
	GetCoinsByIDs(ctx context.Context, ids []int64) ([]schema.Coin, error)

	// SearchCoins returns coins whose symbol, name or slug equals any of the
	// terms case-insensitively, ordered by rank with unranked coins last.
	SearchCoins(ctx context.Context, terms []string, limit int) ([]schema.Coin, error)

	// GetCoinsByRank returns ranked coins ordered by rank ascending, skipping
	// offset rows and returning at most limit rows. Unranked coins are excluded.
	GetCoinsByRank(ctx context.Context, offset, limit int) ([]schema.Coin, error)

	// GetAllCoinIDs returns the provider ids of every coin in the catalog.
	GetAllCoinIDs(ctx context.Context) ([]int64, error)

	// CreateCoins inserts coins that are not yet in the catalog. Rows whose
	// coin_id already exists are left untouched, and the sync ledger does not
	// move.
	CreateCoins(ctx context.Context, coins []schema.Coin) error

	// UpsertCatalog writes catalog entries and marks the catalog source as
	// synced at syncedAt, atomically. Existing rows have their identity fields
	// overwritten; metadata fields are left untouched.
	UpsertCatalog(ctx context.Context, entries []CatalogUpsert, syncedAt time.Time) error

	// UpsertCoinMetadata writes metadata entries and marks the metadata source
	// as synced at syncedAt, atomically. Coins absent from the catalog are
	// created from the entry's identity fields.
	UpsertCoinMetadata(ctx context.Context, entries []MetadataUpsert, syncedAt time.Time) error

	// GetLatestQuote returns the newest stored quote for the coin, or nil if
	// the coin has no quotes.
	GetLatestQuote(ctx context.Context, coinID int64) (*schema.Quote, error)

	// GetQuotesInRange returns the coin's quotes with start <= timestamp <= end,
	// ordered by timestamp ascending.
	GetQuotesInRange(ctx context.Context, coinID int64, start, end time.Time) ([]schema.Quote, error)

	// InsertQuote appends a single quote. A duplicate (coin_id, timestamp) is
	// silently dropped.
	InsertQuote(ctx context.Context, quote *schema.Quote) error

	// InsertQuotes appends a batch of quotes, silently dropping rows whose
	// (coin_id, timestamp) already exists.
	InsertQuotes(ctx context.Context, quotes []schema.Quote) error

	// GetSyncTime returns the last successful completion time of the source,
	// or nil if the source has never completed.
	GetSyncTime(ctx context.Context, source string) (*time.Time, error)

	// TouchSyncTime records syncedAt as the completion time of the source.
	TouchSyncTime(ctx context.Context, source string, syncedAt time.Time) error
}
