package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/adapter"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/domain"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/freshness"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/logger"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/providers/coinmarketcap"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/store"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/store/schema"
)

const (
	// MaxHistoricalIDs caps how many coins one historical request may cover
	MaxHistoricalIDs = 10

	// MaxRankLimit caps the page size of rank listings
	MaxRankLimit = 1000

	// quoteCurrency is the fiat currency every provider quote is read in
	quoteCurrency = "USD"
)

// CoinHistory pairs a coin with its quotes over the requested range
type CoinHistory struct {
	Coin   schema.Coin
	Quotes []schema.Quote
}

// Config holds resolver configuration
type Config struct {
	// QuoteWindow is how long a stored latest quote satisfies a read
	QuoteWindow time.Duration
	// HistoricalRange is the default lookback when a request has no start
	HistoricalRange time.Duration
	// SearchLimit caps search results
	SearchLimit int
}

// Service answers catalog and quote reads, consulting the provider only when
// the cache cannot satisfy the request
//
//go:generate mockgen -source=resolver.go -destination=../mocks/resolver.go -package=mocks -mock_names=Service=MockResolver
type Service interface {
	// Search finds cataloged coins whose symbol, name or slug matches any
	// comma-separated term of query
	Search(ctx context.Context, query string) ([]schema.Coin, error)

	// Historical returns each requested coin with its quote series over
	// [start, end], lazily loading unknown coins and backfilling empty ranges
	// from the provider. At most MaxHistoricalIDs ids per call.
	Historical(ctx context.Context, ids []int64, interval string, start, end *time.Time) ([]CoinHistory, error)

	// LatestByIDs passes the provider's current quotes through unmodified
	LatestByIDs(ctx context.Context, ids []int64) (*coinmarketcap.QuotesLatestResponse, error)

	// CoinsByRank lists cataloged coins by market-cap rank, skipping the
	// first start coins
	CoinsByRank(ctx context.Context, start, limit int) ([]schema.Coin, error)
}

type resolver struct {
	config *Config
	store  store.Store
	client coinmarketcap.Client
	clock  adapter.Clock
}

// New creates a new resolver service
func New(config *Config, st store.Store, client coinmarketcap.Client, clock adapter.Clock) Service {
	return &resolver{
		config: config,
		store:  st,
		client: client,
		clock:  clock,
	}
}

// Search finds cataloged coins matching query. A comma-separated query is a
// set of terms and every term is matched independently.
func (r *resolver) Search(ctx context.Context, query string) ([]schema.Coin, error) {
	var terms []string
	for _, raw := range strings.Split(query, ",") {
		if term := strings.TrimSpace(raw); term != "" {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: query must not be empty", domain.ErrBadRequest)
	}

	coins, err := r.store.SearchCoins(ctx, terms, r.config.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search coins: %w", err)
	}

	return coins, nil
}

// Historical returns the requested coins with their quote series. The pass
// runs in three phases: load unknown coins from the provider, refresh stale
// latest quotes, then read the range and backfill coins whose range is empty.
func (r *resolver) Historical(ctx context.Context, ids []int64, interval string, start, end *time.Time) ([]CoinHistory, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one id is required", domain.ErrBadRequest)
	}
	if len(ids) > MaxHistoricalIDs {
		return nil, fmt.Errorf("%w: at most %d ids per request", domain.ErrBadRequest, MaxHistoricalIDs)
	}

	now := r.clock.Now()
	rangeEnd := now
	if end != nil {
		rangeEnd = *end
	}
	rangeStart := rangeEnd.Add(-r.config.HistoricalRange)
	if start != nil {
		rangeStart = *start
	}
	if rangeEnd.Before(rangeStart) {
		return nil, fmt.Errorf("%w: end must not precede start", domain.ErrBadRequest)
	}

	coins, err := r.loadCoins(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(coins) == 0 {
		return nil, fmt.Errorf("%w: no such coins", domain.ErrNotFound)
	}

	if err := r.refreshStaleQuotes(ctx, coins, now); err != nil {
		return nil, err
	}

	histories := make([]CoinHistory, 0, len(coins))
	var backfill []schema.Coin
	for _, coin := range coins {
		quotes, err := r.store.GetQuotesInRange(ctx, coin.CoinID, rangeStart, rangeEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to read quotes: %w", err)
		}
		if len(quotes) == 0 {
			backfill = append(backfill, coin)
		}
		histories = append(histories, CoinHistory{Coin: coin, Quotes: quotes})
	}

	if len(backfill) > 0 {
		if err := r.backfillHistory(ctx, backfill, interval, rangeStart, rangeEnd); err != nil {
			return nil, err
		}
		for i := range histories {
			if len(histories[i].Quotes) > 0 {
				continue
			}
			quotes, err := r.store.GetQuotesInRange(ctx, histories[i].Coin.CoinID, rangeStart, rangeEnd)
			if err != nil {
				return nil, fmt.Errorf("failed to read quotes: %w", err)
			}
			histories[i].Quotes = quotes
		}
	}

	// Coins whose range stayed empty even after backfill are omitted rather
	// than returned hollow
	results := make([]CoinHistory, 0, len(histories))
	for _, h := range histories {
		if len(h.Quotes) > 0 {
			results = append(results, h)
		}
	}

	return results, nil
}

// LatestByIDs passes the provider's current quotes through unmodified
func (r *resolver) LatestByIDs(ctx context.Context, ids []int64) (*coinmarketcap.QuotesLatestResponse, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one id is required", domain.ErrBadRequest)
	}

	resp, err := r.client.FetchLatestQuotes(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest quotes: %w", err)
	}

	return resp, nil
}

// CoinsByRank lists cataloged coins by rank. start is the number of coins to
// skip from the top of the ranking.
func (r *resolver) CoinsByRank(ctx context.Context, start, limit int) ([]schema.Coin, error) {
	if start < 0 {
		return nil, fmt.Errorf("%w: start must not be negative", domain.ErrBadRequest)
	}
	if limit < 1 || limit > MaxRankLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrBadRequest, MaxRankLimit)
	}

	coins, err := r.store.GetCoinsByRank(ctx, start, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list coins by rank: %w", err)
	}

	return coins, nil
}

// loadCoins reads the requested coins, fetching any the catalog has never
// seen from the provider first. Ids the provider does not know are dropped.
func (r *resolver) loadCoins(ctx context.Context, ids []int64) ([]schema.Coin, error) {
	coins, err := r.store.GetCoinsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to read coins: %w", err)
	}

	known := make(map[int64]bool, len(coins))
	for _, coin := range coins {
		known[coin.CoinID] = true
	}

	var missing []int64
	for _, id := range ids {
		if !known[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return coins, nil
	}

	logger.InfoCtx(ctx, "Lazy-loading coins unknown to the catalog",
		zap.Int64s("ids", missing),
	)

	metadata, err := r.client.FetchMetadata(ctx, missing)
	if err != nil {
		// A provider failure drops the unknown ids from the result instead
		// of failing the coins that did resolve
		logger.ErrorCtx(ctx, fmt.Errorf("failed to fetch metadata for unknown coins: %w", err),
			zap.Int64s("ids", missing),
		)
		return coins, nil
	}

	discovered := make([]schema.Coin, 0, len(metadata))
	for _, entry := range metadata {
		discovered = append(discovered, schema.Coin{
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
	if len(discovered) == 0 {
		return coins, nil
	}

	if err := r.store.CreateCoins(ctx, discovered); err != nil {
		return nil, fmt.Errorf("failed to store lazy-loaded coins: %w", err)
	}

	return append(coins, discovered...), nil
}

// refreshStaleQuotes appends a fresh latest quote for every coin whose newest
// stored quote is older than the quote window. One provider call covers all
// stale coins.
func (r *resolver) refreshStaleQuotes(ctx context.Context, coins []schema.Coin, now time.Time) error {
	var stale []int64
	for _, coin := range coins {
		latest, err := r.store.GetLatestQuote(ctx, coin.CoinID)
		if err != nil {
			return fmt.Errorf("failed to read latest quote: %w", err)
		}

		var lastSeen *time.Time
		if latest != nil {
			lastSeen = &latest.Timestamp
		}
		if freshness.IsStale(lastSeen, r.config.QuoteWindow, now) {
			stale = append(stale, coin.CoinID)
		}
	}
	if len(stale) == 0 {
		return nil
	}

	resp, err := r.client.FetchLatestQuotes(ctx, stale)
	if err != nil {
		// Stored quotes keep serving, stale but present
		logger.ErrorCtx(ctx, fmt.Errorf("failed to refresh quotes: %w", err),
			zap.Int64s("ids", stale),
		)
		return nil
	}

	quotes := make([]schema.Quote, 0, len(resp.Data))
	for _, entry := range resp.Data {
		detail, ok := entry.Quote[quoteCurrency]
		if !ok {
			continue
		}
		quotes = append(quotes, quoteFromDetail(entry.ID, now, detail))
	}

	if err := r.store.InsertQuotes(ctx, quotes); err != nil {
		return fmt.Errorf("failed to store refreshed quotes: %w", err)
	}

	return nil
}

// backfillHistory fetches provider series for coins with no stored quotes in
// the range and persists them under the provider's own timestamps. The
// provider endpoint is keyed by symbol, one call per coin.
func (r *resolver) backfillHistory(ctx context.Context, coins []schema.Coin, interval string, start, end time.Time) error {
	var quotes []schema.Quote
	for _, coin := range coins {
		logger.InfoCtx(ctx, "Backfilling historical quotes",
			zap.String("symbol", coin.Symbol),
			zap.Time("start", start),
			zap.Time("end", end),
		)

		series, err := r.client.FetchHistoricalQuotes(ctx, coin.Symbol, &start, &end, interval)
		if err != nil {
			// The affected coin simply stays without quotes in this range
			logger.ErrorCtx(ctx, fmt.Errorf("failed to fetch historical quotes: %w", err),
				zap.String("symbol", coin.Symbol),
			)
			continue
		}

		for _, observation := range series {
			detail, ok := observation.Quote[quoteCurrency]
			if !ok {
				continue
			}
			quotes = append(quotes, quoteFromDetail(coin.CoinID, observation.Timestamp, detail))
		}
	}
	if len(quotes) == 0 {
		return nil
	}

	if err := r.store.InsertQuotes(ctx, quotes); err != nil {
		return fmt.Errorf("failed to store historical quotes: %w", err)
	}

	return nil
}

// quoteFromDetail maps one provider quote block to a stored quote row
func quoteFromDetail(coinID int64, ts time.Time, detail coinmarketcap.QuoteDetail) schema.Quote {
	var lastUpdated *time.Time
	if !detail.LastUpdated.IsZero() {
		lu := detail.LastUpdated
		lastUpdated = &lu
	}
	return schema.Quote{
		CoinID:                coinID,
		Timestamp:             ts,
		Price:                 detail.Price,
		Volume24h:             detail.Volume24h,
		VolumeChange24h:       detail.VolumeChange24h,
		MarketCap:             detail.MarketCap,
		MarketCapDominance:    detail.MarketCapDominance,
		FullyDilutedMarketCap: detail.FullyDilutedMarketCap,
		PercentChange1h:       detail.PercentChange1h,
		PercentChange24h:      detail.PercentChange24h,
		PercentChange7d:       detail.PercentChange7d,
		PercentChange30d:      detail.PercentChange30d,
		LastUpdated:           lastUpdated,
	}
}
