package resolver_test

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/domain"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/logger"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/mocks"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/providers/coinmarketcap"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/resolver"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/store"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// memStore is an in-memory store.Store for exercising resolver flows without
// a database
type memStore struct {
	mu     sync.Mutex
	coins  map[int64]schema.Coin
	quotes map[int64][]schema.Quote
	ledger map[string]time.Time
}

func newMemStore() *memStore {
	return &memStore{
		coins:  map[int64]schema.Coin{},
		quotes: map[int64][]schema.Quote{},
		ledger: map[string]time.Time{},
	}
}

func (m *memStore) GetCoinsByIDs(_ context.Context, ids []int64) ([]schema.Coin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []schema.Coin
	for _, id := range ids {
		if coin, ok := m.coins[id]; ok {
			out = append(out, coin)
		}
	}
	return out, nil
}

func (m *memStore) SearchCoins(_ context.Context, terms []string, limit int) ([]schema.Coin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matches := func(coin schema.Coin) bool {
		for _, term := range terms {
			if strings.EqualFold(coin.Symbol, term) ||
				strings.EqualFold(coin.Name, term) ||
				strings.EqualFold(coin.Slug, term) {
				return true
			}
		}
		return false
	}
	var out []schema.Coin
	for _, coin := range m.coins {
		if matches(coin) {
			out = append(out, coin)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := out[i].Rank, out[j].Rank
		switch {
		case ri == nil:
			return false
		case rj == nil:
			return true
		default:
			return *ri < *rj
		}
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) GetCoinsByRank(_ context.Context, offset, limit int) ([]schema.Coin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ranked []schema.Coin
	for _, coin := range m.coins {
		if coin.Rank != nil {
			ranked = append(ranked, coin)
		}
	}
	sort.Slice(ranked, func(i, j int) bool { return *ranked[i].Rank < *ranked[j].Rank })
	if offset >= len(ranked) {
		return nil, nil
	}
	ranked = ranked[offset:]
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (m *memStore) GetAllCoinIDs(_ context.Context) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []int64
	for id := range m.coins {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *memStore) CreateCoins(_ context.Context, coins []schema.Coin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, coin := range coins {
		if _, ok := m.coins[coin.CoinID]; !ok {
			m.coins[coin.CoinID] = coin
		}
	}
	return nil
}

func (m *memStore) UpsertCatalog(_ context.Context, entries []store.CatalogUpsert, syncedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		coin := m.coins[e.CoinID]
		coin.CoinID = e.CoinID
		coin.Symbol = e.Symbol
		coin.Name = e.Name
		coin.Slug = e.Slug
		coin.Rank = e.Rank
		m.coins[e.CoinID] = coin
	}
	m.ledger[store.SourceCatalog] = syncedAt
	return nil
}

func (m *memStore) UpsertCoinMetadata(_ context.Context, entries []store.MetadataUpsert, syncedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		coin := m.coins[e.CoinID]
		coin.Logo = e.Logo
		coin.Description = e.Description
		coin.Website = e.Website
		coin.Category = e.Category
		m.coins[e.CoinID] = coin
	}
	m.ledger[store.SourceMetadata] = syncedAt
	return nil
}

func (m *memStore) GetLatestQuote(_ context.Context, coinID int64) (*schema.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	quotes := m.quotes[coinID]
	if len(quotes) == 0 {
		return nil, nil
	}
	latest := quotes[0]
	for _, q := range quotes[1:] {
		if q.Timestamp.After(latest.Timestamp) {
			latest = q
		}
	}
	return &latest, nil
}

func (m *memStore) GetQuotesInRange(_ context.Context, coinID int64, start, end time.Time) ([]schema.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []schema.Quote
	for _, q := range m.quotes[coinID] {
		if !q.Timestamp.Before(start) && !q.Timestamp.After(end) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (m *memStore) InsertQuote(ctx context.Context, quote *schema.Quote) error {
	return m.InsertQuotes(ctx, []schema.Quote{*quote})
}

func (m *memStore) InsertQuotes(_ context.Context, quotes []schema.Quote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range quotes {
		duplicate := false
		for _, existing := range m.quotes[q.CoinID] {
			if existing.Timestamp.Equal(q.Timestamp) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			m.quotes[q.CoinID] = append(m.quotes[q.CoinID], q)
		}
	}
	return nil
}

func (m *memStore) GetSyncTime(_ context.Context, source string) (*time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.ledger[source]; ok {
		return &t, nil
	}
	return nil, nil
}

func (m *memStore) TouchSyncTime(_ context.Context, source string, syncedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ledger[source] = syncedAt
	return nil
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

var testNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func newTestResolver(t *testing.T, st store.Store) (resolver.Service, *mocks.MockCMCClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := mocks.NewMockCMCClient(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()
	clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	svc := resolver.New(&resolver.Config{
		QuoteWindow:     time.Hour,
		HistoricalRange: 30 * 24 * time.Hour,
		SearchLimit:     50,
	}, st, client, clock)

	return svc, client
}

func seedCoin(st *memStore, id int64, symbol, name, slug string, rank *int) {
	st.coins[id] = schema.Coin{CoinID: id, Symbol: symbol, Name: name, Slug: slug, Rank: rank}
}

func latestQuotesResponse(entries ...coinmarketcap.QuoteEntry) *coinmarketcap.QuotesLatestResponse {
	resp := &coinmarketcap.QuotesLatestResponse{Data: map[string]coinmarketcap.QuoteEntry{}}
	for _, e := range entries {
		resp.Data[strings.ToLower(e.Symbol)] = e
	}
	return resp
}

func quoteEntry(id int64, symbol string, price float64) coinmarketcap.QuoteEntry {
	return coinmarketcap.QuoteEntry{
		ID:     id,
		Symbol: symbol,
		Quote: map[string]coinmarketcap.QuoteDetail{
			"USD": {Price: price, LastUpdated: testNow},
		},
	}
}

func TestSearchValidation(t *testing.T) {
	svc, _ := newTestResolver(t, newMemStore())

	_, err := svc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	// Commas alone carry no terms
	_, err = svc.Search(context.Background(), " , ,")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestSearch(t *testing.T) {
	st := newMemStore()
	seedCoin(st, 1, "BTC", "Bitcoin", "bitcoin", intPtr(1))
	seedCoin(st, 3717, "WBTC", "Wrapped Bitcoin", "wrapped-bitcoin", intPtr(12))
	seedCoin(st, 1027, "ETH", "Ethereum", "ethereum", intPtr(2))

	svc, _ := newTestResolver(t, st)

	// A term matches symbol, name or slug whole, not as a substring
	coins, err := svc.Search(context.Background(), "Bitcoin")
	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.Equal(t, int64(1), coins[0].CoinID)
}

func TestSearchMultipleTerms(t *testing.T) {
	st := newMemStore()
	seedCoin(st, 1, "BTC", "Bitcoin", "bitcoin", intPtr(1))
	seedCoin(st, 1027, "ETH", "Ethereum", "ethereum", intPtr(2))
	seedCoin(st, 52, "XRP", "XRP", "xrp", intPtr(3))

	svc, _ := newTestResolver(t, st)

	coins, err := svc.Search(context.Background(), "BTC, ETH")
	require.NoError(t, err)
	require.Len(t, coins, 2)
	assert.Equal(t, int64(1), coins[0].CoinID)
	assert.Equal(t, int64(1027), coins[1].CoinID)
}

func TestHistoricalValidation(t *testing.T) {
	svc, _ := newTestResolver(t, newMemStore())
	ctx := context.Background()

	_, err := svc.Historical(ctx, nil, "daily", nil, nil)
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	ids := make([]int64, resolver.MaxHistoricalIDs+1)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	_, err = svc.Historical(ctx, ids, "daily", nil, nil)
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	start := testNow
	end := testNow.Add(-time.Hour)
	_, err = svc.Historical(ctx, []int64{1}, "daily", &start, &end)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestHistoricalFreshCacheAvoidsProvider(t *testing.T) {
	st := newMemStore()
	seedCoin(st, 1, "BTC", "Bitcoin", "bitcoin", intPtr(1))
	st.quotes[1] = []schema.Quote{
		{CoinID: 1, Timestamp: testNow.Add(-30 * time.Minute), Price: 104000},
		{CoinID: 1, Timestamp: testNow.Add(-90 * time.Minute), Price: 103500},
	}

	// No client expectations: a fresh cache must not reach the provider
	svc, _ := newTestResolver(t, st)

	histories, err := svc.Historical(context.Background(), []int64{1}, "daily", nil, nil)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	assert.Equal(t, int64(1), histories[0].Coin.CoinID)
	require.Len(t, histories[0].Quotes, 2)
	assert.Equal(t, float64(103500), histories[0].Quotes[0].Price)
}

func TestHistoricalLazyLoadsUnknownCoins(t *testing.T) {
	st := newMemStore()
	svc, client := newTestResolver(t, st)

	// Only id 5 exists upstream; 404 vanishes from the result
	entry := coinmarketcap.MetadataEntry{ID: 5, Symbol: "PPC", Name: "Peercoin", Slug: "peercoin", Logo: strPtr("https://example.com/ppc.png")}
	client.EXPECT().FetchMetadata(gomock.Any(), []int64{5, 404}).Return(map[int64]coinmarketcap.MetadataEntry{5: entry}, nil)
	client.EXPECT().FetchLatestQuotes(gomock.Any(), []int64{5}).Return(latestQuotesResponse(quoteEntry(5, "PPC", 0.42)), nil)

	histories, err := svc.Historical(context.Background(), []int64{5, 404}, "daily", nil, nil)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	assert.Equal(t, int64(5), histories[0].Coin.CoinID)
	assert.Equal(t, "Peercoin", histories[0].Coin.Name)
	require.Len(t, histories[0].Quotes, 1)
	assert.Equal(t, 0.42, histories[0].Quotes[0].Price)
	assert.True(t, histories[0].Quotes[0].Timestamp.Equal(testNow))

	// The lazy-loaded coin persists with its metadata
	coins, err := st.GetCoinsByIDs(context.Background(), []int64{5})
	require.NoError(t, err)
	require.Len(t, coins, 1)
	require.NotNil(t, coins[0].Logo)
}

func TestHistoricalAllUnknown(t *testing.T) {
	st := newMemStore()
	svc, client := newTestResolver(t, st)

	client.EXPECT().FetchMetadata(gomock.Any(), []int64{404}).Return(map[int64]coinmarketcap.MetadataEntry{}, nil)

	_, err := svc.Historical(context.Background(), []int64{404}, "daily", nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoricalRefreshesStaleQuote(t *testing.T) {
	st := newMemStore()
	seedCoin(st, 1, "BTC", "Bitcoin", "bitcoin", intPtr(1))
	st.quotes[1] = []schema.Quote{
		{CoinID: 1, Timestamp: testNow.Add(-2 * time.Hour), Price: 103000},
	}

	svc, client := newTestResolver(t, st)
	client.EXPECT().FetchLatestQuotes(gomock.Any(), []int64{1}).Return(latestQuotesResponse(quoteEntry(1, "BTC", 104500)), nil)

	histories, err := svc.Historical(context.Background(), []int64{1}, "daily", nil, nil)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	require.Len(t, histories[0].Quotes, 2)
	assert.Equal(t, float64(104500), histories[0].Quotes[1].Price)
}

func TestHistoricalBackfillsEmptyRange(t *testing.T) {
	st := newMemStore()
	seedCoin(st, 1, "BTC", "Bitcoin", "bitcoin", intPtr(1))
	// Latest quote is fresh, so no refresh happens, but the requested past
	// range has nothing stored
	st.quotes[1] = []schema.Quote{
		{CoinID: 1, Timestamp: testNow.Add(-10 * time.Minute), Price: 104000},
	}

	start := testNow.Add(-10 * 24 * time.Hour)
	end := testNow.Add(-5 * 24 * time.Hour)

	svc, client := newTestResolver(t, st)
	client.EXPECT().
		FetchHistoricalQuotes(gomock.Any(), "BTC", gomock.Any(), gomock.Any(), "daily").
		DoAndReturn(func(_ context.Context, _ string, gotStart, gotEnd *time.Time, _ string) ([]coinmarketcap.HistoricalQuote, error) {
			require.NotNil(t, gotStart)
			require.NotNil(t, gotEnd)
			assert.True(t, gotStart.Equal(start))
			assert.True(t, gotEnd.Equal(end))
			return []coinmarketcap.HistoricalQuote{
				{Timestamp: start.Add(24 * time.Hour), Quote: map[string]coinmarketcap.QuoteDetail{"USD": {Price: 101000}}},
				{Timestamp: start.Add(48 * time.Hour), Quote: map[string]coinmarketcap.QuoteDetail{"USD": {Price: 101500}}},
			}, nil
		})

	histories, err := svc.Historical(context.Background(), []int64{1}, "daily", &start, &end)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	require.Len(t, histories[0].Quotes, 2)
	assert.Equal(t, float64(101000), histories[0].Quotes[0].Price)

	// Backfilled observations keep the provider's timestamps
	assert.True(t, histories[0].Quotes[0].Timestamp.Equal(start.Add(24*time.Hour)))
}

func TestLatestByIDs(t *testing.T) {
	svc, client := newTestResolver(t, newMemStore())

	_, err := svc.LatestByIDs(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	resp := latestQuotesResponse(quoteEntry(1, "BTC", 104500))
	client.EXPECT().FetchLatestQuotes(gomock.Any(), []int64{1}).Return(resp, nil)

	got, err := svc.LatestByIDs(context.Background(), []int64{1})
	require.NoError(t, err)
	assert.Same(t, resp, got)
}

func TestCoinsByRank(t *testing.T) {
	st := newMemStore()
	seedCoin(st, 1, "BTC", "Bitcoin", "bitcoin", intPtr(1))
	seedCoin(st, 1027, "ETH", "Ethereum", "ethereum", intPtr(2))
	seedCoin(st, 52, "XRP", "XRP", "xrp", intPtr(3))
	seedCoin(st, 5994, "SHIB", "Shiba Inu", "shiba-inu", nil)

	svc, _ := newTestResolver(t, st)
	ctx := context.Background()

	_, err := svc.CoinsByRank(ctx, -1, 10)
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	_, err = svc.CoinsByRank(ctx, 0, 0)
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	_, err = svc.CoinsByRank(ctx, 0, resolver.MaxRankLimit+1)
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	// start 0 lists from the top of the ranking
	coins, err := svc.CoinsByRank(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, coins, 2)
	assert.Equal(t, int64(1), coins[0].CoinID)
	assert.Equal(t, int64(1027), coins[1].CoinID)

	// start skips that many coins
	coins, err = svc.CoinsByRank(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.Equal(t, int64(52), coins[0].CoinID)
}

func TestHistoricalLazyLoadFailureDropsUnknownIDs(t *testing.T) {
	st := newMemStore()
	seedCoin(st, 1, "BTC", "Bitcoin", "bitcoin", intPtr(1))
	st.quotes[1] = []schema.Quote{
		{CoinID: 1, Timestamp: testNow.Add(-30 * time.Minute), Price: 104000},
	}

	svc, client := newTestResolver(t, st)
	client.EXPECT().
		FetchMetadata(gomock.Any(), []int64{404}).
		Return(nil, errors.New("info endpoint down"))

	// The known coin still answers; the unresolvable id just vanishes
	histories, err := svc.Historical(context.Background(), []int64{1, 404}, "daily", nil, nil)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	assert.Equal(t, int64(1), histories[0].Coin.CoinID)
}

func TestHistoricalRefreshFailureServesStoredQuotes(t *testing.T) {
	st := newMemStore()
	seedCoin(st, 1, "BTC", "Bitcoin", "bitcoin", intPtr(1))
	st.quotes[1] = []schema.Quote{
		{CoinID: 1, Timestamp: testNow.Add(-2 * time.Hour), Price: 103000},
	}

	svc, client := newTestResolver(t, st)
	client.EXPECT().
		FetchLatestQuotes(gomock.Any(), []int64{1}).
		Return(nil, errors.New("quotes endpoint down"))

	histories, err := svc.Historical(context.Background(), []int64{1}, "daily", nil, nil)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	require.Len(t, histories[0].Quotes, 1)
	assert.Equal(t, float64(103000), histories[0].Quotes[0].Price)
}

func TestHistoricalOmitsCoinsWithEmptyRange(t *testing.T) {
	st := newMemStore()
	seedCoin(st, 1, "BTC", "Bitcoin", "bitcoin", intPtr(1))
	seedCoin(st, 1027, "ETH", "Ethereum", "ethereum", intPtr(2))
	st.quotes[1] = []schema.Quote{
		{CoinID: 1, Timestamp: testNow.Add(-10 * time.Minute), Price: 104000},
	}
	st.quotes[1027] = []schema.Quote{
		{CoinID: 1027, Timestamp: testNow.Add(-10 * time.Minute), Price: 2500},
	}

	start := testNow.Add(-10 * 24 * time.Hour)
	end := testNow.Add(-5 * 24 * time.Hour)

	svc, client := newTestResolver(t, st)
	client.EXPECT().
		FetchHistoricalQuotes(gomock.Any(), "BTC", gomock.Any(), gomock.Any(), "daily").
		Return([]coinmarketcap.HistoricalQuote{
			{Timestamp: start.Add(24 * time.Hour), Quote: map[string]coinmarketcap.QuoteDetail{"USD": {Price: 101000}}},
		}, nil)
	client.EXPECT().
		FetchHistoricalQuotes(gomock.Any(), "ETH", gomock.Any(), gomock.Any(), "daily").
		Return(nil, nil)

	histories, err := svc.Historical(context.Background(), []int64{1, 1027}, "daily", &start, &end)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	assert.Equal(t, int64(1), histories[0].Coin.CoinID)
}

func TestHistoricalBackfillFailureSparesOtherCoins(t *testing.T) {
	st := newMemStore()
	seedCoin(st, 1, "BTC", "Bitcoin", "bitcoin", intPtr(1))
	seedCoin(st, 1027, "ETH", "Ethereum", "ethereum", intPtr(2))
	st.quotes[1] = []schema.Quote{
		{CoinID: 1, Timestamp: testNow.Add(-10 * time.Minute), Price: 104000},
	}
	st.quotes[1027] = []schema.Quote{
		{CoinID: 1027, Timestamp: testNow.Add(-10 * time.Minute), Price: 2500},
	}

	start := testNow.Add(-10 * 24 * time.Hour)
	end := testNow.Add(-5 * 24 * time.Hour)

	svc, client := newTestResolver(t, st)
	client.EXPECT().
		FetchHistoricalQuotes(gomock.Any(), "BTC", gomock.Any(), gomock.Any(), "daily").
		Return(nil, errors.New("historical endpoint down"))
	client.EXPECT().
		FetchHistoricalQuotes(gomock.Any(), "ETH", gomock.Any(), gomock.Any(), "daily").
		Return([]coinmarketcap.HistoricalQuote{
			{Timestamp: start.Add(24 * time.Hour), Quote: map[string]coinmarketcap.QuoteDetail{"USD": {Price: 2400}}},
		}, nil)

	histories, err := svc.Historical(context.Background(), []int64{1, 1027}, "daily", &start, &end)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	assert.Equal(t, int64(1027), histories[0].Coin.CoinID)
}
