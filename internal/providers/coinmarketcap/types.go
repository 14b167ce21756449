package coinmarketcap

import (
	"time"
)

// Status is the envelope status object every CoinMarketCap response carries
type Status struct {
	Timestamp    time.Time `json:"timestamp"`
	ErrorCode    int       `json:"error_code"`
	ErrorMessage *string   `json:"error_message"`
	Elapsed      int       `json:"elapsed"`
	CreditCount  int       `json:"credit_count"`
}

// CatalogEntry is one row of the /v1/cryptocurrency/map listing
type CatalogEntry struct {
	ID     int64  `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Rank   *int   `json:"rank"`
}

type catalogResponse struct {
	Status Status         `json:"status"`
	Data   []CatalogEntry `json:"data"`
}

// MetadataEntry is one coin's descriptive metadata from /v2/cryptocurrency/info
type MetadataEntry struct {
	ID          int64   `json:"id"`
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Logo        *string `json:"logo"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	URLs        struct {
		Website []string `json:"website"`
	} `json:"urls"`
}

// Website returns the coin's primary website URL, or nil when the provider
// lists none
func (m *MetadataEntry) Website() *string {
	if len(m.URLs.Website) == 0 {
		return nil
	}
	return &m.URLs.Website[0]
}

type metadataResponse struct {
	Status Status                   `json:"status"`
	Data   map[string]MetadataEntry `json:"data"`
}

// QuoteDetail is the per-currency price block inside a quote entry
type QuoteDetail struct {
	Price                 float64   `json:"price"`
	Volume24h             *float64  `json:"volume_24h"`
	VolumeChange24h       *float64  `json:"volume_change_24h"`
	MarketCap             *float64  `json:"market_cap"`
	MarketCapDominance    *float64  `json:"market_cap_dominance"`
	FullyDilutedMarketCap *float64  `json:"fully_diluted_market_cap"`
	PercentChange1h       *float64  `json:"percent_change_1h"`
	PercentChange24h      *float64  `json:"percent_change_24h"`
	PercentChange7d       *float64  `json:"percent_change_7d"`
	PercentChange30d      *float64  `json:"percent_change_30d"`
	LastUpdated           time.Time `json:"last_updated"`
}

// QuoteEntry is one coin's latest-quote payload from
// /v2/cryptocurrency/quotes/latest
type QuoteEntry struct {
	ID          int64                  `json:"id"`
	Symbol      string                 `json:"symbol"`
	Name        string                 `json:"name"`
	Slug        string                 `json:"slug"`
	LastUpdated time.Time              `json:"last_updated"`
	Quote       map[string]QuoteDetail `json:"quote"`
}

// QuotesLatestResponse is the full latest-quotes envelope. It is returned
// whole so callers can pass the provider payload through unmodified.
type QuotesLatestResponse struct {
	Status Status                `json:"status"`
	Data   map[string]QuoteEntry `json:"data"`
}

// HistoricalQuote is one observation in a historical quote series
type HistoricalQuote struct {
	Timestamp time.Time              `json:"timestamp"`
	Quote     map[string]QuoteDetail `json:"quote"`
}

// HistoricalSeries is one coin's series from /v2/cryptocurrency/quotes/historical
type HistoricalSeries struct {
	ID     int64             `json:"id"`
	Symbol string            `json:"symbol"`
	Name   string            `json:"name"`
	Quotes []HistoricalQuote `json:"quotes"`
}

type historicalResponse struct {
	Status Status                      `json:"status"`
	Data   map[string]HistoricalSeries `json:"data"`
}
