package dto

import (
	"time"

	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/resolver"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/store/schema"
)

// Coin is the API representation of a cataloged coin
type Coin struct {
	ID          int64     `json:"id"`
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Rank        *int      `json:"rank"`
	Logo        *string   `json:"logo,omitempty"`
	Description *string   `json:"description,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Category    *string   `json:"category,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Quote is the API representation of one stored price observation
type Quote struct {
	Timestamp             time.Time  `json:"timestamp"`
	Price                 float64    `json:"price"`
	Volume24h             *float64   `json:"volume_24h,omitempty"`
	VolumeChange24h       *float64   `json:"volume_change_24h,omitempty"`
	MarketCap             *float64   `json:"market_cap,omitempty"`
	MarketCapDominance    *float64   `json:"market_cap_dominance,omitempty"`
	FullyDilutedMarketCap *float64   `json:"fully_diluted_market_cap,omitempty"`
	PercentChange1h       *float64   `json:"percent_change_1h,omitempty"`
	PercentChange24h      *float64   `json:"percent_change_24h,omitempty"`
	PercentChange7d       *float64   `json:"percent_change_7d,omitempty"`
	PercentChange30d      *float64   `json:"percent_change_30d,omitempty"`
	LastUpdated           *time.Time `json:"last_updated,omitempty"`
}

// CoinHistory pairs a coin with its quote series
type CoinHistory struct {
	Coin   Coin    `json:"coin"`
	Quotes []Quote `json:"quotes"`
}

// CoinsResponse wraps a coin listing
type CoinsResponse struct {
	Coins []Coin `json:"coins"`
}

// HistoricalResponse wraps a historical lookup
type HistoricalResponse struct {
	Data []CoinHistory `json:"data"`
}

// FromCoin maps a stored coin to its API shape
func FromCoin(coin schema.Coin) Coin {
	return Coin{
		ID:          coin.CoinID,
		Symbol:      coin.Symbol,
		Name:        coin.Name,
		Slug:        coin.Slug,
		Rank:        coin.Rank,
		Logo:        coin.Logo,
		Description: coin.Description,
		Website:     coin.Website,
		Category:    coin.Category,
		UpdatedAt:   coin.UpdatedAt,
	}
}

// FromCoins maps a coin listing
func FromCoins(coins []schema.Coin) []Coin {
	out := make([]Coin, 0, len(coins))
	for _, coin := range coins {
		out = append(out, FromCoin(coin))
	}
	return out
}

// FromQuote maps a stored quote to its API shape
func FromQuote(quote schema.Quote) Quote {
	return Quote{
		Timestamp:             quote.Timestamp,
		Price:                 quote.Price,
		Volume24h:             quote.Volume24h,
		VolumeChange24h:       quote.VolumeChange24h,
		MarketCap:             quote.MarketCap,
		MarketCapDominance:    quote.MarketCapDominance,
		FullyDilutedMarketCap: quote.FullyDilutedMarketCap,
		PercentChange1h:       quote.PercentChange1h,
		PercentChange24h:      quote.PercentChange24h,
		PercentChange7d:       quote.PercentChange7d,
		PercentChange30d:      quote.PercentChange30d,
		LastUpdated:           quote.LastUpdated,
	}
}

// FromHistories maps resolver histories to their API shape
func FromHistories(histories []resolver.CoinHistory) []CoinHistory {
	out := make([]CoinHistory, 0, len(histories))
	for _, h := range histories {
		quotes := make([]Quote, 0, len(h.Quotes))
		for _, q := range h.Quotes {
			quotes = append(quotes, FromQuote(q))
		}
		out = append(out, CoinHistory{
			Coin:   FromCoin(h.Coin),
			Quotes: quotes,
		})
	}
	return out
}
