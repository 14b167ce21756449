package schema

import (
	"time"
)

// Quote is a single append-only price observation for a coin. The unique
// (coin_id, timestamp) pair makes re-ingesting an overlapping historical range
// converge instead of duplicating rows.
type Quote struct {
	ID     int64 `gorm:"column:id;primaryKey;autoIncrement"`
	CoinID int64 `gorm:"column:coin_id;not null;uniqueIndex:idx_coin_quotes_coin_ts,priority:1;index:idx_coin_quotes_coin_id"`
	// Timestamp is the observation time reported by the provider, or the
	// ingestion time for freshness-refresh appends
	Timestamp time.Time `gorm:"column:timestamp;not null;uniqueIndex:idx_coin_quotes_coin_ts,priority:2"`

	Price                 float64  `gorm:"column:price;not null"`
	Volume24h             *float64 `gorm:"column:volume_24h"`
	VolumeChange24h       *float64 `gorm:"column:volume_change_24h"`
	MarketCap             *float64 `gorm:"column:market_cap"`
	MarketCapDominance    *float64 `gorm:"column:market_cap_dominance"`
	FullyDilutedMarketCap *float64 `gorm:"column:fully_diluted_market_cap"`
	PercentChange1h       *float64 `gorm:"column:percent_change_1h"`
	PercentChange24h      *float64 `gorm:"column:percent_change_24h"`
	PercentChange7d       *float64 `gorm:"column:percent_change_7d"`
	PercentChange30d      *float64 `gorm:"column:percent_change_30d"`
	// LastUpdated is the provider's own update time for the observation
	LastUpdated *time.Time `gorm:"column:last_updated"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the Quote model
func (Quote) TableName() string {
	return "coin_quotes"
}
