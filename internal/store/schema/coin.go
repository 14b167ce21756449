package schema

import (
	"time"
)

// Coin represents the coins table - one row per coin known to the market-data
// provider. Rows are created by the catalog sync job or by lazy-load on first
// reference and enriched in place; they are never deleted.
type Coin struct {
	// CoinID is the provider-assigned identifier. It is immutable and used as
	// the primary key directly, without a surrogate id.
	CoinID int64 `gorm:"column:coin_id;primaryKey"`
	// Symbol is the ticker symbol (e.g. "BTC")
	Symbol string `gorm:"column:symbol;not null;type:text;index:idx_coins_symbol"`
	// Name is the display name (e.g. "Bitcoin")
	Name string `gorm:"column:name;not null;type:text"`
	// Slug is the provider's URL slug (e.g. "bitcoin")
	Slug string `gorm:"column:slug;not null;type:text"`
	// Rank is the provider market-cap rank; nil until the provider assigns one
	Rank *int `gorm:"column:rank;index:idx_coins_rank"`

	// Fields below stay nil until metadata enrichment runs for this coin
	Logo        *string `gorm:"column:logo;type:text"`
	Description *string `gorm:"column:description;type:text"`
	Website     *string `gorm:"column:website;type:text"`
	Category    *string `gorm:"column:category;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Associations
	Quotes []Quote `gorm:"foreignKey:CoinID;references:CoinID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Coin model
func (Coin) TableName() string {
	return "coins"
}
