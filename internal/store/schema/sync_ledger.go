package schema

import (
	"time"
)

// SyncLedger records the last successful completion time of each named sync
// source. One row per source, updated in the same transaction as the data it
// describes.
type SyncLedger struct {
	Source    string    `gorm:"column:source;primaryKey;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the SyncLedger model
func (SyncLedger) TableName() string {
	return "sync_ledger"
}
