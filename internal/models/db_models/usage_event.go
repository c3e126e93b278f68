package db_models

import "time"

// UsageEvent is a write-only analytics record. Writes are best-effort and
// never fail the request that produced them.
type UsageEvent struct {
	ID          uint   `gorm:"primaryKey"`
	AccountID   string `gorm:"index;size:64"`
	EventType   string `gorm:"size:32;index"` // e.g. "assistant_call", "offline_download"
	Feature     string `gorm:"size:32;index"` // e.g. "concierge", "planner"
	CountryName string `gorm:"size:64;index"`
	Platform    string `gorm:"size:32"`
	EventTime   time.Time `gorm:"index"`
	CreatedAt   time.Time
}
