package db_models

import "github.com/google/uuid"

// PulseTip is a community-submitted cultural tip.
type PulseTip struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	CountryName string    `gorm:"index"`
	Category    string
	Content     string `gorm:"type:text"`
	Upvotes     int    `gorm:"default:0"`
}

type PulseUpvote struct {
	BaseModel
	TipID     uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_tip_account"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_tip_account"`
}

// PulseReport persists a moderation report so someone can actually act on
// it. Reports never delete content by themselves.
type PulseReport struct {
	BaseModel
	TipID     uuid.UUID `gorm:"type:uuid;index"`
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Reason    string
}
