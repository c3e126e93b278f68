package db_models

import "github.com/google/uuid"

// Badge metrics name the UserStats counter a badge watches.
const (
	MetricPhrasesViewed    = "phrases_viewed"
	MetricCountriesVisited = "countries_visited"
	MetricBookmarksCreated = "bookmarks_created"
	MetricSharesCompleted  = "shares_completed"
)

type Badge struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"`
	Name        string
	Description string
	Icon        string
	Metric      string `gorm:"index"`
	Threshold   int
}

type UserBadge struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_account_badge"`
	BadgeID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_account_badge"`
	EarnedAt  int64

	Badge Badge `gorm:"foreignKey:BadgeID"`
}

// UserStats is lazily created the first time an account loads the
// achievements screen.
type UserStats struct {
	BaseModel
	AccountID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	PhrasesViewed    int       `gorm:"default:0"`
	CountriesVisited int       `gorm:"default:0"`
	BookmarksCreated int       `gorm:"default:0"`
	UpvotesReceived  int       `gorm:"default:0"`
}
