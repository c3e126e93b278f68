package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"default:user"`

	// Entitlement state. ProMember is only ever flipped by the verified
	// payment webhook; the trial fields drive the 7-day window.
	ProMember      bool `gorm:"default:false"`
	TrialStartedAt *int64
	TrialUsed      bool `gorm:"default:false"`

	ReferralCode    string `gorm:"uniqueIndex"`
	ReferredBy      string `gorm:"index"` // referral code of the inviter, if any
	SharesCompleted int    `gorm:"default:0"`

	StripeCustomerID    string `gorm:"index"`
	DeletionRequestedAt *int64

	Bookmarks []PhraseBookmark `gorm:"foreignKey:AccountID"`
	Favorites []CountryFavorite `gorm:"foreignKey:AccountID"`
}
