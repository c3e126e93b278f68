package db_models

import "github.com/google/uuid"

// PhraseBookmark saves one phrase for one account. One bookmark per
// (account, phrase) pair.
type PhraseBookmark struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_account_phrase"`
	PhraseID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_account_phrase"`
	CountryName string    `gorm:"index"`
	Notes       string

	Phrase Phrase `gorm:"foreignKey:PhraseID"`
}

// CountryFavorite saves a whole country. Same owner convention as
// PhraseBookmark; the two concepts stay separate tables but share one
// schema style.
type CountryFavorite struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_account_country"`
	CountryID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_account_country"`

	Country Country `gorm:"foreignKey:CountryID"`
}
