package db_models

import "github.com/lib/pq"

// Country is the full etiquette guide for one destination. Admin-seeded;
// the API never writes these.
type Country struct {
	BaseModel
	Name      string `gorm:"uniqueIndex"`
	ISO2      string `gorm:"column:iso2;size:2;index"`
	FlagEmoji string
	Language  string
	Currency  string

	GreetingFormal string
	GreetingCasual string
	ThankYou       string
	Please         string

	CulturalDos          pq.StringArray `gorm:"type:text[]"`
	CulturalDonts        pq.StringArray `gorm:"type:text[]"`
	DiningEtiquette      pq.StringArray `gorm:"type:text[]"`
	BusinessEtiquette    pq.StringArray `gorm:"type:text[]"`
	DatingEtiquette      pq.StringArray `gorm:"type:text[]"`
	TippingEtiquette     pq.StringArray `gorm:"type:text[]"`
	GesturesBodyLanguage pq.StringArray `gorm:"type:text[]"`
	CulturalHighlights   pq.StringArray `gorm:"type:text[]"`
	TaxiEtiquette        pq.StringArray `gorm:"type:text[]"`
	DressCode            pq.StringArray `gorm:"type:text[]"`
	GiftGiving           pq.StringArray `gorm:"type:text[]"`
	LocalSurvivalTips    pq.StringArray `gorm:"type:text[]"`

	Phrases []Phrase `gorm:"foreignKey:CountryID"`
}
