package response_models

type CountrySummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ISO2      string `json:"iso2"`
	FlagEmoji string `json:"flag_emoji"`
	Language  string `json:"language"`
	Currency  string `json:"currency"`
	Free      bool   `json:"free"`
}

type CountryDetail struct {
	CountrySummary

	GreetingFormal string `json:"greeting_formal"`
	GreetingCasual string `json:"greeting_casual"`
	ThankYou       string `json:"thank_you"`
	Please         string `json:"please"`

	CulturalDos          []string `json:"cultural_dos"`
	CulturalDonts        []string `json:"cultural_donts"`
	DiningEtiquette      []string `json:"dining_etiquette"`
	BusinessEtiquette    []string `json:"business_etiquette"`
	DatingEtiquette      []string `json:"dating_etiquette"`
	TippingEtiquette     []string `json:"tipping_etiquette"`
	GesturesBodyLanguage []string `json:"gestures_body_language"`
	CulturalHighlights   []string `json:"cultural_highlights"`
	TaxiEtiquette        []string `json:"taxi_etiquette"`
	DressCode            []string `json:"dress_code"`
	GiftGiving           []string `json:"gift_giving"`
	LocalSurvivalTips    []string `json:"local_survival_tips"`

	Phrases []PhraseResponse `json:"phrases"`
}
