package response_models

type PhraseResponse struct {
	ID                    string `json:"id"`
	EnglishPhrase         string `json:"english_phrase"`
	LocalPhrase           string `json:"local_phrase"`
	PhoneticPronunciation string `json:"phonetic_pronunciation"`
	Category              string `json:"category"`
	FormalityLevel        string `json:"formality_level"`
	CountryName           string `json:"country_name"`
}

type BookmarkResponse struct {
	ID          string         `json:"id"`
	CountryName string         `json:"country_name"`
	Notes       string         `json:"notes"`
	CreatedAt   int64          `json:"created_at"`
	Phrase      PhraseResponse `json:"phrase"`
}

type FavoriteResponse struct {
	ID        string         `json:"id"`
	CreatedAt int64          `json:"created_at"`
	Country   CountrySummary `json:"country"`
}
