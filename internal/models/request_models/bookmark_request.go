package request_models

type CreateBookmarkRequest struct {
	PhraseID string `json:"phrase_id" binding:"required,uuid"`
	Notes    string `json:"notes" binding:"max=500"`
}

type CreateFavoriteRequest struct {
	CountryName string `json:"country_name" binding:"required"`
}
