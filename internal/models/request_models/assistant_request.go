package request_models

type ConciergeRequest struct {
	CountryName string `json:"country_name" binding:"required"`
	Message     string `json:"message" binding:"required,min=2,max=2000"`
}

type PlannerRequest struct {
	Prompt string `json:"prompt" binding:"required,min=5,max=2000"`
	Days   int    `json:"days" binding:"omitempty,min=1,max=30"`
}

type TranslateRequest struct {
	Text        string `json:"text" binding:"required,min=1,max=1000"`
	CountryName string `json:"country_name" binding:"required"`
	Tone        string `json:"tone" binding:"omitempty,oneof=formal casual"`
}

type PackingRequest struct {
	Destination  string `json:"destination" binding:"required"`
	DurationDays int    `json:"duration_days" binding:"required,min=1,max=90"`
	Season       string `json:"season" binding:"omitempty,oneof=spring summer autumn winter"`
}
