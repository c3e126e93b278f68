package response_models

type ConciergeResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources,omitempty"`
}

type TranslationResponse struct {
	Translation string `json:"translation"`
	Phonetic    string `json:"phonetic,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type PlannerActivity struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Activity  string `json:"activity"`
	WhatToDo  string `json:"what_to_do"`
}

type PlannerDay struct {
	Day        int               `json:"day"`
	Date       string            `json:"date"`
	Activities []PlannerActivity `json:"activities"`
}

type ItineraryResponse struct {
	Destination  string       `json:"destination"`
	DurationDays int          `json:"duration_days"`
	Days         []PlannerDay `json:"days"`
}

type PackingCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type PackingListResponse struct {
	Destination string            `json:"destination"`
	Categories  []PackingCategory `json:"categories"`
}
