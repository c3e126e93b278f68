package response_models

type BadgeResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Metric      string `json:"metric"`
	Threshold   int    `json:"threshold"`
	Earned      bool   `json:"earned"`
	EarnedAt    int64  `json:"earned_at,omitempty"`
}

type StatsResponse struct {
	PhrasesViewed    int `json:"phrases_viewed"`
	CountriesVisited int `json:"countries_visited"`
	BookmarksCreated int `json:"bookmarks_created"`
	UpvotesReceived  int `json:"upvotes_received"`
}

type AchievementsResponse struct {
	Stats  StatsResponse   `json:"stats"`
	Badges []BadgeResponse `json:"badges"`
}

type TipResponse struct {
	ID          string `json:"id"`
	CountryName string `json:"country_name"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	Upvotes     int    `json:"upvotes"`
	CreatedAt   int64  `json:"created_at"`
}
