package request_models

type CreateTipRequest struct {
	CountryName string `json:"country_name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Content     string `json:"content" binding:"required,min=10,max=1000"`
}

type ReportTipRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=500"`
}
