package response_models

type AccountLoginResponse struct {
	Token      string `json:"token"`
	HasPremium bool   `json:"has_premium"`
}

type AccountResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	ProMember       bool   `json:"pro_member"`
	HasPremium      bool   `json:"has_premium"`
	TrialStartedAt  string `json:"trial_started_at,omitempty"`
	TrialEndsAt     string `json:"trial_ends_at,omitempty"`
	TrialUsed       bool   `json:"trial_used"`
	ReferralCode    string `json:"referral_code"`
	SharesCompleted int    `json:"shares_completed"`
}
