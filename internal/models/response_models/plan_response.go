package response_models

import "github.com/google/uuid"

type SubscriptionPlan struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       int64     `json:"price_minor"`
	Currency    string    `json:"currency"`
	Period      string    `json:"period"`
	TrialDays   int32     `json:"trial_days"`
	IsActive    bool      `json:"is_active"`
}

type CreateCheckoutResponse struct {
	CheckoutURL  string `json:"checkout_url"`
	ProviderName string `json:"provider_name"`
	PlanCode     string `json:"plan_code"`
}
