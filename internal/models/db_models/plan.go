package db_models

import (
	"gorm.io/datatypes"
)

type BillingPeriod string

const (
	PeriodMonth BillingPeriod = "month"
	PeriodYear  BillingPeriod = "year"
)

type Plan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g. "pro_monthly", "pro_yearly"
	Name        string
	Description *string
	Period      BillingPeriod `gorm:"type:billing_period"`
	PriceMinor  int64         // 499 = $4.99
	Currency    string        `gorm:"size:3"`
	TrialDays   int32         `gorm:"default:0"`
	IsActive    bool          `gorm:"default:true"`

	// Stripe price id backing this plan's checkout line item.
	StripePriceID string

	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
