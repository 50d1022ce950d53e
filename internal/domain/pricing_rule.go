package domain

import "github.com/shopspring/decimal"

type PricingType string

const (
	PricingTypeDaily    PricingType = "daily"
	PricingTypeWeekly   PricingType = "weekly"
	PricingTypeMonthly  PricingType = "monthly"
	PricingTypeSeasonal PricingType = "seasonal"
)

// RentalPricingRule overrides an item's daily rate when its conditions hold.
// Rules are evaluated in the order the store returns them; the first match wins.
type RentalPricingRule struct {
	ID           string          `json:"id"`
	RentalItemID string          `json:"rental_item_id"`
	PricingType  PricingType     `json:"pricing_type"`
	StartDate    *string         `json:"start_date,omitempty"` // seasonal window, yyyy-mm-dd
	EndDate      *string         `json:"end_date,omitempty"`
	Rate         decimal.Decimal `json:"rate"`
	MinDuration  int             `json:"min_duration"`
	MaxDuration  *int            `json:"max_duration,omitempty"`
	IsActive     bool            `json:"is_active"`
}
