package domain

import "github.com/shopspring/decimal"

type AvailabilityStatus string

const (
	AvailabilityStatusAvailable   AvailabilityStatus = "available"
	AvailabilityStatusRented      AvailabilityStatus = "rented"
	AvailabilityStatusMaintenance AvailabilityStatus = "maintenance"
	AvailabilityStatusUnavailable AvailabilityStatus = "unavailable"
)

type RentalItem struct {
	ID                 string             `json:"id"`
	Slug               string             `json:"slug"`
	Name               string             `json:"name"`
	CategoryID         *string            `json:"category_id,omitempty"`
	DailyRate          decimal.Decimal    `json:"daily_rate"`
	WeeklyRate         *decimal.Decimal   `json:"weekly_rate,omitempty"`
	MonthlyRate        *decimal.Decimal   `json:"monthly_rate,omitempty"`
	DepositAmount      decimal.Decimal    `json:"deposit_amount"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
	ConditionNotes     string             `json:"condition_notes,omitempty"`
	Specs              map[string]string  `json:"specs,omitempty"`
	CreatedAt          string             `json:"created_at,omitempty"`
}
