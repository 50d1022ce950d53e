package utils

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"rentalhub-backend/internal/domain"
)

// DateLayout is the wire format for calendar dates. No time-of-day or
// timezone component is carried through pricing or availability.
const DateLayout = "2006-01-02"

// taxRate is the fixed 8% consumption tax applied to every booking subtotal.
var taxRate = decimal.RequireFromString("0.08")

// Breakdown is the cost breakdown of one booking: subtotal from the effective
// daily rate, tax on the subtotal, and the item's deposit on top.
type Breakdown struct {
	DailyRate     decimal.Decimal `json:"daily_rate"`
	TotalDays     int             `json:"total_days"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// ParseDate converts a yyyy-mm-dd formatted string into a calendar date
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}

// TotalDays returns the span between two calendar dates in days, rounded up.
// A 1.5-day span counts as 2 days; 2024-06-01 to 2024-06-03 is 2 days.
func TotalDays(start, end time.Time) int {
	span := end.Sub(start)
	days := int(span / (24 * time.Hour))
	if span%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// CalculatePrice produces the cost breakdown for renting item over
// [start, end]. When rules are supplied the first applicable one (in supplied
// order) overrides the item's daily rate; it never blends with it. Pure: no
// error paths, no side effects.
func CalculatePrice(item *domain.RentalItem, start, end time.Time, rules []domain.RentalPricingRule) Breakdown {
	days := TotalDays(start, end)

	rate := item.DailyRate
	if rule := selectRule(rules, start, end, days); rule != nil {
		rate = rule.Rate
	}

	subtotal := rate.Mul(decimal.NewFromInt(int64(days)))
	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(tax).Add(item.DepositAmount)

	return Breakdown{
		DailyRate:     rate,
		TotalDays:     days,
		Subtotal:      subtotal,
		DepositAmount: item.DepositAmount,
		TaxAmount:     tax,
		TotalAmount:   total,
	}
}

// selectRule returns the first rule applicable to the request, or nil.
func selectRule(rules []domain.RentalPricingRule, start, end time.Time, days int) *domain.RentalPricingRule {
	for i := range rules {
		rule := &rules[i]
		switch rule.PricingType {
		case domain.PricingTypeSeasonal:
			if rule.StartDate == nil || rule.EndDate == nil {
				continue
			}
			ruleStart, err := ParseDate(*rule.StartDate)
			if err != nil {
				continue
			}
			ruleEnd, err := ParseDate(*rule.EndDate)
			if err != nil {
				continue
			}
			// Partial overlap with the season is enough.
			if Overlaps(start, end, ruleStart, ruleEnd) {
				return rule
			}
		case domain.PricingTypeWeekly:
			min := rule.MinDuration
			if min <= 0 {
				min = 7
			}
			if days >= 7 && days >= min {
				return rule
			}
		case domain.PricingTypeMonthly:
			min := rule.MinDuration
			if min <= 0 {
				min = 30
			}
			if days >= 30 && days >= min {
				return rule
			}
		}
		// Any other pricing type never matches; the base daily rate stands.
	}
	return nil
}
