package domain

import "github.com/shopspring/decimal"

func init() {
	// The record store's numeric columns take bare JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Blocks reports whether a booking in this status occupies its date range.
// Pending requests, finished rentals and cancellations never block new dates.
func (s BookingStatus) Blocks() bool {
	return s == BookingStatusConfirmed || s == BookingStatusActive
}

type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "pending"
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusRefunded      PaymentStatus = "refunded"
)

type RentalBooking struct {
	ID            string  `json:"id,omitempty"`
	BookingNumber string  `json:"booking_number"`
	CustomerID    *string `json:"customer_id,omitempty"`
	RentalItemID  string  `json:"rental_item_id"`
	StartDate     string  `json:"start_date"` // yyyy-mm-dd
	EndDate       string  `json:"end_date"`   // yyyy-mm-dd
	TotalDays     int     `json:"total_days"`
	// Price snapshot fields — captured from the item at booking time.
	// Later item price edits never alter an existing booking.
	DailyRate       decimal.Decimal `json:"daily_rate"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DepositAmount   decimal.Decimal `json:"deposit_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          BookingStatus   `json:"status"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	PickupLocation  string          `json:"pickup_location,omitempty"`
	ReturnLocation  string          `json:"return_location,omitempty"`
	SpecialRequests string          `json:"special_requests,omitempty"`
	CreatedAt       string          `json:"created_at,omitempty"`
}
