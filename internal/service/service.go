package service

import (
	"context"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/utils"
)

// CreateBookingRequest is the input of the booking-creation flow.
type CreateBookingRequest struct {
	RentalItemID    string  `json:"rental_item_id"`
	StartDate       string  `json:"start_date"` // yyyy-mm-dd
	EndDate         string  `json:"end_date"`   // yyyy-mm-dd
	CustomerID      *string `json:"customer_id,omitempty"`
	PickupLocation  string  `json:"pickup_location,omitempty"`
	ReturnLocation  string  `json:"return_location,omitempty"`
	SpecialRequests string  `json:"special_requests,omitempty"`
}

// ListBookingsQuery filters and pages a customer's bookings.
type ListBookingsQuery struct {
	CustomerID string
	Status     domain.BookingStatus
	Page       int
	Limit      int
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type BookingPage struct {
	Data       []domain.RentalBooking `json:"data"`
	Pagination Pagination             `json:"pagination"`
}

type BookingService interface {
	CreateBooking(ctx context.Context, req *CreateBookingRequest) (*domain.RentalBooking, error)
	ListBookings(ctx context.Context, query *ListBookingsQuery) (*BookingPage, error)
	CheckAvailability(ctx context.Context, slug, startDate, endDate string) (*utils.AvailabilityResult, error)
	QuotePrice(ctx context.Context, slug, startDate, endDate string) (*utils.Breakdown, error)
}
