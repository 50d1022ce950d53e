package repository

import (
	"context"
	"rentalhub-backend/internal/domain"
)

type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*domain.RentalItem, error)
	GetBySlug(ctx context.Context, slug string) (*domain.RentalItem, error)
}

type BookingRepository interface {
	// Create persists one booking and returns the stored record. A write the
	// store rejects for overlapping an existing blocking booking surfaces as
	// domain.ErrDateConflict.
	Create(ctx context.Context, booking *domain.RentalBooking) (*domain.RentalBooking, error)
	// ListBlocking returns confirmed/active bookings of the item whose date
	// range overlaps [startDate, endDate], both ends inclusive.
	ListBlocking(ctx context.Context, itemID, startDate, endDate string) ([]domain.RentalBooking, error)
	ListByCustomer(ctx context.Context, customerID string, status domain.BookingStatus, page, limit int) ([]domain.RentalBooking, int, error)
}

type PricingRuleRepository interface {
	ListActiveByItem(ctx context.Context, itemID string) ([]domain.RentalPricingRule, error)
}
