package rest

import (
	"context"
	"errors"
	"fmt"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/repository"
	"rentalhub-backend/internal/store"
)

type bookingRepository struct {
	client *store.Client
}

func NewBookingRepository(client *store.Client) repository.BookingRepository {
	return &bookingRepository{client: client}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.RentalBooking) (*domain.RentalBooking, error) {
	created := &domain.RentalBooking{}
	if err := r.client.Insert(ctx, bookingsResource, booking, created); err != nil {
		var se *store.Error
		if errors.As(err, &se) && se.Conflict() {
			// The store's no-overlap exclusion constraint rejected the write:
			// a concurrent request won the race after our conflict pre-check.
			return nil, fmt.Errorf("%w: rejected by store constraint", domain.ErrDateConflict)
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}
	return created, nil
}

func (r *bookingRepository) ListBlocking(ctx context.Context, itemID, startDate, endDate string) ([]domain.RentalBooking, error) {
	// Closed-interval overlap: existing.start <= requested.end AND
	// existing.end >= requested.start.
	q := store.NewQuery().
		Eq("rental_item_id", itemID).
		In("status", string(domain.BookingStatusConfirmed), string(domain.BookingStatusActive)).
		Lte("start_date", endDate).
		Gte("end_date", startDate)

	var bookings []domain.RentalBooking
	if err := r.client.List(ctx, bookingsResource, q, &bookings); err != nil {
		return nil, fmt.Errorf("failed to load blocking bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID string, status domain.BookingStatus, page, limit int) ([]domain.RentalBooking, int, error) {
	filters := func() *store.Query {
		q := store.NewQuery().Eq("customer_id", customerID)
		if status != "" {
			q.Eq("status", string(status))
		}
		return q
	}

	// The count query repeats the filters without the range.
	total, err := r.client.Count(ctx, bookingsResource, filters())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	q := filters().
		OrderBy("created_at", true).
		Range((page-1)*limit, limit)

	var bookings []domain.RentalBooking
	if err := r.client.List(ctx, bookingsResource, q, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to load bookings: %w", err)
	}
	return bookings, total, nil
}
