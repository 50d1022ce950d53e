package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rentalhub-backend/internal/domain"
)

func booking(number, start, end string, status domain.BookingStatus) domain.RentalBooking {
	return domain.RentalBooking{
		ID:            "id-" + number,
		BookingNumber: number,
		StartDate:     start,
		EndDate:       end,
		Status:        status,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   string
		aEnd     string
		bStart   string
		bEnd     string
		expected bool
	}{
		{"Disjoint before", "2024-07-01", "2024-07-05", "2024-07-10", "2024-07-15", false},
		{"Disjoint after", "2024-07-20", "2024-07-25", "2024-07-10", "2024-07-15", false},
		{"Shared boundary day", "2024-07-10", "2024-07-15", "2024-07-15", "2024-07-20", true},
		{"Contained", "2024-07-11", "2024-07-13", "2024-07-10", "2024-07-15", true},
		{"Containing", "2024-07-01", "2024-07-31", "2024-07-10", "2024-07-15", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(date(t, tt.aStart), date(t, tt.aEnd), date(t, tt.bStart), date(t, tt.bEnd))
			assert.Equal(t, tt.expected, got)

			// Overlap is symmetric
			swapped := Overlaps(date(t, tt.bStart), date(t, tt.bEnd), date(t, tt.aStart), date(t, tt.aEnd))
			assert.Equal(t, got, swapped)
		})
	}
}

func TestCheckAvailability(t *testing.T) {
	t.Run("Maintenance item never available", func(t *testing.T) {
		existing := []domain.RentalBooking{} // no bookings at all
		result := CheckAvailability(domain.AvailabilityStatusMaintenance, date(t, "2024-07-10"), date(t, "2024-07-15"), existing)
		assert.False(t, result.IsAvailable)
		assert.Empty(t, result.Conflicts, "status block is reported without date conflicts")
	})

	t.Run("Rented and unavailable statuses block", func(t *testing.T) {
		for _, status := range []domain.AvailabilityStatus{domain.AvailabilityStatusRented, domain.AvailabilityStatusUnavailable} {
			result := CheckAvailability(status, date(t, "2024-07-10"), date(t, "2024-07-15"), nil)
			assert.False(t, result.IsAvailable, "status %s must block", status)
		}
	})

	t.Run("No bookings means available", func(t *testing.T) {
		result := CheckAvailability(domain.AvailabilityStatusAvailable, date(t, "2024-07-10"), date(t, "2024-07-15"), nil)
		assert.True(t, result.IsAvailable)
	})

	t.Run("Shared boundary day is a conflict", func(t *testing.T) {
		existing := []domain.RentalBooking{
			booking("RENTAL-A", "2024-07-15", "2024-07-20", domain.BookingStatusConfirmed),
		}
		result := CheckAvailability(domain.AvailabilityStatusAvailable, date(t, "2024-07-10"), date(t, "2024-07-15"), existing)
		assert.False(t, result.IsAvailable)
		assert.Len(t, result.Conflicts, 1)
		assert.Equal(t, "RENTAL-A", result.Conflicts[0].BookingNumber)
	})

	t.Run("Cancelled and completed bookings never block", func(t *testing.T) {
		existing := []domain.RentalBooking{
			booking("RENTAL-B", "2024-07-10", "2024-07-15", domain.BookingStatusCancelled),
			booking("RENTAL-C", "2024-07-10", "2024-07-15", domain.BookingStatusCompleted),
			booking("RENTAL-D", "2024-07-10", "2024-07-15", domain.BookingStatusPending),
		}
		result := CheckAvailability(domain.AvailabilityStatusAvailable, date(t, "2024-07-10"), date(t, "2024-07-15"), existing)
		assert.True(t, result.IsAvailable)
		assert.Empty(t, result.Conflicts)
	})

	t.Run("All overlapping bookings are collected", func(t *testing.T) {
		existing := []domain.RentalBooking{
			booking("RENTAL-E", "2024-07-08", "2024-07-11", domain.BookingStatusConfirmed),
			booking("RENTAL-F", "2024-07-14", "2024-07-18", domain.BookingStatusActive),
			booking("RENTAL-G", "2024-07-20", "2024-07-25", domain.BookingStatusConfirmed),
		}
		result := CheckAvailability(domain.AvailabilityStatusAvailable, date(t, "2024-07-10"), date(t, "2024-07-15"), existing)
		assert.False(t, result.IsAvailable)
		assert.Len(t, result.Conflicts, 2)
	})
}
