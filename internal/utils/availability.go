package utils

import (
	"time"

	"rentalhub-backend/internal/domain"
)

// Conflict identifies one existing booking that blocks a requested range.
type Conflict struct {
	BookingID     string `json:"booking_id,omitempty"`
	BookingNumber string `json:"booking_number,omitempty"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
}

type AvailabilityResult struct {
	IsAvailable bool       `json:"is_available"`
	Conflicts   []Conflict `json:"conflicting_bookings"`
}

// Overlaps reports whether the closed intervals [aStart, aEnd] and
// [bStart, bEnd] share at least one calendar day. A booking ending the day
// another starts is an overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// CheckAvailability decides whether an item can be booked over [start, end].
// A non-available item status blocks immediately with no conflicts reported;
// otherwise every confirmed or active booking overlapping the range is
// collected. Pure: no side effects.
func CheckAvailability(status domain.AvailabilityStatus, start, end time.Time, existing []domain.RentalBooking) AvailabilityResult {
	if status != domain.AvailabilityStatusAvailable {
		// Status block is reported separately from date conflicts.
		return AvailabilityResult{IsAvailable: false}
	}

	var conflicts []Conflict
	for i := range existing {
		booking := &existing[i]
		if !booking.Status.Blocks() {
			continue
		}
		bookingStart, err := ParseDate(booking.StartDate)
		if err != nil {
			continue
		}
		bookingEnd, err := ParseDate(booking.EndDate)
		if err != nil {
			continue
		}
		if Overlaps(start, end, bookingStart, bookingEnd) {
			conflicts = append(conflicts, Conflict{
				BookingID:     booking.ID,
				BookingNumber: booking.BookingNumber,
				StartDate:     booking.StartDate,
				EndDate:       booking.EndDate,
			})
		}
	}

	return AvailabilityResult{
		IsAvailable: len(conflicts) == 0,
		Conflicts:   conflicts,
	}
}
