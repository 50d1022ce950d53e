package service

import (
	"context"
	"fmt"
	"time"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/logger"
	"rentalhub-backend/internal/repository"
	"rentalhub-backend/internal/utils"
)

const (
	defaultPageLimit = 20
)

type bookingService struct {
	itemRepo    repository.ItemRepository
	bookingRepo repository.BookingRepository
	ruleRepo    repository.PricingRuleRepository
	now         func() time.Time
}

func NewBookingService(
	itemRepo repository.ItemRepository,
	bookingRepo repository.BookingRepository,
	ruleRepo repository.PricingRuleRepository,
) BookingService {
	return &bookingService{
		itemRepo:    itemRepo,
		bookingRepo: bookingRepo,
		ruleRepo:    ruleRepo,
		now:         time.Now,
	}
}

// CreateBooking validates the request, prices the stay at the item's flat
// daily rate and persists one pending booking. Validation fails fast: the
// first failing check decides the error, and nothing is written to the store
// until every check has passed.
func (s *bookingService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*domain.RentalBooking, error) {
	if req.RentalItemID == "" {
		return nil, fmt.Errorf("%w: rental_item_id", domain.ErrMissingField)
	}
	if req.StartDate == "" {
		return nil, fmt.Errorf("%w: start_date", domain.ErrMissingField)
	}
	if req.EndDate == "" {
		return nil, fmt.Errorf("%w: end_date", domain.ErrMissingField)
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidStartDate, err)
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDateRange, err)
	}

	today, _ := utils.ParseDate(s.now().Format(utils.DateLayout))
	if start.Before(today) {
		return nil, domain.ErrInvalidStartDate
	}
	if !end.After(start) {
		return nil, domain.ErrInvalidDateRange
	}

	item, err := s.itemRepo.GetByID(ctx, req.RentalItemID)
	if err != nil {
		return nil, err
	}
	if item.AvailabilityStatus != domain.AvailabilityStatusAvailable {
		return nil, fmt.Errorf("%w: status is %s", domain.ErrItemUnavailable, item.AvailabilityStatus)
	}

	blocking, err := s.bookingRepo.ListBlocking(ctx, item.ID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if len(blocking) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrDateConflict, blocking[0].BookingNumber)
	}

	// The booking path prices at the flat daily rate; pricing rules are only
	// applied on the quote read path.
	breakdown := utils.CalculatePrice(item, start, end, nil)

	booking := &domain.RentalBooking{
		BookingNumber:   utils.GenerateBookingNumber(),
		CustomerID:      req.CustomerID,
		RentalItemID:    item.ID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TotalDays:       breakdown.TotalDays,
		DailyRate:       breakdown.DailyRate,
		Subtotal:        breakdown.Subtotal,
		DepositAmount:   breakdown.DepositAmount,
		TaxAmount:       breakdown.TaxAmount,
		TotalAmount:     breakdown.TotalAmount,
		Status:          domain.BookingStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		PickupLocation:  req.PickupLocation,
		ReturnLocation:  req.ReturnLocation,
		SpecialRequests: req.SpecialRequests,
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Booking created",
		"booking_number", created.BookingNumber,
		"rental_item_id", created.RentalItemID,
		"start_date", created.StartDate,
		"end_date", created.EndDate,
		"total_amount", created.TotalAmount)

	return created, nil
}

// ListBookings returns one page of a customer's bookings, newest first, with
// the total count taken from a separate filtered count query.
func (s *bookingService) ListBookings(ctx context.Context, query *ListBookingsQuery) (*BookingPage, error) {
	if query.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer_id", domain.ErrMissingField)
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}

	bookings, total, err := s.bookingRepo.ListByCustomer(ctx, query.CustomerID, query.Status, page, limit)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []domain.RentalBooking{}
	}

	return &BookingPage{
		Data: bookings,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}

// CheckAvailability reports whether the item can be booked over the range,
// along with any conflicting confirmed/active bookings.
func (s *bookingService) CheckAvailability(ctx context.Context, slug, startDate, endDate string) (*utils.AvailabilityResult, error) {
	item, start, end, err := s.loadItemAndRange(ctx, slug, startDate, endDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.bookingRepo.ListBlocking(ctx, item.ID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	result := utils.CheckAvailability(item.AvailabilityStatus, start, end, existing)
	return &result, nil
}

// QuotePrice prices the range against the item's active pricing rules. Unlike
// the booking path this applies seasonal and duration rules; it never writes.
func (s *bookingService) QuotePrice(ctx context.Context, slug, startDate, endDate string) (*utils.Breakdown, error) {
	item, start, end, err := s.loadItemAndRange(ctx, slug, startDate, endDate)
	if err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.ListActiveByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	breakdown := utils.CalculatePrice(item, start, end, rules)
	return &breakdown, nil
}

func (s *bookingService) loadItemAndRange(ctx context.Context, slug, startDate, endDate string) (*domain.RentalItem, time.Time, time.Time, error) {
	if startDate == "" {
		return nil, time.Time{}, time.Time{}, fmt.Errorf("%w: start_date", domain.ErrMissingField)
	}
	if endDate == "" {
		return nil, time.Time{}, time.Time{}, fmt.Errorf("%w: end_date", domain.ErrMissingField)
	}
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, time.Time{}, time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidStartDate, err)
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, time.Time{}, time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidDateRange, err)
	}
	if !end.After(start) {
		return nil, time.Time{}, time.Time{}, domain.ErrInvalidDateRange
	}

	item, err := s.itemRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	return item, start, end, nil
}
