package rest

import (
	"rentalhub-backend/internal/repository"
	"rentalhub-backend/internal/store"
)

// Resource names on the record store.
const (
	itemsResource    = "rental_items"
	bookingsResource = "rental_bookings"
	rulesResource    = "rental_pricing_rules"
)

type Store struct {
	client *store.Client
	repository.ItemRepository
	repository.BookingRepository
	repository.PricingRuleRepository
}

func NewStore(client *store.Client) *Store {
	return &Store{
		client:                client,
		ItemRepository:        NewItemRepository(client),
		BookingRepository:     NewBookingRepository(client),
		PricingRuleRepository: NewPricingRuleRepository(client),
	}
}
