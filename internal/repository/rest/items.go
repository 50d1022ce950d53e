package rest

import (
	"context"
	"errors"
	"fmt"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/repository"
	"rentalhub-backend/internal/store"
)

type itemRepository struct {
	client *store.Client
}

func NewItemRepository(client *store.Client) repository.ItemRepository {
	return &itemRepository{client: client}
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.RentalItem, error) {
	return r.getOne(ctx, store.NewQuery().Eq("id", id))
}

func (r *itemRepository) GetBySlug(ctx context.Context, slug string) (*domain.RentalItem, error) {
	return r.getOne(ctx, store.NewQuery().Eq("slug", slug))
}

func (r *itemRepository) getOne(ctx context.Context, q *store.Query) (*domain.RentalItem, error) {
	item := &domain.RentalItem{}
	if err := r.client.Get(ctx, itemsResource, q, item); err != nil {
		var se *store.Error
		if errors.As(err, &se) && se.NotFound() {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to load rental item: %w", err)
	}
	return item, nil
}
