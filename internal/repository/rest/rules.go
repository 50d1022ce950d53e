package rest

import (
	"context"
	"fmt"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/repository"
	"rentalhub-backend/internal/store"
)

type pricingRuleRepository struct {
	client *store.Client
}

func NewPricingRuleRepository(client *store.Client) repository.PricingRuleRepository {
	return &pricingRuleRepository{client: client}
}

// ListActiveByItem returns the item's active rules oldest first. That order is
// the rule-selection order: the first matching rule wins.
func (r *pricingRuleRepository) ListActiveByItem(ctx context.Context, itemID string) ([]domain.RentalPricingRule, error) {
	q := store.NewQuery().
		Eq("rental_item_id", itemID).
		Eq("is_active", "true").
		OrderBy("created_at", false)

	var rules []domain.RentalPricingRule
	if err := r.client.List(ctx, rulesResource, q, &rules); err != nil {
		return nil, fmt.Errorf("failed to load pricing rules: %w", err)
	}
	return rules, nil
}
