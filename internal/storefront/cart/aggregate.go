package cart

import (
	"strconv"

	"pizzaria-storefront/internal/domain"
)

// GroupKey derives the display-group key for a pizza/variant pair. It is
// stable and unique within one aggregation pass.
func GroupKey(pizzaID int64, variant string) string {
	return strconv.FormatInt(pizzaID, 10) + ":" + variant
}

// Aggregate folds a flat list of line items into one group per distinct
// (pizza id, variant) pair, in first-seen order. The group total is the sum
// of each item's own price, not unit price times quantity, so heterogeneous
// per-item pricing inside a group still adds up. Aggregate is pure: same
// input, same output, no side effects.
func Aggregate(items []domain.LineItem) []domain.CartGroup {
	groups := make([]domain.CartGroup, 0, len(items))
	index := make(map[string]int, len(items))

	for _, item := range items {
		key := GroupKey(item.PizzaID, item.Variant)
		if i, ok := index[key]; ok {
			groups[i].Quantity++
			groups[i].Total += item.UnitPrice
			continue
		}
		index[key] = len(groups)
		groups = append(groups, domain.CartGroup{
			Key:              key,
			PizzaID:          item.PizzaID,
			Variant:          item.Variant,
			DisplayName:      item.DisplayName,
			UnitPrice:        item.UnitPrice,
			Quantity:         1,
			Total:            item.UnitPrice,
			RepresentativeID: item.ID,
		})
	}
	return groups
}

// Total sums every group's total; it is what the cart screen shows as the
// order total.
func Total(groups []domain.CartGroup) float64 {
	var sum float64
	for _, g := range groups {
		sum += g.Total
	}
	return sum
}
