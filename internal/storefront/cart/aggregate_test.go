package cart

import (
	"math"
	"reflect"
	"testing"

	"pizzaria-storefront/internal/domain"
)

func sampleItems() []domain.LineItem {
	return []domain.LineItem{
		{ID: 1, PizzaID: 7, Variant: "M", UnitPrice: 20, DisplayName: "Margherita"},
		{ID: 2, PizzaID: 7, Variant: "M", UnitPrice: 20, DisplayName: "Margherita"},
		{ID: 3, PizzaID: 9, Variant: "G", UnitPrice: 35, DisplayName: "Calabresa"},
	}
}

func TestAggregateGroupsByPizzaAndVariant(t *testing.T) {
	groups := Aggregate(sampleItems())

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	first := groups[0]
	if first.Key != "7:M" || first.Quantity != 2 || first.Total != 40 || first.UnitPrice != 20 {
		t.Fatalf("unexpected first group: %+v", first)
	}
	if first.RepresentativeID != 1 {
		t.Fatalf("expected representative id 1, got %d", first.RepresentativeID)
	}

	second := groups[1]
	if second.Key != "9:G" || second.Quantity != 1 || second.Total != 35 || second.UnitPrice != 35 {
		t.Fatalf("unexpected second group: %+v", second)
	}

	if got := Total(groups); got != 75 {
		t.Fatalf("expected total 75, got %v", got)
	}
}

func TestAggregateKeepsFirstSeenOrder(t *testing.T) {
	items := []domain.LineItem{
		{ID: 1, PizzaID: 9, Variant: "G"},
		{ID: 2, PizzaID: 7, Variant: "M"},
		{ID: 3, PizzaID: 9, Variant: "G"},
		{ID: 4, PizzaID: 7, Variant: "G"},
	}
	groups := Aggregate(items)

	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	want := []string{"9:G", "7:M", "7:G"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("expected keys %v, got %v", want, keys)
	}
}

func TestAggregateQuantitiesSumToInputLength(t *testing.T) {
	items := sampleItems()
	items = append(items,
		domain.LineItem{ID: 4, PizzaID: 7, Variant: "G", UnitPrice: 28, DisplayName: "Margherita"},
		domain.LineItem{ID: 5, PizzaID: 9, Variant: "G", UnitPrice: 35, DisplayName: "Calabresa"},
	)
	groups := Aggregate(items)

	total := 0
	for _, g := range groups {
		total += g.Quantity
	}
	if total != len(items) {
		t.Fatalf("expected quantities to sum to %d, got %d", len(items), total)
	}
}

func TestAggregateToleratesZeroPrices(t *testing.T) {
	// Records with missing or invalid prices reach the aggregator as zero;
	// aggregation must never fail because of them.
	items := []domain.LineItem{
		{ID: 1, PizzaID: 7, Variant: "M", UnitPrice: 0, DisplayName: "Margherita"},
		{ID: 2, PizzaID: 7, Variant: "M", UnitPrice: 20, DisplayName: "Margherita"},
	}
	groups := Aggregate(items)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if math.Abs(groups[0].Total-20) > 1e-9 {
		t.Fatalf("expected total 20, got %v", groups[0].Total)
	}
	if groups[0].UnitPrice != 0 {
		t.Fatalf("expected unit price from first item (0), got %v", groups[0].UnitPrice)
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	items := sampleItems()
	first := Aggregate(items)
	second := Aggregate(items)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output, got %+v vs %+v", first, second)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	groups := Aggregate(nil)
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
	if Total(groups) != 0 {
		t.Fatalf("expected zero total")
	}
}
