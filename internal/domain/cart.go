package domain

// LineItem is one unit of a pizza variant in a customer's cart, as persisted
// by the remote cart store. ID is assigned server-side and is zero until the
// item has been persisted.
type LineItem struct {
	ID          int64   `json:"id"`
	PizzaID     int64   `json:"pizzaId"`
	Variant     string  `json:"variant"`
	UnitPrice   float64 `json:"price"`
	DisplayName string  `json:"name"`
	CustomerID  int64   `json:"customerId,omitempty"`
}

// CartGroup aggregates every LineItem sharing the same (pizza id, variant)
// pair. Groups are recomputed from the flat item list on every change; they
// are a pure view and are never persisted.
type CartGroup struct {
	Key              string  `json:"key"`
	PizzaID          int64   `json:"pizzaId"`
	Variant          string  `json:"variant"`
	DisplayName      string  `json:"name"`
	UnitPrice        float64 `json:"unitPrice"`
	Quantity         int     `json:"quantity"`
	Total            float64 `json:"total"`
	RepresentativeID int64   `json:"-"`
}
