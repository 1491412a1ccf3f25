package cartitems

import (
	"context"

	"pizzaria-storefront/internal/domain"
)

// AddInput carries the fields the backend needs to persist one cart unit.
type AddInput struct {
	CustomerID  int64   `json:"customerId"`
	PizzaID     int64   `json:"pizzaId"`
	Variant     string  `json:"variant"`
	UnitPrice   float64 `json:"price"`
	DisplayName string  `json:"name"`
}

// Store is the remote cart store: the authoritative list of cart line items
// for a customer. The client never invents item ids; they only ever come back
// from List after an Add.
type Store interface {
	List(ctx context.Context, customerID int64) ([]domain.LineItem, error)
	Add(ctx context.Context, in AddInput) error
	DeleteByID(ctx context.Context, itemID int64) error
	DeleteByPizza(ctx context.Context, pizzaID, customerID int64) error
}
