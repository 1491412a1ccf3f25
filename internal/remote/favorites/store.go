package favorites

import (
	"context"

	"pizzaria-storefront/internal/domain"
)

// AddInput carries one favorite entry. The backend accepts a batch per call.
type AddInput struct {
	CustomerID  int64   `json:"customerId"`
	PizzaID     int64   `json:"pizzaId"`
	DisplayName string  `json:"name"`
	UnitPrice   float64 `json:"price"`
}

// Store is the remote favorites collection for a customer.
type Store interface {
	Create(ctx context.Context, in []AddInput) error
	List(ctx context.Context, customerID int64) ([]domain.Favorite, error)
	Delete(ctx context.Context, favoriteID int64) error
}
