package cartitem

import (
	"context"

	"pizzaria-storefront/internal/domain"
)

// CreateInput carries the denormalized fields stored with each cart unit.
type CreateInput struct {
	CustomerID  int64
	PizzaID     int64
	Variant     string
	UnitPrice   float64
	DisplayName string
}

type Repository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.LineItem, error)
	Create(ctx context.Context, in CreateInput) (*domain.LineItem, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByPizza(ctx context.Context, pizzaID, customerID int64) (int64, error)
}
