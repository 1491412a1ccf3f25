package favorite

import (
	"context"

	"pizzaria-storefront/internal/domain"
)

type CreateInput struct {
	CustomerID  int64
	PizzaID     int64
	DisplayName string
	UnitPrice   float64
}

type Repository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Favorite, error)
	Create(ctx context.Context, in CreateInput) (*domain.Favorite, error)
	DeleteByID(ctx context.Context, id int64) error
}
