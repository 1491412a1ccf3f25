package menu

import (
	"context"

	"pizzaria-storefront/internal/domain"
)

// Store fetches the pizza catalog.
type Store interface {
	List(ctx context.Context) ([]domain.Pizza, error)
}
