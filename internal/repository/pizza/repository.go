package pizza

import (
	"context"

	"pizzaria-storefront/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Pizza, error)
	GetByID(ctx context.Context, id int64) (*domain.Pizza, error)
	Upsert(ctx context.Context, p domain.Pizza) (*domain.Pizza, error)
}
