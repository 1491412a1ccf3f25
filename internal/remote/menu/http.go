package menu

import (
	"context"

	"pizzaria-storefront/internal/api"
	"pizzaria-storefront/internal/domain"
)

type httpStore struct {
	client *api.Client
}

// NewHTTP returns a Store backed by the pizzaria REST API.
func NewHTTP(client *api.Client) Store {
	return &httpStore{client: client}
}

func (s *httpStore) List(ctx context.Context) ([]domain.Pizza, error) {
	var pizzas []domain.Pizza
	if err := s.client.GetJSON(ctx, "/pizzas", nil, &pizzas); err != nil {
		return nil, err
	}
	return pizzas, nil
}
