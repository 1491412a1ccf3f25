package favorites

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

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

func (s *httpStore) Create(ctx context.Context, in []AddInput) error {
	_, err := s.client.Send(ctx, http.MethodPost, "/favorites", nil, in)
	return err
}

func (s *httpStore) List(ctx context.Context, customerID int64) ([]domain.Favorite, error) {
	query := url.Values{"customerId": {strconv.FormatInt(customerID, 10)}}
	var favs []domain.Favorite
	if err := s.client.GetJSON(ctx, "/favorites", query, &favs); err != nil {
		return nil, err
	}
	return favs, nil
}

func (s *httpStore) Delete(ctx context.Context, favoriteID int64) error {
	path := fmt.Sprintf("/favorites/%d", favoriteID)
	_, err := s.client.Send(ctx, http.MethodDelete, path, nil, nil)
	return err
}
