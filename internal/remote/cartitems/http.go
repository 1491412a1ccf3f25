package cartitems

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

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

func (s *httpStore) List(ctx context.Context, customerID int64) ([]domain.LineItem, error) {
	query := url.Values{"customerId": {strconv.FormatInt(customerID, 10)}}

	// The list endpoint answers with a bare array. Records are validated
	// field by field rather than trusted: ids may arrive as strings and
	// prices may be missing or non-numeric.
	var records []map[string]interface{}
	if err := s.client.GetJSON(ctx, "/cart-items", query, &records); err != nil {
		return nil, err
	}

	items := make([]domain.LineItem, 0, len(records))
	for _, rec := range records {
		items = append(items, domain.LineItem{
			ID:          asID(rec["id"]),
			PizzaID:     asID(rec["pizzaId"]),
			Variant:     asString(rec["variant"]),
			UnitPrice:   asPrice(rec["price"]),
			DisplayName: asString(rec["name"]),
			CustomerID:  asID(rec["customerId"]),
		})
	}
	return items, nil
}

func (s *httpStore) Add(ctx context.Context, in AddInput) error {
	_, err := s.client.Send(ctx, http.MethodPost, "/cart-items", nil, in)
	return err
}

func (s *httpStore) DeleteByID(ctx context.Context, itemID int64) error {
	path := fmt.Sprintf("/cart-items/%d", itemID)
	_, err := s.client.Send(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func (s *httpStore) DeleteByPizza(ctx context.Context, pizzaID, customerID int64) error {
	query := url.Values{
		"pizzaId":    {strconv.FormatInt(pizzaID, 10)},
		"customerId": {strconv.FormatInt(customerID, 10)},
	}
	_, err := s.client.Send(ctx, http.MethodDelete, "/cart-items", query, nil)
	return err
}

// asID coerces a wire value into an integer identifier, zero on failure.
func asID(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err == nil {
			return id
		}
	}
	return 0
}

// asPrice coerces a wire value into a non-negative price, zero on failure.
// Aggregation must never fail because a record carries a bad price.
func asPrice(v interface{}) float64 {
	switch p := v.(type) {
	case float64:
		if p > 0 {
			return p
		}
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err == nil && f > 0 {
			return f
		}
	}
	return 0
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
