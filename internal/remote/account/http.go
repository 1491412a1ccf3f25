package account

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

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

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *httpStore) Signup(ctx context.Context, in SignupInput) (*domain.Customer, error) {
	data, err := s.client.Send(ctx, http.MethodPost, "/signup", nil, in)
	if err != nil {
		return nil, err
	}
	return decodeCustomer("POST /signup", data)
}

func (s *httpStore) Login(ctx context.Context, email, password string) (*domain.Customer, error) {
	data, err := s.client.Send(ctx, http.MethodPost, "/login", nil, loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return decodeCustomer("POST /login", data)
}

func (s *httpStore) Get(ctx context.Context, customerID int64) (*domain.Customer, error) {
	path := fmt.Sprintf("/customers/%d", customerID)
	data, err := s.client.Send(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeCustomer("GET "+path, data)
}

func (s *httpStore) Update(ctx context.Context, customerID int64, in UpdateInput) (*domain.Customer, error) {
	path := fmt.Sprintf("/customers/%d", customerID)
	data, err := s.client.Send(ctx, http.MethodPut, path, nil, in)
	if err != nil {
		return nil, err
	}
	return decodeCustomer("PUT "+path, data)
}

func decodeCustomer(op string, data json.RawMessage) (*domain.Customer, error) {
	var customer domain.Customer
	if err := json.Unmarshal(data, &customer); err != nil {
		return nil, fmt.Errorf("%s: unexpected response shape: %w", op, err)
	}
	if customer.ID == 0 {
		return nil, fmt.Errorf("%s: response missing customer id", op)
	}
	return &customer, nil
}
