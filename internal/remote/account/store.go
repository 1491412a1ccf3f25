package account

import (
	"context"

	"pizzaria-storefront/internal/domain"
)

// SignupInput captures the fields the signup endpoint expects.
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

// UpdateInput carries editable profile fields. Zero values are sent as-is;
// the backend replaces the stored profile wholesale.
type UpdateInput struct {
	Name    string         `json:"name"`
	Phone   string         `json:"phone,omitempty"`
	Address domain.Address `json:"address"`
}

// Store is the remote account surface: registration, login and the customer
// profile.
type Store interface {
	Signup(ctx context.Context, in SignupInput) (*domain.Customer, error)
	Login(ctx context.Context, email, password string) (*domain.Customer, error)
	Get(ctx context.Context, customerID int64) (*domain.Customer, error)
	Update(ctx context.Context, customerID int64, in UpdateInput) (*domain.Customer, error)
}
