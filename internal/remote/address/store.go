package address

import (
	"context"

	"pizzaria-storefront/internal/domain"
)

// Store resolves a postal code (CEP) into address fields for profile
// autofill.
type Store interface {
	Lookup(ctx context.Context, cep string) (*domain.Address, error)
}
