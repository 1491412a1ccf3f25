package address

import (
	"context"
	"strings"

	"pizzaria-storefront/internal/api"
	"pizzaria-storefront/internal/domain"
)

type httpStore struct {
	client *api.Client
}

// NewHTTP returns a Store backed by a ViaCEP-shaped lookup service.
func NewHTTP(client *api.Client) Store {
	return &httpStore{client: client}
}

// lookupResponse mirrors the ViaCEP payload. Unknown postal codes answer
// 200 with an "erro" marker instead of a failure status.
type lookupResponse struct {
	CEP        string      `json:"cep"`
	Street     string      `json:"logradouro"`
	Complement string      `json:"complemento"`
	District   string      `json:"bairro"`
	City       string      `json:"localidade"`
	State      string      `json:"uf"`
	Erro       interface{} `json:"erro,omitempty"`
}

func (s *httpStore) Lookup(ctx context.Context, cep string) (*domain.Address, error) {
	digits := onlyDigits(cep)
	if len(digits) != 8 {
		return nil, domain.ErrIncomplete
	}

	var resp lookupResponse
	if err := s.client.GetJSON(ctx, "/"+digits+"/json", nil, &resp); err != nil {
		return nil, err
	}
	if isErro(resp.Erro) {
		return nil, domain.ErrNotFound
	}

	return &domain.Address{
		PostalCode: resp.CEP,
		Street:     resp.Street,
		Complement: resp.Complement,
		District:   resp.District,
		City:       resp.City,
		State:      resp.State,
	}, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isErro tolerates both the boolean and the quoted-string form the service
// has shipped over the years.
func isErro(v interface{}) bool {
	switch e := v.(type) {
	case bool:
		return e
	case string:
		return strings.EqualFold(e, "true")
	}
	return false
}
