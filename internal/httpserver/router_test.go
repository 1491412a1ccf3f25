package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pizzaria-storefront/internal/domain"
	cartitemrepo "pizzaria-storefront/internal/repository/cartitem"
	favoriterepo "pizzaria-storefront/internal/repository/favorite"
	accountsvc "pizzaria-storefront/internal/service/account"

	"golang.org/x/crypto/bcrypt"
)

type stubPizzaRepo struct {
	pizzas []domain.Pizza
}

func (s *stubPizzaRepo) List(ctx context.Context) ([]domain.Pizza, error) {
	return s.pizzas, nil
}

func (s *stubPizzaRepo) GetByID(ctx context.Context, id int64) (*domain.Pizza, error) {
	for _, p := range s.pizzas {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubPizzaRepo) Upsert(ctx context.Context, p domain.Pizza) (*domain.Pizza, error) {
	s.pizzas = append(s.pizzas, p)
	return &p, nil
}

type stubCartItemRepo struct {
	items  []domain.LineItem
	nextID int64
}

func (s *stubCartItemRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.LineItem, error) {
	var out []domain.LineItem
	for _, item := range s.items {
		if item.CustomerID == customerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubCartItemRepo) Create(ctx context.Context, in cartitemrepo.CreateInput) (*domain.LineItem, error) {
	s.nextID++
	item := domain.LineItem{
		ID:          s.nextID,
		PizzaID:     in.PizzaID,
		Variant:     in.Variant,
		UnitPrice:   in.UnitPrice,
		DisplayName: in.DisplayName,
		CustomerID:  in.CustomerID,
	}
	s.items = append(s.items, item)
	return &item, nil
}

func (s *stubCartItemRepo) DeleteByID(ctx context.Context, id int64) error {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *stubCartItemRepo) DeleteByPizza(ctx context.Context, pizzaID, customerID int64) (int64, error) {
	var kept []domain.LineItem
	var removed int64
	for _, item := range s.items {
		if item.PizzaID == pizzaID && item.CustomerID == customerID {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	return removed, nil
}

type stubFavoriteRepo struct {
	favs   []domain.Favorite
	nextID int64
}

func (s *stubFavoriteRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Favorite, error) {
	var out []domain.Favorite
	for _, f := range s.favs {
		if f.CustomerID == customerID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *stubFavoriteRepo) Create(ctx context.Context, in favoriterepo.CreateInput) (*domain.Favorite, error) {
	for _, f := range s.favs {
		if f.CustomerID == in.CustomerID && f.PizzaID == in.PizzaID {
			return nil, domain.ErrAlreadyExists
		}
	}
	s.nextID++
	fav := domain.Favorite{
		ID:          s.nextID,
		CustomerID:  in.CustomerID,
		PizzaID:     in.PizzaID,
		DisplayName: in.DisplayName,
		UnitPrice:   in.UnitPrice,
	}
	s.favs = append(s.favs, fav)
	return &fav, nil
}

func (s *stubFavoriteRepo) DeleteByID(ctx context.Context, id int64) error {
	for i, f := range s.favs {
		if f.ID == id {
			s.favs = append(s.favs[:i], s.favs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type stubAccountRepo struct {
	customers map[string]*domain.Customer
	nextID    int64
}

func (s *stubAccountRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	if s.customers == nil {
		s.customers = make(map[string]*domain.Customer)
	}
	if _, exists := s.customers[c.Email]; exists {
		return nil, domain.ErrAlreadyExists
	}
	s.nextID++
	c.ID = s.nextID
	s.customers[c.Email] = &c
	out := c
	return &out, nil
}

func (s *stubAccountRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	for _, c := range s.customers {
		if c.ID == id {
			out := *c
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if c, ok := s.customers[email]; ok {
		out := *c
		return &out, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubAccountRepo) Update(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	s.customers[c.Email] = &c
	out := c
	return &out, nil
}

func newTestRouter(t *testing.T, deps Deps) http.Handler {
	t.Helper()
	if deps.Pizzas == nil {
		deps.Pizzas = &stubPizzaRepo{}
	}
	if deps.CartItems == nil {
		deps.CartItems = &stubCartItemRepo{}
	}
	if deps.Favorites == nil {
		deps.Favorites = &stubFavoriteRepo{}
	}
	if deps.Accounts == nil {
		deps.Accounts = accountsvc.New(&stubAccountRepo{})
	}
	return buildRouter(log.New(io.Discard, "", 0), nil, deps)
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var env apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return env
}

func TestListCartItemsReturnsBareArray(t *testing.T) {
	repo := &stubCartItemRepo{items: []domain.LineItem{
		{ID: 1, PizzaID: 7, Variant: "M", UnitPrice: 20, DisplayName: "Margherita", CustomerID: 42},
		{ID: 2, PizzaID: 9, Variant: "G", UnitPrice: 35, DisplayName: "Calabresa", CustomerID: 42},
		{ID: 3, PizzaID: 7, Variant: "M", UnitPrice: 20, DisplayName: "Margherita", CustomerID: 99},
	}}
	router := newTestRouter(t, Deps{CartItems: repo})

	rec := doJSON(t, router, http.MethodGet, "/cart-items?customerId=42", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var items []domain.LineItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("expected a bare array, got %s", rec.Body.String())
	}
	if len(items) != 2 {
		t.Fatalf("expected items of customer 42 only, got %+v", items)
	}
}

func TestListCartItemsEmptyCartIsStillAnArray(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := doJSON(t, router, http.MethodGet, "/cart-items?customerId=42", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array body, got %q", body)
	}
}

func TestListCartItemsRequiresCustomer(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := doJSON(t, router, http.MethodGet, "/cart-items", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Success {
		t.Fatal("expected success=false")
	}
}

func TestAddCartItem(t *testing.T) {
	repo := &stubCartItemRepo{}
	router := newTestRouter(t, Deps{CartItems: repo})

	rec := doJSON(t, router, http.MethodPost, "/cart-items",
		`{"customerId": 42, "pizzaId": 7, "variant": "M", "price": 20, "name": "Margherita"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("expected success envelope, got %+v", env)
	}
	if len(repo.items) != 1 || repo.items[0].PizzaID != 7 || repo.items[0].Variant != "M" {
		t.Fatalf("item not persisted: %+v", repo.items)
	}
}

func TestAddCartItemRejectsIncompletePayload(t *testing.T) {
	repo := &stubCartItemRepo{}
	router := newTestRouter(t, Deps{CartItems: repo})

	rec := doJSON(t, router, http.MethodPost, "/cart-items", `{"customerId": 42, "pizzaId": 7}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Success {
		t.Fatal("expected success=false")
	}
	if len(repo.items) != 0 {
		t.Fatal("invalid payload must not persist")
	}
}

func TestDeleteCartItem(t *testing.T) {
	repo := &stubCartItemRepo{items: []domain.LineItem{{ID: 11, PizzaID: 7, CustomerID: 42}}}
	router := newTestRouter(t, Deps{CartItems: repo})

	rec := doJSON(t, router, http.MethodDelete, "/cart-items/11", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(repo.items) != 0 {
		t.Fatalf("item not removed: %+v", repo.items)
	}

	rec = doJSON(t, router, http.MethodDelete, "/cart-items/11", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a gone item, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Success {
		t.Fatal("expected success=false")
	}
}

func TestDeleteCartItemsByPizzaSpansVariants(t *testing.T) {
	repo := &stubCartItemRepo{items: []domain.LineItem{
		{ID: 1, PizzaID: 7, Variant: "M", CustomerID: 42},
		{ID: 2, PizzaID: 7, Variant: "G", CustomerID: 42},
		{ID: 3, PizzaID: 9, Variant: "G", CustomerID: 42},
		{ID: 4, PizzaID: 7, Variant: "M", CustomerID: 99},
	}}
	router := newTestRouter(t, Deps{CartItems: repo})

	rec := doJSON(t, router, http.MethodDelete, "/cart-items?pizzaId=7&customerId=42", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("expected success envelope, got %+v", env)
	}
	if len(repo.items) != 2 {
		t.Fatalf("expected pizza 9 and the other customer's item to survive, got %+v", repo.items)
	}
}

func TestListPizzas(t *testing.T) {
	repo := &stubPizzaRepo{pizzas: []domain.Pizza{
		{ID: 1, Name: "Margherita", Variant: "M", Price: 20},
		{ID: 2, Name: "Margherita", Variant: "G", Price: 28},
	}}
	router := newTestRouter(t, Deps{Pizzas: repo})

	rec := doJSON(t, router, http.MethodGet, "/pizzas", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var pizzas []domain.Pizza
	if err := json.Unmarshal(rec.Body.Bytes(), &pizzas); err != nil {
		t.Fatalf("expected a bare array, got %s", rec.Body.String())
	}
	if len(pizzas) != 2 {
		t.Fatalf("unexpected menu: %+v", pizzas)
	}
}

func TestCreateFavoritesBatch(t *testing.T) {
	repo := &stubFavoriteRepo{}
	router := newTestRouter(t, Deps{Favorites: repo})

	rec := doJSON(t, router, http.MethodPost, "/favorites",
		`[{"customerId": 42, "pizzaId": 7, "name": "Margherita", "price": 20}]`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.favs) != 1 {
		t.Fatalf("favorite not persisted: %+v", repo.favs)
	}

	// Saving the same pizza again conflicts.
	rec = doJSON(t, router, http.MethodPost, "/favorites",
		`[{"customerId": 42, "pizzaId": 7, "name": "Margherita", "price": 20}]`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Success {
		t.Fatal("expected success=false")
	}
}

func TestCreateFavoritesRejectsNonPositivePrice(t *testing.T) {
	repo := &stubFavoriteRepo{}
	router := newTestRouter(t, Deps{Favorites: repo})

	rec := doJSON(t, router, http.MethodPost, "/favorites",
		`[{"customerId": 42, "pizzaId": 7, "name": "Margherita", "price": 0}]`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(repo.favs) != 0 {
		t.Fatal("invalid favorite must not persist")
	}
}

func TestSignupAndLogin(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := doJSON(t, router, http.MethodPost, "/signup",
		`{"email": "ana@example.com", "password": "super-secret", "name": "Ana"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/signup",
		`{"email": "ana@example.com", "password": "super-secret", "name": "Ana"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate signup: expected 409, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/login",
		`{"email": "ana@example.com", "password": "super-secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("expected success envelope, got %+v", env)
	}
	raw, err := json.Marshal(env.Data)
	if err != nil {
		t.Fatal(err)
	}
	var customer domain.Customer
	if err := json.Unmarshal(raw, &customer); err != nil {
		t.Fatalf("decode customer: %v", err)
	}
	if customer.ID == 0 || customer.Email != "ana@example.com" {
		t.Fatalf("unexpected customer payload: %+v", customer)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatal("password material must never be serialized")
	}

	rec = doJSON(t, router, http.MethodPost, "/login",
		`{"email": "ana@example.com", "password": "wrong-password"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", rec.Code)
	}
}

func TestGetAndUpdateCustomer(t *testing.T) {
	accounts := &stubAccountRepo{}
	hash, err := bcrypt.GenerateFromPassword([]byte("super-secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := accounts.Create(context.Background(), domain.Customer{
		Email: "ana@example.com", Name: "Ana", PasswordHash: string(hash),
	}); err != nil {
		t.Fatal(err)
	}
	router := newTestRouter(t, Deps{Accounts: accountsvc.New(accounts)})

	rec := doJSON(t, router, http.MethodGet, "/customers/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPut, "/customers/1",
		`{"name": "Ana Maria", "phone": "11 98888-0000", "address": {"city": "São Paulo", "state": "SP"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := accounts.customers["ana@example.com"].Name; got != "Ana Maria" {
		t.Fatalf("profile not updated: %q", got)
	}

	rec = doJSON(t, router, http.MethodGet, "/customers/999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing customer: expected 404, got %d", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := doJSON(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
