package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pizzaria-storefront/internal/domain"
	custrepo "pizzaria-storefront/internal/repository/customer"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles signup, login and profile edits for the backend.
type Service struct {
	repo        custrepo.Repository
	passwordMin int
}

// New creates a Service with sane defaults.
func New(repo custrepo.Repository) *Service {
	return &Service{repo: repo, passwordMin: 8}
}

// SignupInput captures fields expected by the signup endpoint.
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// UpdateInput captures editable profile fields.
type UpdateInput struct {
	Name    string         `json:"name"`
	Phone   string         `json:"phone"`
	Address domain.Address `json:"address"`
}

// Signup registers a new customer.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.Customer, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, errors.New("email required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name required")
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, fmt.Errorf("password must be at least %d characters", s.passwordMin)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, domain.Customer{
		Email:        email,
		PasswordHash: string(hashed),
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
	})
}

// Login verifies credentials and returns the customer on success.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Customer, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	customer, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return customer, nil
}

// Get returns a customer profile by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces the editable profile fields of a customer.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name required")
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	current.Name = strings.TrimSpace(in.Name)
	current.Phone = strings.TrimSpace(in.Phone)
	current.Address = in.Address
	return s.repo.Update(ctx, *current)
}
