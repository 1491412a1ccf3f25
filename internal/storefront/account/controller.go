package account

import (
	"context"
	"errors"
	"log"
	"strings"

	"pizzaria-storefront/internal/domain"
	remoteaccount "pizzaria-storefront/internal/remote/account"
	remoteaddress "pizzaria-storefront/internal/remote/address"
	"pizzaria-storefront/internal/session"
)

// Controller backs the login, signup and profile screens. A successful login
// or signup records the customer id in the session; every other storefront
// controller reads it from there.
type Controller struct {
	store   remoteaccount.Store
	address remoteaddress.Store
	sess    *session.Memory
	logger  *log.Logger
}

func New(store remoteaccount.Store, address remoteaddress.Store, sess *session.Memory, logger *log.Logger) *Controller {
	return &Controller{store: store, address: address, sess: sess, logger: logger}
}

// Login authenticates against the backend and opens the session.
func (c *Controller) Login(ctx context.Context, email, password string) (*domain.Customer, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, domain.ErrIncomplete
	}
	customer, err := c.store.Login(ctx, email, password)
	if err != nil {
		c.logf("login %s: %v", email, err)
		return nil, err
	}
	c.sess.Set(customer.ID)
	return customer, nil
}

// Signup registers a new customer and opens the session right away.
func (c *Controller) Signup(ctx context.Context, in remoteaccount.SignupInput) (*domain.Customer, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrIncomplete
	}
	customer, err := c.store.Signup(ctx, in)
	if err != nil {
		c.logf("signup %s: %v", in.Email, err)
		return nil, err
	}
	c.sess.Set(customer.ID)
	return customer, nil
}

// Logout closes the session. Purely local; the backend keeps no session
// state.
func (c *Controller) Logout() {
	c.sess.Clear()
}

// Profile fetches the logged-in customer's profile.
func (c *Controller) Profile(ctx context.Context) (*domain.Customer, error) {
	customerID, ok := c.sess.CustomerID()
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return c.store.Get(ctx, customerID)
}

// UpdateProfile stores edited profile fields for the logged-in customer.
func (c *Controller) UpdateProfile(ctx context.Context, in remoteaccount.UpdateInput) (*domain.Customer, error) {
	customerID, ok := c.sess.CustomerID()
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrIncomplete
	}
	customer, err := c.store.Update(ctx, customerID, in)
	if err != nil {
		c.logf("update profile %d: %v", customerID, err)
		return nil, err
	}
	return customer, nil
}

// FillAddress resolves a postal code into address fields for the profile
// form. An unknown code is reported as not found; number and complement stay
// untouched for the customer to type.
func (c *Controller) FillAddress(ctx context.Context, cep string) (*domain.Address, error) {
	addr, err := c.address.Lookup(ctx, cep)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrIncomplete) {
			c.logf("lookup cep %s: %v", cep, err)
		}
		return nil, err
	}
	return addr, nil
}

func (c *Controller) logf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
