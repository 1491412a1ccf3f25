package favorites

import (
	"context"
	"log"
	"sync"

	"pizzaria-storefront/internal/domain"
	"pizzaria-storefront/internal/remote/cartitems"
	remotefavs "pizzaria-storefront/internal/remote/favorites"
	"pizzaria-storefront/internal/session"
)

// Controller backs the favorites screen: listing the session customer's
// favorites, removing one, and sending one back into the cart.
type Controller struct {
	favs   remotefavs.Store
	cart   cartitems.Store
	sess   session.Provider
	logger *log.Logger

	mu      sync.Mutex
	entries []domain.Favorite
	loading bool
	lastErr error
}

func New(favs remotefavs.Store, cart cartitems.Store, sess session.Provider, logger *log.Logger) *Controller {
	return &Controller{favs: favs, cart: cart, sess: sess, logger: logger}
}

// Refresh replaces the favorites list from the remote store. Without a login
// the list is cleared and no request is issued.
func (c *Controller) Refresh(ctx context.Context) error {
	customerID, ok := c.sess.CustomerID()
	if !ok {
		c.mu.Lock()
		c.entries = nil
		c.lastErr = nil
		c.mu.Unlock()
		return nil
	}

	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	entries, err := c.favs.List(ctx, customerID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.logf("load favorites: %v", err)
		c.entries = nil
		c.lastErr = err
		return err
	}
	c.entries = entries
	c.lastErr = nil
	return nil
}

// Remove deletes one favorite and strips it from the local list on success.
func (c *Controller) Remove(ctx context.Context, favoriteID int64) error {
	if _, ok := c.sess.CustomerID(); !ok {
		return domain.ErrUnauthenticated
	}
	if err := c.favs.Delete(ctx, favoriteID); err != nil {
		c.logf("remove favorite %d: %v", favoriteID, err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range c.entries {
		if e.ID == favoriteID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			break
		}
	}
	return nil
}

// AddToCart pushes a favorite back into the cart. Favorites carry no variant,
// so the backend's default variant for the pizza applies.
func (c *Controller) AddToCart(ctx context.Context, fav domain.Favorite) error {
	customerID, ok := c.sess.CustomerID()
	if !ok {
		return domain.ErrUnauthenticated
	}
	if fav.PizzaID == 0 || fav.DisplayName == "" || fav.UnitPrice <= 0 {
		return domain.ErrIncomplete
	}
	err := c.cart.Add(ctx, cartitems.AddInput{
		CustomerID:  customerID,
		PizzaID:     fav.PizzaID,
		UnitPrice:   fav.UnitPrice,
		DisplayName: fav.DisplayName,
	})
	if err != nil {
		c.logf("favorite %d to cart: %v", fav.ID, err)
	}
	return err
}

// Entries returns the loaded favorites.
func (c *Controller) Entries() []domain.Favorite {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Favorite, len(c.entries))
	copy(out, c.entries)
	return out
}

// Loading reports whether a Refresh is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the error recorded by the last failed Refresh.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller) logf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
