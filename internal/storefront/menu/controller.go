package menu

import (
	"context"
	"log"
	"strings"
	"sync"

	"pizzaria-storefront/internal/domain"
	remotemenu "pizzaria-storefront/internal/remote/menu"
)

// Controller backs the menu screen: it loads the catalog once per focus and
// serves filtered views of it. Browsing needs no login.
type Controller struct {
	store  remotemenu.Store
	logger *log.Logger

	mu      sync.Mutex
	pizzas  []domain.Pizza
	loading bool
	lastErr error
}

func New(store remotemenu.Store, logger *log.Logger) *Controller {
	return &Controller{store: store, logger: logger}
}

// Refresh replaces the cached catalog from the remote endpoint. A failure
// clears the catalog and is retried by calling Refresh again.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	pizzas, err := c.store.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("load menu: %v", err)
		}
		c.pizzas = nil
		c.lastErr = err
		return err
	}
	c.pizzas = pizzas
	c.lastErr = nil
	return nil
}

// Pizzas returns the loaded catalog.
func (c *Controller) Pizzas() []domain.Pizza {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Pizza, len(c.pizzas))
	copy(out, c.pizzas)
	return out
}

// ByVariant filters the catalog to one variant ("tipo").
func (c *Controller) ByVariant(variant string) []domain.Pizza {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []domain.Pizza
	for _, p := range c.pizzas {
		if p.Variant == variant {
			out = append(out, p)
		}
	}
	return out
}

// Search filters the catalog by case-insensitive name substring.
func (c *Controller) Search(term string) []domain.Pizza {
	needle := strings.ToLower(strings.TrimSpace(term))
	c.mu.Lock()
	defer c.mu.Unlock()
	if needle == "" {
		out := make([]domain.Pizza, len(c.pizzas))
		copy(out, c.pizzas)
		return out
	}
	var out []domain.Pizza
	for _, p := range c.pizzas {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
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
