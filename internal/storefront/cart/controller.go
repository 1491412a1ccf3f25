package cart

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"

	"pizzaria-storefront/internal/domain"
	"pizzaria-storefront/internal/remote/cartitems"
	"pizzaria-storefront/internal/remote/favorites"
	"pizzaria-storefront/internal/session"
)

// Controller orchestrates the cart screen: it owns the flat line-item list
// fetched from the remote store, recomputes display groups from it, and runs
// the per-group mutations with their busy-state bookkeeping.
//
// The remote store stays authoritative for additions (Increment re-fetches so
// the server can assign ids); single-item removal is the one place local
// state is trusted and the deleted item is stripped without a re-fetch.
type Controller struct {
	store  cartitems.Store
	favs   favorites.Store
	sess   session.Provider
	logger *log.Logger

	mu      sync.Mutex
	items   []domain.LineItem
	groups  stateMap // keyed by group key
	bulk    stateMap // keyed by pizza id, set during delete-all-of-type
	loading bool
	lastErr error
	closed  bool
}

// New builds a Controller bound to a session provider. A nil logger disables
// logging.
func New(store cartitems.Store, favs favorites.Store, sess session.Provider, logger *log.Logger) *Controller {
	return &Controller{
		store:  store,
		favs:   favs,
		sess:   sess,
		logger: logger,
		groups: make(stateMap),
		bulk:   make(stateMap),
	}
}

// Refresh replaces the line-item list wholesale from the remote store. It is
// called when the cart screen gains focus and again as the manual retry for a
// failed load. Without a logged-in customer the list is cleared and no
// request is issued.
func (c *Controller) Refresh(ctx context.Context) error {
	customerID, ok := c.sess.CustomerID()
	if !ok {
		c.mu.Lock()
		c.items = nil
		c.lastErr = nil
		c.mu.Unlock()
		return nil
	}

	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	items, err := c.store.List(ctx, customerID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if c.closed {
		return nil
	}
	if err != nil {
		c.items = nil
		c.lastErr = err
		return err
	}
	c.items = items
	c.lastErr = nil
	return nil
}

// Increment adds one more unit of a group's pizza/variant. The server is the
// sole source of item ids, so on success the list is re-fetched rather than
// mutated optimistically.
func (c *Controller) Increment(ctx context.Context, group domain.CartGroup) error {
	customerID, ok := c.sess.CustomerID()
	if !ok {
		return domain.ErrUnauthenticated
	}

	if !c.acquireGroup(group) {
		return domain.ErrBusy
	}
	defer c.releaseGroup(group)

	err := c.store.Add(ctx, cartitems.AddInput{
		CustomerID:  customerID,
		PizzaID:     group.PizzaID,
		Variant:     group.Variant,
		UnitPrice:   group.UnitPrice,
		DisplayName: group.DisplayName,
	})
	if err != nil {
		c.logf("add %s: %v", group.Key, err)
		return err
	}
	return c.Refresh(ctx)
}

// Decrement removes exactly one unit of a group. The removal targets the
// first item in the current list matching the group's pizza/variant, which
// keeps repeated calls deterministic. If no matching item remains the local
// state has drifted from the display and no request is issued.
func (c *Controller) Decrement(ctx context.Context, group domain.CartGroup) error {
	if _, ok := c.sess.CustomerID(); !ok {
		return domain.ErrUnauthenticated
	}
	if group.Quantity <= 0 {
		return nil
	}

	if !c.acquireGroup(group) {
		return domain.ErrBusy
	}
	defer c.releaseGroup(group)

	c.mu.Lock()
	itemID, found := representative(c.items, group)
	c.mu.Unlock()
	if !found {
		return domain.ErrOutOfSync
	}

	if err := c.store.DeleteByID(ctx, itemID); err != nil {
		c.logf("delete item %d: %v", itemID, err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.items = removeItem(c.items, itemID)
	return nil
}

// RemoveAllOfType deletes every line item sharing a pizza id, regardless of
// variant. The caller passes the outcome of the user's confirmation dialog;
// without confirmation this is a true no-op.
func (c *Controller) RemoveAllOfType(ctx context.Context, pizzaID int64, confirmed bool) error {
	if !confirmed {
		return nil
	}
	customerID, ok := c.sess.CustomerID()
	if !ok {
		return domain.ErrUnauthenticated
	}

	if !c.acquireBulk(pizzaID) {
		return domain.ErrBusy
	}
	defer c.releaseBulk(pizzaID)

	if err := c.store.DeleteByPizza(ctx, pizzaID, customerID); err != nil {
		c.logf("delete all of pizza %d: %v", pizzaID, err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	kept := c.items[:0:0]
	for _, item := range c.items {
		if item.PizzaID != pizzaID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	return nil
}

// Favorite persists a group as a favorite, independent of cart membership.
// Cart state never changes, success or failure.
func (c *Controller) Favorite(ctx context.Context, group domain.CartGroup) error {
	customerID, ok := c.sess.CustomerID()
	if !ok {
		return domain.ErrUnauthenticated
	}
	if group.PizzaID == 0 || group.DisplayName == "" || group.UnitPrice <= 0 {
		return domain.ErrIncomplete
	}

	err := c.favs.Create(ctx, []favorites.AddInput{{
		CustomerID:  customerID,
		PizzaID:     group.PizzaID,
		DisplayName: group.DisplayName,
		UnitPrice:   group.UnitPrice,
	}})
	if err != nil {
		c.logf("favorite %s: %v", group.Key, err)
	}
	return err
}

// Groups aggregates the current list into display groups.
func (c *Controller) Groups() []domain.CartGroup {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Aggregate(c.items)
}

// Total is the order total for the current list.
func (c *Controller) Total() float64 {
	return Total(c.Groups())
}

// Loading reports whether a Refresh is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the error recorded by the last failed Refresh, nil after a
// successful one.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Busy reports whether a group, or its pizza as a whole, is mid-mutation.
// The UI uses it to disable the row's buttons.
func (c *Controller) Busy(group domain.CartGroup) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.groups.busy(group.Key) || c.bulk.busy(bulkKey(group.PizzaID))
}

// Close marks the screen as torn down. Completions of requests still in
// flight are dropped instead of mutating state that nothing displays anymore.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.items = nil
}

// acquireGroup flips the group to Busy unless the group, or a bulk delete of
// its pizza, is already mid-mutation.
func (c *Controller) acquireGroup(group domain.CartGroup) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.bulk.busy(bulkKey(group.PizzaID)) {
		return false
	}
	return c.groups.acquire(group.Key)
}

func (c *Controller) releaseGroup(group domain.CartGroup) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.groups.release(group.Key)
}

// acquireBulk flips the pizza to Busy unless the pizza, or any of its groups,
// is already mid-mutation.
func (c *Controller) acquireBulk(pizzaID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	prefix := strconv.FormatInt(pizzaID, 10) + ":"
	for key := range c.groups {
		if strings.HasPrefix(key, prefix) && c.groups.busy(key) {
			return false
		}
	}
	return c.bulk.acquire(bulkKey(pizzaID))
}

func (c *Controller) releaseBulk(pizzaID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bulk.release(bulkKey(pizzaID))
}

func (c *Controller) logf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

func bulkKey(pizzaID int64) string {
	return strconv.FormatInt(pizzaID, 10)
}

// representative resolves which physical item a decrement removes: the first
// item in the list matching the group's pizza/variant.
func representative(items []domain.LineItem, group domain.CartGroup) (int64, bool) {
	for _, item := range items {
		if item.PizzaID == group.PizzaID && item.Variant == group.Variant {
			return item.ID, true
		}
	}
	return 0, false
}

func removeItem(items []domain.LineItem, itemID int64) []domain.LineItem {
	for i, item := range items {
		if item.ID == itemID {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}
