package session

import "sync"

// Provider supplies the logged-in customer id. Controllers receive one at
// construction so the unauthenticated precondition is an ordinary check, not
// an ambient lookup.
type Provider interface {
	CustomerID() (int64, bool)
}

// Memory is an in-process session holder fed by the account controller on
// login and cleared on logout.
type Memory struct {
	mu       sync.RWMutex
	customer int64
}

// NewMemory returns an empty (logged-out) session.
func NewMemory() *Memory {
	return &Memory{}
}

// CustomerID reports the current customer id and whether a login is active.
func (m *Memory) CustomerID() (int64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.customer, m.customer != 0
}

// Set records a successful login.
func (m *Memory) Set(customerID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customer = customerID
}

// Clear drops the session.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customer = 0
}

// Static is a fixed-id Provider, handy for tests and batch tooling.
type Static int64

func (s Static) CustomerID() (int64, bool) {
	return int64(s), s != 0
}
