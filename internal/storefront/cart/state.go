package cart

// mutationState is the per-key lifecycle of a cart mutation. A key leaves
// stateBusy only through the completion of the request that set it; there is
// no timeout recovery.
type mutationState int

const (
	stateIdle mutationState = iota
	stateBusy
)

// stateMap tracks mutation state per string key. Callers must hold the
// controller mutex; the map itself does no locking.
type stateMap map[string]mutationState

// acquire flips a key from Idle to Busy and reports whether the transition
// happened. A key already Busy stays Busy and acquire reports false: the
// caller must reject the operation, never queue it.
func (s stateMap) acquire(key string) bool {
	if s[key] == stateBusy {
		return false
	}
	s[key] = stateBusy
	return true
}

// release returns a key to Idle.
func (s stateMap) release(key string) {
	delete(s, key)
}

// busy reports whether a key is mid-mutation.
func (s stateMap) busy(key string) bool {
	return s[key] == stateBusy
}
