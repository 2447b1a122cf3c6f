package dropkit

import "sync"

// StateContainer is the observable state slot the intake core writes
// to and a UI layer reads from. The core only requires "get current
// value, set new value" semantics; hosts with their own reactive store
// satisfy this interface with a thin wrapper.
type StateContainer interface {
	// Get returns the current state snapshot.
	Get() IntakeState

	// Set publishes a new state snapshot.
	Set(state IntakeState)
}

// MemoryStore is the default in-memory StateContainer. It supports
// subscription callbacks for hosts without a reactive store of their
// own: every Set notifies all subscribers with the new snapshot.
type MemoryStore struct {
	mu          sync.RWMutex
	state       IntakeState
	subscribers []func(IntakeState)
}

// NewMemoryStore creates an empty in-memory state container.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns the current state snapshot.
func (s *MemoryStore) Get() IntakeState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Set publishes a new state snapshot and notifies subscribers in
// registration order.
func (s *MemoryStore) Set(state IntakeState) {
	s.mu.Lock()
	s.state = state
	subscribers := make([]func(IntakeState), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, notify := range subscribers {
		if notify != nil {
			notify(state)
		}
	}
}

// Subscribe registers a callback invoked on every Set with the new
// snapshot. The returned function unregisters the callback.
func (s *MemoryStore) Subscribe(callback func(IntakeState)) (unsubscribe func()) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, callback)
	index := len(s.subscribers) - 1
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.subscribers) {
			// Set to nil instead of removing to avoid index shifting
			s.subscribers[index] = nil
		}
	}
}

// Dispatcher binds the pure reducer to a state container. Dispatch is
// synchronous and unqueued: each call reads the current state,
// reduces, and publishes, so dispatches apply strictly in call order.
type Dispatcher struct {
	store StateContainer
}

// NewDispatcher creates a dispatcher over the given container.
func NewDispatcher(store StateContainer) *Dispatcher {
	return &Dispatcher{store: store}
}

// Dispatch applies an action and returns the published state.
func (d *Dispatcher) Dispatch(action Action) IntakeState {
	next := Reduce(d.store.Get(), action)
	d.store.Set(next)
	return next
}

// State returns the container's current snapshot.
func (d *Dispatcher) State() IntakeState {
	return d.store.Get()
}
