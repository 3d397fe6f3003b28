package state

import "sync"

// Dispatcher is what operations need from the store: apply an action and
// read the current state.
type Dispatcher interface {
	Dispatch(Action)
	State() State
}

// Ensure Store implements Dispatcher at compile time.
var _ Dispatcher = (*Store)(nil)

// Listener observes each dispatched action together with the state it
// produced.
type Listener func(Action, State)

// Store owns the client state. All mutation goes through Dispatch.
type Store struct {
	// dispatchMu serializes whole dispatches, listeners included.
	dispatchMu sync.Mutex

	mu        sync.RWMutex
	state     State
	listeners map[int]Listener
	nextID    int
}

// NewStore returns a store holding initial.
func NewStore(initial State) *Store {
	return &Store{state: initial.Clone()}
}

// Dispatch reduces a into the state and notifies listeners. Listeners run on
// the dispatching goroutine and must not dispatch themselves.
func (s *Store) Dispatch(a Action) {
	if a == nil {
		return
	}
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	listeners := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(a, next.Clone())
	}
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listeners == nil {
		s.listeners = make(map[int]Listener)
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
