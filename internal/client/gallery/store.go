package gallery

import "sync"

// Store holds State and serializes transitions.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers []func(State)
}

// NewStore returns a store in the loading state, as at application start.
func NewStore() *Store {
	return &Store{state: State{Status: StatusLoading}}
}

// Apply runs t against the state and then notifies subscribers with a copy.
func (s *Store) Apply(t Transition) {
	s.mu.Lock()
	t(&s.state)
	snap := s.state.clone()
	subs := s.subscribers
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Snapshot returns a copy safe to read without holding the lock.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// BeginUpload sets UploadInFlight and reports true, or reports false when an
// upload is already outstanding.
func (s *Store) BeginUpload() bool {
	s.mu.Lock()
	if s.state.UploadInFlight {
		s.mu.Unlock()
		return false
	}
	s.state.UploadInFlight = true
	snap := s.state.clone()
	subs := s.subscribers
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return true
}

// Subscribe registers fn to be called after every change. Callbacks run on
// the goroutine that applied the change, outside the lock.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
