package event

// Store collects disposers from scoped registrations (event handlers, input
// hooks, scheduled work) so engine teardown releases everything exactly once
type Store struct {
	disposers []func()
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Add records a disposer for later bulk release. Nil disposers are ignored
func (s *Store) Add(dispose func()) {
	if dispose == nil {
		return
	}
	s.disposers = append(s.disposers, dispose)
}

// Clear invokes every recorded disposer once and empties the store. Safe to
// call repeatedly; a second call with no new registrations is a no-op
func (s *Store) Clear() {
	disposers := s.disposers
	s.disposers = nil
	for _, dispose := range disposers {
		dispose()
	}
}
