package pure

import "sync"

// Scope owns the tables created with WithScope and releases them on Close.
// Tables backed by ristretto run background goroutines, so the ristretto
// backend refuses to build without a scope.
type Scope struct {
	mu      sync.Mutex
	closers []func()
	closed  bool
}

func NewScope() *Scope {
	return &Scope{}
}

func (s *Scope) add(closer func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		closer()
		panic("pure: table created in a closed scope")
	}
	s.closers = append(s.closers, closer)
}

// Close releases every table of the scope. Calling it again is a no-op.
func (s *Scope) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
