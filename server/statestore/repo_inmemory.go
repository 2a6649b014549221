package statestore

import (
	"sync"
	"time"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo interface
type InMemoryRepo struct {
	mu     sync.Mutex
	ttl    time.Duration
	states map[string]time.Time // token -> registration time
	now    func() time.Time
}

// NewInMemoryRepo creates a new in-memory state token registry. A ttl of zero
// disables expiry: tokens then stay outstanding until consumed or the process
// restarts.
func NewInMemoryRepo(ttl time.Duration) *InMemoryRepo {
	return &InMemoryRepo{
		ttl:    ttl,
		states: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Register inserts a state token. A duplicate insert keeps the original
// registration time.
func (r *InMemoryRepo) Register(token string) {
	if token == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.states[token]; !ok {
		r.states[token] = r.now()
	}
}

// Consume removes the token and reports whether it was present and still
// within its TTL. The check and removal happen in one critical section.
func (r *InMemoryRepo) Consume(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	registeredAt, ok := r.states[token]
	if !ok {
		return false
	}
	delete(r.states, token)

	if r.ttl > 0 && r.now().Sub(registeredAt) > r.ttl {
		return false
	}
	return true
}

// Snapshot returns a copy of the currently outstanding tokens.
func (r *InMemoryRepo) Snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	tokens := make([]string, 0, len(r.states))
	for token := range r.states {
		tokens = append(tokens, token)
	}
	return tokens
}

// Len returns the number of outstanding tokens.
func (r *InMemoryRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.states)
}

// Sweep removes tokens that have outlived the TTL.
func (r *InMemoryRepo) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for token, registeredAt := range r.states {
		if registeredAt.Before(cutoff) {
			delete(r.states, token)
			removed++
		}
	}
	return removed
}
