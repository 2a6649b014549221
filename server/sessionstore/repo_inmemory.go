package sessionstore

import (
	"sync"
	"time"
)

type entry struct {
	rec       TokenRecord
	expiresAt time.Time // zero means no server-side deadline
}

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface. Expiry is enforced lazily: a record whose deadline has passed is
// treated as absent and dropped on the next lookup.
type InMemoryRepo struct {
	mu       sync.Mutex
	sessions map[string]entry
	now      func() time.Time
}

// NewInMemoryRepo creates a new in-memory session repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

// Contains reports whether id denotes a live session.
func (r *InMemoryRepo) Contains(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.live(id)
	return ok
}

// Get retrieves the token record for a live session.
func (r *InMemoryRepo) Get(id string) (TokenRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.live(id)
	return e.rec, ok
}

// InsertUnique inserts rec under a freshly generated, collision-free
// identifier and returns it. The generator runs inside the critical section;
// it must not block.
func (r *InMemoryRepo) InsertUnique(generate func() string, rec TokenRecord) string {
	var deadline time.Time

	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ExpiresIn > 0 {
		deadline = r.now().Add(time.Duration(rec.ExpiresIn) * time.Second)
	}
	for {
		id := generate()
		if _, exists := r.sessions[id]; exists {
			continue
		}
		r.sessions[id] = entry{rec: rec, expiresAt: deadline}
		return id
	}
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (r *InMemoryRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

// Len returns the number of live sessions.
func (r *InMemoryRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for id := range r.sessions {
		if _, ok := r.live(id); ok {
			count++
		}
	}
	return count
}

// live returns the entry for id unless it has expired, dropping expired
// entries as a side effect. The caller must hold the lock.
func (r *InMemoryRepo) live(id string) (entry, bool) {
	e, ok := r.sessions[id]
	if !ok {
		return entry{}, false
	}
	if !e.expiresAt.IsZero() && r.now().After(e.expiresAt) {
		delete(r.sessions, id)
		return entry{}, false
	}
	return e, true
}
