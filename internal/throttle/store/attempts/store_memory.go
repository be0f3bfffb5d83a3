// Package attempts tracks empty-response retry counts per session. This is a
// narrower retry class than warm-up: the upstream answered, but with an
// empty or degenerate body, and the session loop grants a few extra tries.
package attempts

import (
	"context"
	"sync"
)

// InMemoryAttemptStore is a capacity-bounded counter map with
// insertion-ordered eviction, the same bounding pattern as the warm-up
// store. Callers are still expected to Reset on session teardown; the bound
// is the backstop for teardown paths that never run.
type InMemoryAttemptStore struct {
	mu       sync.Mutex
	capacity int
	counts   map[string]int
	order    []string
}

// New creates an attempt store bounded at capacity sessions.
func New(capacity int) *InMemoryAttemptStore {
	if capacity < 1 {
		capacity = 1
	}
	return &InMemoryAttemptStore{
		capacity: capacity,
		counts:   make(map[string]int),
	}
}

// Get returns the attempt count for a session; unknown sessions are 0.
func (s *InMemoryAttemptStore) Get(_ context.Context, sessionID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[sessionID], nil
}

// Increment adds one attempt for a session and returns the new count.
// Inserting a new session at capacity evicts the oldest-inserted one.
func (s *InMemoryAttemptStore) Increment(_ context.Context, sessionID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, tracked := s.counts[sessionID]
	if !tracked {
		if len(s.counts) >= s.capacity {
			oldest := s.order[0]
			s.order = s.order[1:]
			delete(s.counts, oldest)
		}
		s.order = append(s.order, sessionID)
	}
	count++
	s.counts[sessionID] = count
	return count, nil
}

// Reset removes the counter for a session, called on session completion.
func (s *InMemoryAttemptStore) Reset(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, tracked := s.counts[sessionID]; !tracked {
		return nil
	}
	delete(s.counts, sessionID)
	for i, id := range s.order {
		if id == sessionID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of tracked sessions.
func (s *InMemoryAttemptStore) Len(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.counts), nil
}

// Clear removes all state. Intended for test isolation only.
func (s *InMemoryAttemptStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts = make(map[string]int)
	s.order = nil
	return nil
}
