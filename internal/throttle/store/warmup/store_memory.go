package warmup

import (
	"context"
	"sync"
)

// InMemoryWarmupStore tracks per-session warm-up progress with bounded
// memory. Two independent structures, each capacity-bounded with
// insertion-ordered eviction (oldest inserted goes first; recency of use does
// not affect eviction order):
//
//   - attempts: session id -> attempt count, capped by the per-call maximum
//   - succeeded: sessions whose warm-up completed; membership is terminal
//     until the entry is evicted for capacity
//
// Evicting an attempted session never touches the succeeded set: one
// session's success record must not depend on eviction pressure created by
// unrelated sessions.
type InMemoryWarmupStore struct {
	mu       sync.Mutex
	capacity int

	attempts     map[string]int
	attemptOrder []string

	succeeded      map[string]struct{}
	succeededOrder []string
}

// New creates a warm-up store bounding each structure at capacity entries.
func New(capacity int) *InMemoryWarmupStore {
	if capacity < 1 {
		capacity = 1
	}
	return &InMemoryWarmupStore{
		capacity:  capacity,
		attempts:  make(map[string]int),
		succeeded: make(map[string]struct{}),
	}
}

// BeginAttempt reports whether the session may run (another) warm-up attempt,
// and records the attempt when it may. It returns false once the session has
// succeeded or has exhausted maxAttempts.
func (s *InMemoryWarmupStore) BeginAttempt(_ context.Context, sessionID string, maxAttempts int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, done := s.succeeded[sessionID]; done {
		return false, nil
	}

	count, tracked := s.attempts[sessionID]
	if count >= maxAttempts {
		return false, nil
	}

	if !tracked {
		if len(s.attempts) >= s.capacity {
			oldest := s.attemptOrder[0]
			s.attemptOrder = s.attemptOrder[1:]
			delete(s.attempts, oldest)
		}
		s.attemptOrder = append(s.attemptOrder, sessionID)
	}
	s.attempts[sessionID] = count + 1
	return true, nil
}

// AttemptCount returns the recorded attempt count for a session.
func (s *InMemoryWarmupStore) AttemptCount(_ context.Context, sessionID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts[sessionID], nil
}

// MarkSucceeded records terminal warm-up success for a session.
func (s *InMemoryWarmupStore) MarkSucceeded(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, done := s.succeeded[sessionID]; done {
		return nil
	}
	if len(s.succeeded) >= s.capacity {
		oldest := s.succeededOrder[0]
		s.succeededOrder = s.succeededOrder[1:]
		delete(s.succeeded, oldest)
	}
	s.succeeded[sessionID] = struct{}{}
	s.succeededOrder = append(s.succeededOrder, sessionID)
	return nil
}

// HasSucceeded reports whether the session completed warm-up.
func (s *InMemoryWarmupStore) HasSucceeded(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, done := s.succeeded[sessionID]
	return done, nil
}

// ClearAttempt returns a session to the unknown state, permitting a fresh
// warm-up. Used when the session's underlying context has been invalidated.
func (s *InMemoryWarmupStore) ClearAttempt(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, tracked := s.attempts[sessionID]; tracked {
		delete(s.attempts, sessionID)
		s.attemptOrder = removeID(s.attemptOrder, sessionID)
	}
	if _, done := s.succeeded[sessionID]; done {
		delete(s.succeeded, sessionID)
		s.succeededOrder = removeID(s.succeededOrder, sessionID)
	}
	return nil
}

// Len returns the tracked session counts for the attempted and succeeded
// structures.
func (s *InMemoryWarmupStore) Len(_ context.Context) (attempted, succeeded int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attempts), len(s.succeeded), nil
}

// Clear removes all state. Intended for test isolation only.
func (s *InMemoryWarmupStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = make(map[string]int)
	s.attemptOrder = nil
	s.succeeded = make(map[string]struct{})
	s.succeededOrder = nil
	return nil
}

func removeID(order []string, sessionID string) []string {
	for i, id := range order {
		if id == sessionID {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
