package backoff

import (
	"context"
	"strings"
	"sync"
	"time"

	"pacer/internal/throttle/models"
	"pacer/pkg/requestcontext"
)

// InMemoryBackoffStore tracks rate-limit incidents per account+quota key.
// The whole read-modify-write for a key runs under one lock: two concurrent
// signals for the same key must serialize, or both would see "no recent
// signal" and the dedup window would be defeated.
type InMemoryBackoffStore struct {
	mu     sync.Mutex
	states map[string]*models.BackoffState // key.String() -> incident state
}

// New creates a new in-memory backoff store.
func New() *InMemoryBackoffStore {
	return &InMemoryBackoffStore{
		states: make(map[string]*models.BackoffState),
	}
}

// Record applies one rate-limit signal to a key and returns the incident
// number the caller should back off with, and whether the signal was a
// duplicate of an already-recorded incident.
//
// Inside the dedup window the existing count is returned unchanged and the
// signal timestamp is NOT advanced, so a sustained trickle of duplicates
// cannot keep an incident alive forever. Inside the reset window the count
// increments; after it, the incident history restarts at 1.
func (s *InMemoryBackoffStore) Record(ctx context.Context, key string, dedupWindow, resetWindow time.Duration) (attempt int, duplicate bool, err error) {
	now := requestcontext.Now(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.states[key]; ok {
		age := now.Sub(state.LastSignalAt)
		if age < dedupWindow {
			return state.ConsecutiveSignals, true, nil
		}
		if age < resetWindow {
			state.ConsecutiveSignals++
			state.LastSignalAt = now
			return state.ConsecutiveSignals, false, nil
		}
	}

	s.states[key] = &models.BackoffState{
		ConsecutiveSignals: 1,
		LastSignalAt:       now,
	}
	return 1, false, nil
}

// Reset removes the incident state for a single key.
func (s *InMemoryBackoffStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, key)
	return nil
}

// ResetAccount removes every quota-class entry for one account.
func (s *InMemoryBackoffStore) ResetAccount(_ context.Context, accountID string) error {
	prefix := models.AccountKeyPrefix(accountID)

	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.states {
		if strings.HasPrefix(key, prefix) {
			delete(s.states, key)
		}
	}
	return nil
}

// DeleteExpired drops entries whose reset window has fully elapsed and
// returns how many were removed. Used by the cleanup worker; expired entries
// are already logically absent, this just reclaims the memory.
func (s *InMemoryBackoffStore) DeleteExpired(ctx context.Context, resetWindow time.Duration) (int, error) {
	now := requestcontext.Now(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for key, state := range s.states {
		if state.ExpiredBy(now, resetWindow) {
			delete(s.states, key)
			deleted++
		}
	}
	return deleted, nil
}

// Len returns the number of tracked keys, expired entries included.
func (s *InMemoryBackoffStore) Len(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states), nil
}

// Clear removes all state. Intended for test isolation only.
func (s *InMemoryBackoffStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = make(map[string]*models.BackoffState)
	return nil
}
