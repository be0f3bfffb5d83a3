package failure

import (
	"context"
	"sync"
	"time"

	"pacer/internal/throttle/models"
	"pacer/pkg/requestcontext"
)

// InMemoryFailureStore tracks consecutive non-rate-limit failures per
// account. Read-modify-write for one account runs under a single lock.
type InMemoryFailureStore struct {
	mu      sync.Mutex
	records map[string]*models.FailureRecord // keyed by account id
}

// New creates a new in-memory failure store.
func New() *InMemoryFailureStore {
	return &InMemoryFailureStore{
		records: make(map[string]*models.FailureRecord),
	}
}

// Record applies one failure to an account and returns a copy of the updated
// record. The counter increments while the previous failure is inside the
// reset window, otherwise it restarts at 1. Failure causes are not
// distinguished: flaky network errors and genuine account faults accumulate
// identically.
func (s *InMemoryFailureStore) Record(ctx context.Context, accountID string, resetWindow time.Duration) (*models.FailureRecord, error) {
	now := requestcontext.Now(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[accountID]
	if ok && !record.ExpiredBy(now, resetWindow) {
		record.ConsecutiveFailures++
		record.LastFailureAt = now
	} else {
		record = &models.FailureRecord{
			AccountID:           accountID,
			ConsecutiveFailures: 1,
			LastFailureAt:       now,
		}
		s.records[accountID] = record
	}

	out := *record
	return &out, nil
}

// Get returns a copy of the record for an account, or nil if none exists.
// Expired records are returned as-is; expiry is applied by Record.
func (s *InMemoryFailureStore) Get(_ context.Context, accountID string) (*models.FailureRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[accountID]
	if !ok {
		return nil, nil
	}
	out := *record
	return &out, nil
}

// Clear removes the failure record for an account, called on success.
func (s *InMemoryFailureStore) Clear(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, accountID)
	return nil
}

// DeleteExpired drops records whose reset window has fully elapsed and
// returns how many were removed.
func (s *InMemoryFailureStore) DeleteExpired(ctx context.Context, resetWindow time.Duration) (int, error) {
	now := requestcontext.Now(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for accountID, record := range s.records {
		if record.ExpiredBy(now, resetWindow) {
			delete(s.records, accountID)
			deleted++
		}
	}
	return deleted, nil
}

// Len returns the number of tracked accounts, expired records included.
func (s *InMemoryFailureStore) Len(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records), nil
}

// ClearAll removes all state. Intended for test isolation only.
func (s *InMemoryFailureStore) ClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]*models.FailureRecord)
	return nil
}
