package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"pacer/internal/throttle/models"
	"pacer/internal/throttle/observability"
)

// BackoffStore manages per account+quota-class rate-limit incident state.
// Implementations must serialize Record calls for the same key; the dedup
// window depends on the read-modify-write being atomic.
type BackoffStore interface {
	// Record applies one rate-limit signal and returns the incident number
	// and whether the signal was deduplicated into an existing incident.
	Record(ctx context.Context, key string, dedupWindow, resetWindow time.Duration) (attempt int, duplicate bool, err error)

	// Reset removes the incident state for a single key.
	Reset(ctx context.Context, key string) error

	// ResetAccount removes every quota-class entry for one account.
	ResetAccount(ctx context.Context, accountID string) error

	// Clear removes all state (test isolation).
	Clear(ctx context.Context) error
}

// FailureStore manages per-account consecutive failure state.
type FailureStore interface {
	// Record applies one failure and returns the updated record.
	Record(ctx context.Context, accountID string, resetWindow time.Duration) (*models.FailureRecord, error)

	// Clear removes the failure record for an account.
	Clear(ctx context.Context, accountID string) error

	// ClearAll removes all state (test isolation).
	ClearAll(ctx context.Context) error
}

// WarmupStore manages bounded per-session warm-up attempt tracking.
type WarmupStore interface {
	// BeginAttempt reports whether a warm-up attempt may run and records it
	// when it may.
	BeginAttempt(ctx context.Context, sessionID string, maxAttempts int) (bool, error)

	// MarkSucceeded records terminal warm-up success.
	MarkSucceeded(ctx context.Context, sessionID string) error

	// HasSucceeded reports whether the session completed warm-up.
	HasSucceeded(ctx context.Context, sessionID string) (bool, error)

	// ClearAttempt returns a session to the unknown state.
	ClearAttempt(ctx context.Context, sessionID string) error

	// Clear removes all state (test isolation).
	Clear(ctx context.Context) error
}

// AttemptStore manages bounded per-session empty-response retry counters.
type AttemptStore interface {
	// Get returns the attempt count for a session; unknown sessions are 0.
	Get(ctx context.Context, sessionID string) (int, error)

	// Increment adds one attempt and returns the new count.
	Increment(ctx context.Context, sessionID string) (int, error)

	// Reset removes the counter for a session.
	Reset(ctx context.Context, sessionID string) error

	// Clear removes all state (test isolation).
	Clear(ctx context.Context) error
}

// AuditPublisher emits audit events for rotation-relevant decisions.
type AuditPublisher interface {
	Emit(ctx context.Context, event observability.Event) error
}
