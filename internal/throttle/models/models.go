package models

import (
	"time"
)

// QuotaClass identifies an independently rate-limited quota pool on the
// upstream. One account may carry several quota classes, each with separate
// backoff state. The class is derived by the caller from model family and
// request header style.
type QuotaClass string

const (
	// QuotaClassClaude: requests issued for the claude model family.
	QuotaClassClaude QuotaClass = "claude"
	// QuotaClassGeminiAntigravity: gemini family, antigravity header style.
	QuotaClassGeminiAntigravity QuotaClass = "gemini-antigravity"
	// QuotaClassGeminiCLI: gemini family, CLI header style.
	QuotaClassGeminiCLI QuotaClass = "gemini-cli"
)

// IsKnown reports whether the class is one of the classes the surrounding
// client currently derives. Unknown classes are still tracked; the tag is
// opaque to the trackers themselves.
func (c QuotaClass) IsKnown() bool {
	switch c {
	case QuotaClassClaude, QuotaClassGeminiAntigravity, QuotaClassGeminiCLI:
		return true
	}
	return false
}

func (c QuotaClass) String() string {
	return string(c)
}

// BackoffState is the per account+quota-class rate limit incident record.
// ConsecutiveSignals counts distinct throttling incidents inside the reset
// window; bursts of concurrent signals inside the dedup window count once.
type BackoffState struct {
	ConsecutiveSignals int
	LastSignalAt       time.Time
}

// ExpiredBy reports whether the state is logically absent at now, i.e. the
// reset window has fully elapsed since the last recorded signal.
func (s *BackoffState) ExpiredBy(now time.Time, resetWindow time.Duration) bool {
	return now.Sub(s.LastSignalAt) >= resetWindow
}

// FailureRecord is the per-account consecutive non-rate-limit failure record.
type FailureRecord struct {
	AccountID           string
	ConsecutiveFailures int
	LastFailureAt       time.Time
}

// ExpiredBy reports whether the record is logically absent at now.
func (r *FailureRecord) ExpiredBy(now time.Time, resetWindow time.Duration) bool {
	return now.Sub(r.LastFailureAt) >= resetWindow
}

// BackoffDecision is the advisory outcome of recording a rate-limit signal.
// The caller is responsible for sleeping Delay before retrying or rotating.
type BackoffDecision struct {
	// Attempt is the incident number the delay was computed from (>= 1).
	Attempt int
	// Delay is how long the caller should wait before the next attempt.
	Delay time.Duration
	// Duplicate marks signals collapsed into an already-recorded incident:
	// concurrent in-flight requests observing the same upstream rejection.
	Duplicate bool
}

// FailureDecision is the advisory outcome of recording a non-rate-limit
// failure.
type FailureDecision struct {
	// Failures is the consecutive failure count inside the reset window.
	Failures int
	// ShouldCooldown tells the caller to exclude the account from rotation.
	ShouldCooldown bool
	// Cooldown is how long the exclusion should last. Zero unless
	// ShouldCooldown is set.
	Cooldown time.Duration
}

// BackoffDelay computes the exponential backoff delay for an incident.
// The exponent is attempt-1, so the first incident's delay equals the base
// delay. The doubled delay is capped at maxDelay; a server-suggested base
// larger than the cap still wins, matching max(base, min(base*2^(n-1), cap)).
func BackoffDelay(base time.Duration, attempt int, maxDelay time.Duration) time.Duration {
	if base <= 0 || attempt < 1 {
		return base
	}
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= maxDelay {
			delay = maxDelay
			break
		}
	}
	if delay > maxDelay {
		delay = maxDelay
	}
	if delay < base {
		delay = base
	}
	return delay
}
