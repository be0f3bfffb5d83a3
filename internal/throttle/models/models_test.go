package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuotaClass_IsKnown(t *testing.T) {
	assert.True(t, QuotaClassClaude.IsKnown())
	assert.True(t, QuotaClassGeminiAntigravity.IsKnown())
	assert.True(t, QuotaClassGeminiCLI.IsKnown())
	assert.False(t, QuotaClass("gpt-4").IsKnown())
	assert.False(t, QuotaClass("").IsKnown())
}

func TestBackoffState_ExpiredBy(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	window := 120 * time.Second
	state := &BackoffState{ConsecutiveSignals: 3, LastSignalAt: now}

	assert.False(t, state.ExpiredBy(now.Add(window-time.Millisecond), window))
	assert.True(t, state.ExpiredBy(now.Add(window), window), "expiry boundary is inclusive")
	assert.True(t, state.ExpiredBy(now.Add(time.Hour), window))
}

func TestBackoffDelay(t *testing.T) {
	const maxDelay = 60 * time.Second

	t.Run("first incident equals base delay", func(t *testing.T) {
		assert.Equal(t, time.Second, BackoffDelay(time.Second, 1, maxDelay))
	})

	t.Run("doubles per incident", func(t *testing.T) {
		assert.Equal(t, 2*time.Second, BackoffDelay(time.Second, 2, maxDelay))
		assert.Equal(t, 4*time.Second, BackoffDelay(time.Second, 3, maxDelay))
		assert.Equal(t, 8*time.Second, BackoffDelay(time.Second, 4, maxDelay))
	})

	t.Run("server-suggested base scales the same curve", func(t *testing.T) {
		assert.Equal(t, 5*time.Second, BackoffDelay(5*time.Second, 1, maxDelay))
		assert.Equal(t, 10*time.Second, BackoffDelay(5*time.Second, 2, maxDelay))
		assert.Equal(t, 20*time.Second, BackoffDelay(5*time.Second, 3, maxDelay))
	})

	t.Run("capped at max delay", func(t *testing.T) {
		assert.Equal(t, maxDelay, BackoffDelay(time.Second, 7, maxDelay))
		assert.Equal(t, maxDelay, BackoffDelay(time.Second, 100, maxDelay))
	})

	t.Run("monotone non-decreasing in attempt", func(t *testing.T) {
		prev := time.Duration(0)
		for attempt := 1; attempt <= 64; attempt++ {
			d := BackoffDelay(time.Second, attempt, maxDelay)
			assert.GreaterOrEqual(t, d, prev, "attempt %d", attempt)
			assert.LessOrEqual(t, d, maxDelay, "attempt %d", attempt)
			prev = d
		}
	})

	t.Run("base above cap wins", func(t *testing.T) {
		assert.Equal(t, 90*time.Second, BackoffDelay(90*time.Second, 1, maxDelay))
		assert.Equal(t, 90*time.Second, BackoffDelay(90*time.Second, 3, maxDelay))
	})
}

func TestBackoffKey(t *testing.T) {
	t.Run("formats account and class", func(t *testing.T) {
		key := NewBackoffKey("acct1", QuotaClassClaude)
		assert.Equal(t, "rl:acct1:claude", key.String())
	})

	t.Run("account prefix matches own keys only", func(t *testing.T) {
		key := NewBackoffKey("acct1", QuotaClassGeminiCLI)
		assert.True(t, len(key.String()) > len(AccountKeyPrefix("acct1")))
		assert.Contains(t, key.String(), AccountKeyPrefix("acct1"))
		assert.NotContains(t, key.String(), AccountKeyPrefix("acct12"))
	})

	t.Run("delimiter in account id cannot forge another key", func(t *testing.T) {
		forged := NewBackoffKey("acct1:claude", QuotaClass("x"))
		honest := NewBackoffKey("acct1", QuotaClass("claude:x"))
		assert.NotEqual(t, honest.String(), forged.String())
	})

	t.Run("escape character round trip is collision free", func(t *testing.T) {
		a := NewBackoffKey("user_:a", QuotaClassClaude)
		b := NewBackoffKey("user:_a", QuotaClassClaude)
		assert.NotEqual(t, a.String(), b.String())
	})
}
