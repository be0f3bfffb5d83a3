package models

import (
	"fmt"
	"strings"
)

const keyPrefixRateLimit = "rl"

// BackoffKey is a value object encapsulating backoff state key construction.
// It centralizes key format and sanitization so account identifiers and quota
// classes supplied by callers cannot collide across adjacent keys.
type BackoffKey struct {
	accountID string
	class     QuotaClass
}

// NewBackoffKey creates a key for one account+quota-class backoff state.
func NewBackoffKey(accountID string, class QuotaClass) BackoffKey {
	return BackoffKey{
		accountID: sanitizeKeySegment(accountID),
		class:     QuotaClass(sanitizeKeySegment(string(class))),
	}
}

// String returns the formatted key for storage lookup.
func (k BackoffKey) String() string {
	return fmt.Sprintf("%s:%s:%s", keyPrefixRateLimit, k.accountID, k.class)
}

// AccountKeyPrefix returns the prefix shared by every quota-class key of one
// account. Sanitization guarantees the trailing ':' cannot appear inside the
// account segment, so prefix matching never crosses account boundaries.
func AccountKeyPrefix(accountID string) string {
	return fmt.Sprintf("%s:%s:", keyPrefixRateLimit, sanitizeKeySegment(accountID))
}

// sanitizeKeySegment escapes delimiter characters in key segments to prevent
// collisions where caller-controlled identifiers containing ':' could
// manipulate adjacent backoff state.
//
// Escape rules (order matters):
//  1. Escape '_' to '__' (escape the escape character first)
//  2. Escape ':' to '_c' (escape the delimiter)
//
// No two distinct inputs produce the same sanitized output.
func sanitizeKeySegment(s string) string {
	s = strings.ReplaceAll(s, "_", "__")
	s = strings.ReplaceAll(s, ":", "_c")
	return s
}
