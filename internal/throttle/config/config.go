// Package config holds the throttle coordinator configuration.
// Every window and threshold the trackers consult is a named field here so
// deployments can tune them without code changes.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds throttle coordination parameters.
type Config struct {
	// DedupWindow collapses bursts of rate-limit signals for one
	// account+quota key into a single incident. Concurrent in-flight
	// requests all observe the same upstream rejection within this span.
	DedupWindow time.Duration

	// BackoffResetWindow is the inactivity span after which an incident
	// counter is forgotten and restarts from 1.
	BackoffResetWindow time.Duration

	// MaxBackoff caps the computed exponential delay.
	MaxBackoff time.Duration

	// DefaultBaseDelay is used when the upstream supplies no retry hint.
	DefaultBaseDelay time.Duration

	// CooldownThreshold is the consecutive failure count that takes an
	// account out of rotation.
	CooldownThreshold int

	// CooldownDuration is how long the caller should exclude the account.
	CooldownDuration time.Duration

	// FailureResetWindow is the inactivity span after which the consecutive
	// failure counter restarts.
	FailureResetWindow time.Duration

	// MaxTrackedSessions bounds the warm-up attempted set, the warm-up
	// succeeded set, and the empty-response counter map, each independently.
	// Insertion when full evicts the oldest-inserted member.
	MaxTrackedSessions int

	// MaxWarmupAttempts caps warm-up attempts per session before the
	// session is considered exhausted.
	MaxWarmupAttempts int

	// CleanupInterval drives the background sweep of expired backoff and
	// failure entries.
	CleanupInterval time.Duration
}

// DefaultConfig returns the coordination defaults.
func DefaultConfig() *Config {
	return &Config{
		DedupWindow:        2 * time.Second,
		BackoffResetWindow: 120 * time.Second,
		MaxBackoff:         60 * time.Second,
		DefaultBaseDelay:   time.Second,
		CooldownThreshold:  5,
		CooldownDuration:   30 * time.Second,
		FailureResetWindow: 120 * time.Second,
		MaxTrackedSessions: 1000,
		MaxWarmupAttempts:  2,
		CleanupInterval:    time.Minute,
	}
}

// FromEnv builds a Config from environment variables, starting from defaults,
// so main stays lean. Unset or malformed variables keep their defaults.
func FromEnv() *Config {
	cfg := DefaultConfig()

	durationFromEnv("PACER_DEDUP_WINDOW", &cfg.DedupWindow)
	durationFromEnv("PACER_BACKOFF_RESET_WINDOW", &cfg.BackoffResetWindow)
	durationFromEnv("PACER_MAX_BACKOFF", &cfg.MaxBackoff)
	durationFromEnv("PACER_DEFAULT_BASE_DELAY", &cfg.DefaultBaseDelay)
	durationFromEnv("PACER_COOLDOWN_DURATION", &cfg.CooldownDuration)
	durationFromEnv("PACER_FAILURE_RESET_WINDOW", &cfg.FailureResetWindow)
	durationFromEnv("PACER_CLEANUP_INTERVAL", &cfg.CleanupInterval)
	intFromEnv("PACER_COOLDOWN_THRESHOLD", &cfg.CooldownThreshold)
	intFromEnv("PACER_MAX_TRACKED_SESSIONS", &cfg.MaxTrackedSessions)
	intFromEnv("PACER_MAX_WARMUP_ATTEMPTS", &cfg.MaxWarmupAttempts)

	return cfg
}

// Validate checks that windows and thresholds are internally consistent.
func (c *Config) Validate() error {
	if c.DedupWindow <= 0 {
		return fmt.Errorf("dedup window must be positive, got %v", c.DedupWindow)
	}
	if c.BackoffResetWindow <= c.DedupWindow {
		return fmt.Errorf("backoff reset window (%v) must exceed dedup window (%v)",
			c.BackoffResetWindow, c.DedupWindow)
	}
	if c.MaxBackoff <= 0 {
		return fmt.Errorf("max backoff must be positive, got %v", c.MaxBackoff)
	}
	if c.DefaultBaseDelay <= 0 {
		return fmt.Errorf("default base delay must be positive, got %v", c.DefaultBaseDelay)
	}
	if c.CooldownThreshold < 1 {
		return fmt.Errorf("cooldown threshold must be at least 1, got %d", c.CooldownThreshold)
	}
	if c.CooldownDuration <= 0 {
		return fmt.Errorf("cooldown duration must be positive, got %v", c.CooldownDuration)
	}
	if c.FailureResetWindow <= 0 {
		return fmt.Errorf("failure reset window must be positive, got %v", c.FailureResetWindow)
	}
	if c.MaxTrackedSessions < 1 {
		return fmt.Errorf("max tracked sessions must be at least 1, got %d", c.MaxTrackedSessions)
	}
	if c.MaxWarmupAttempts < 1 {
		return fmt.Errorf("max warm-up attempts must be at least 1, got %d", c.MaxWarmupAttempts)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive, got %v", c.CleanupInterval)
	}
	return nil
}

func durationFromEnv(name string, dst *time.Duration) {
	raw := os.Getenv(name)
	if raw == "" {
		return
	}
	if d, err := time.ParseDuration(raw); err == nil {
		*dst = d
	}
}

func intFromEnv(name string, dst *int) {
	raw := os.Getenv(name)
	if raw == "" {
		return
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*dst = n
	}
}
