// Package service implements the throttle coordinator: it turns the outcome
// events reported by the request-issuing layer (rate-limited, failed,
// succeeded) into advisory retry and rotation decisions. The coordinator
// performs no I/O and never retries anything itself; callers sleep on the
// returned delays and honor the returned flags.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pacer/internal/throttle/config"
	"pacer/internal/throttle/metrics"
	"pacer/internal/throttle/models"
	"pacer/internal/throttle/observability"
	"pacer/internal/throttle/observability/tracer"
	dErrors "pacer/pkg/domain-errors"
)

const (
	warmupRefusalSucceeded = "succeeded"
	warmupRefusalExhausted = "exhausted"
)

// Service coordinates backoff, cooldown, warm-up, and empty-response retry
// decisions across the account pool.
type Service struct {
	backoff  BackoffStore
	failures FailureStore
	warmups  WarmupStore
	attempts AttemptStore

	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
	tracer         tracer.Tracer
	config         *config.Config
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

func New(
	backoff BackoffStore,
	failures FailureStore,
	warmups WarmupStore,
	attempts AttemptStore,
	opts ...Option,
) (*Service, error) {
	if backoff == nil {
		return nil, fmt.Errorf("backoff store is required")
	}
	if failures == nil {
		return nil, fmt.Errorf("failure store is required")
	}
	if warmups == nil {
		return nil, fmt.Errorf("warmup store is required")
	}
	if attempts == nil {
		return nil, fmt.Errorf("attempt store is required")
	}

	svc := &Service{
		backoff:  backoff,
		failures: failures,
		warmups:  warmups,
		attempts: attempts,
		logger:   slog.Default(),
		tracer:   tracer.NewNoop(),
		config:   config.DefaultConfig(),
	}

	for _, opt := range opts {
		opt(svc)
	}

	if err := svc.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid throttle config: %w", err)
	}

	return svc, nil
}

// RecordRateLimit applies one rate-limit signal for an account+quota-class
// pair and returns the backoff decision. A serverDelay <= 0 means the
// upstream gave no retry hint; the configured default base delay is used.
//
// Concurrent signals for the same pair inside the dedup window collapse into
// one incident: they return Duplicate=true with the current attempt and the
// same delay math, so the backoff exponent escalates with distinct upstream
// throttling events, not with the number of in-flight requests observing
// them.
func (s *Service) RecordRateLimit(ctx context.Context, accountID string, class models.QuotaClass, serverDelay time.Duration) (_ *models.BackoffDecision, err error) {
	if accountID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "account id cannot be empty")
	}
	if class == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "quota class cannot be empty")
	}

	ctx, span := s.tracer.Start(ctx, "throttle.record_rate_limit",
		tracer.String("quota_class", class.String()),
	)
	defer func() { span.End(err) }()

	key := models.NewBackoffKey(accountID, class).String()
	attempt, duplicate, err := s.backoff.Record(ctx, key, s.config.DedupWindow, s.config.BackoffResetWindow)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record rate limit signal")
	}

	base := serverDelay
	if base <= 0 {
		base = s.config.DefaultBaseDelay
	}
	delay := models.BackoffDelay(base, attempt, s.config.MaxBackoff)

	span.SetAttributes(
		tracer.Int("attempt", attempt),
		tracer.Bool("duplicate", duplicate),
		tracer.Int64("delay_ms", delay.Milliseconds()),
	)

	if s.metrics != nil {
		s.metrics.IncrementSignals(class.String())
		if duplicate {
			s.metrics.IncrementDuplicateSignals(class.String())
		}
	}

	if duplicate {
		s.logger.DebugContext(ctx, "rate_limit_signal_deduplicated",
			"quota_class", class.String(),
			"attempt", attempt,
			"delay_ms", delay.Milliseconds(),
		)
	} else {
		s.logger.InfoContext(ctx, "rate_limit_signal_recorded",
			"quota_class", class.String(),
			"attempt", attempt,
			"delay_ms", delay.Milliseconds(),
			"server_hint", serverDelay > 0,
		)
	}

	return &models.BackoffDecision{
		Attempt:   attempt,
		Delay:     delay,
		Duplicate: duplicate,
	}, nil
}

// RecordFailure applies one non-rate-limit failure for an account. Once the
// consecutive count reaches the configured threshold the decision tells the
// caller to exclude the account from rotation for the cooldown duration. The
// counter is not cleared by the cooldown itself; only a later success does
// that.
func (s *Service) RecordFailure(ctx context.Context, accountID string) (_ *models.FailureDecision, err error) {
	if accountID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "account id cannot be empty")
	}

	ctx, span := s.tracer.Start(ctx, "throttle.record_failure")
	defer func() { span.End(err) }()

	record, err := s.failures.Record(ctx, accountID, s.config.FailureResetWindow)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record account failure")
	}

	decision := &models.FailureDecision{
		Failures:       record.ConsecutiveFailures,
		ShouldCooldown: record.ConsecutiveFailures >= s.config.CooldownThreshold,
	}
	if decision.ShouldCooldown {
		decision.Cooldown = s.config.CooldownDuration
	}

	span.SetAttributes(
		tracer.Int("failures", decision.Failures),
		tracer.Bool("cooldown", decision.ShouldCooldown),
	)

	if s.metrics != nil {
		s.metrics.IncrementFailures()
	}

	if decision.ShouldCooldown {
		if s.metrics != nil {
			s.metrics.IncrementCooldowns()
		}
		observability.LogAudit(ctx, s.logger, s.auditPublisher,
			observability.EventCooldownStarted, accountID,
			"failures", decision.Failures,
			"cooldown_ms", decision.Cooldown.Milliseconds(),
		)
	}

	return decision, nil
}

// RecordSuccess resets the trackers a successful attempt invalidates: the
// backoff state for the account+quota-class pair and the account's failure
// counter.
func (s *Service) RecordSuccess(ctx context.Context, accountID string, class models.QuotaClass) error {
	if accountID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "account id cannot be empty")
	}
	if class == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "quota class cannot be empty")
	}

	key := models.NewBackoffKey(accountID, class).String()
	if err := s.backoff.Reset(ctx, key); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to reset backoff state")
	}
	if err := s.failures.Clear(ctx, accountID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear failure record")
	}
	return nil
}

// ResetAccount clears every tracker entry for an account: all quota-class
// backoff states and the failure counter. Called when an account is rotated
// fully out and back in, or reactivated after a cooldown.
func (s *Service) ResetAccount(ctx context.Context, accountID string) error {
	if accountID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "account id cannot be empty")
	}

	if err := s.backoff.ResetAccount(ctx, accountID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to reset account backoff state")
	}
	if err := s.failures.Clear(ctx, accountID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear failure record")
	}

	observability.LogAudit(ctx, s.logger, s.auditPublisher,
		observability.EventAccountReset, accountID,
	)
	return nil
}

// BeginWarmup reports whether the session may run (another) warm-up attempt.
// It returns false once the session has succeeded or exhausted its attempts.
func (s *Service) BeginWarmup(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, dErrors.New(dErrors.CodeInvalidInput, "session id cannot be empty")
	}

	ok, err := s.warmups.BeginAttempt(ctx, sessionID, s.config.MaxWarmupAttempts)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to track warm-up attempt")
	}

	if ok {
		if s.metrics != nil {
			s.metrics.IncrementWarmupAttempts()
		}
		return true, nil
	}

	succeeded, err := s.warmups.HasSucceeded(ctx, sessionID)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check warm-up state")
	}
	reason := warmupRefusalExhausted
	if succeeded {
		reason = warmupRefusalSucceeded
	}
	if s.metrics != nil {
		s.metrics.IncrementWarmupRefusals(reason)
	}
	if !succeeded {
		observability.LogAudit(ctx, s.logger, s.auditPublisher,
			observability.EventWarmupExhausted, sessionID,
			"max_attempts", s.config.MaxWarmupAttempts,
		)
	}
	return false, nil
}

// MarkWarmupSucceeded records terminal warm-up success for a session.
func (s *Service) MarkWarmupSucceeded(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "session id cannot be empty")
	}
	if err := s.warmups.MarkSucceeded(ctx, sessionID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to mark warm-up success")
	}
	return nil
}

// WarmupSucceeded reports whether the session already completed warm-up.
// Unknown sessions report false.
func (s *Service) WarmupSucceeded(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, dErrors.New(dErrors.CodeInvalidInput, "session id cannot be empty")
	}
	done, err := s.warmups.HasSucceeded(ctx, sessionID)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check warm-up state")
	}
	return done, nil
}

// ClearWarmup returns a session to the unknown warm-up state, permitting a
// fresh handshake after its underlying context was invalidated.
func (s *Service) ClearWarmup(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "session id cannot be empty")
	}
	if err := s.warmups.ClearAttempt(ctx, sessionID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear warm-up state")
	}
	return nil
}

// EmptyResponseAttempts returns the recorded empty-response retry count for a
// session; unknown sessions are 0.
func (s *Service) EmptyResponseAttempts(ctx context.Context, sessionID string) (int, error) {
	if sessionID == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "session id cannot be empty")
	}
	count, err := s.attempts.Get(ctx, sessionID)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read empty-response attempts")
	}
	return count, nil
}

// RecordEmptyResponse adds one empty-response retry attempt for a session
// and returns the new count.
func (s *Service) RecordEmptyResponse(ctx context.Context, sessionID string) (int, error) {
	if sessionID == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "session id cannot be empty")
	}
	count, err := s.attempts.Increment(ctx, sessionID)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record empty-response attempt")
	}
	if s.metrics != nil {
		s.metrics.IncrementEmptyResponseAttempts()
	}
	return count, nil
}

// ResetEmptyResponses clears the empty-response counter for a session,
// called on session teardown.
func (s *Service) ResetEmptyResponses(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "session id cannot be empty")
	}
	if err := s.attempts.Reset(ctx, sessionID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to reset empty-response attempts")
	}
	return nil
}

// Clear wipes every tracker. Test isolation only; production resets go
// through RecordSuccess and ResetAccount.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.backoff.Clear(ctx); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear backoff store")
	}
	if err := s.failures.ClearAll(ctx); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear failure store")
	}
	if err := s.warmups.Clear(ctx); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear warmup store")
	}
	if err := s.attempts.Clear(ctx); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear attempt store")
	}
	return nil
}
